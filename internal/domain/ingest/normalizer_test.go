package ingest

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutual_cartera/internal/domain/entities"
)

var testToday = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func baseRow() RawRow {
	return RawRow{
		"Numero":          "L1",
		"Nro Cuota":       "1",
		"CUIT":            "20-11111111-1",
		"Monto Total":     "1000",
		"Total Pago":      "1000",
		"Saldo Cuota":     "0",
		"Fecha":           "45301",
		"Fecha Cobro":     "2024-01-05",
		"Nombre Completo": "Ana Perez",
		"Email":           "ANA@Mail.com",
	}
}

func TestNormalize_PaidBeforeDue(t *testing.T) {
	res := Normalize([]RawRow{baseRow()}, testToday, time.UTC)

	require.Len(t, res.Installments, 1)
	require.Empty(t, res.Skipped)

	inst := res.Installments[0]
	assert.Equal(t, entities.InstallmentStatusPagado, inst.Status)
	assert.Equal(t, 0, inst.DaysDelayed)
	assert.Equal(t, "L1_1", inst.Key())
	require.NotNil(t, inst.DueDate)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *inst.DueDate)
}

func TestNormalize_Defaults(t *testing.T) {
	row := baseRow()
	delete(row, "Nombre Completo")

	res := Normalize([]RawRow{row}, testToday, time.UTC)

	require.Len(t, res.Installments, 1)
	require.Len(t, res.Clients, 1)
	assert.Equal(t, "MUTUAL", res.Installments[0].Provider)
	assert.Equal(t, DefaultProductLine, res.Installments[0].ProductLine)
	assert.Equal(t, DefaultClientName, res.Clients[0].FullName)
	assert.Equal(t, "ana@mail.com", res.Clients[0].Email)
}

func TestNormalize_AliasPriority(t *testing.T) {
	row := RawRow{
		"numero":            "L9",
		"LoanId":            "IGNORED",
		"installmentNumber": "2.0",
		"cuit":              "20-2",
		"expectedAmount":    "300",
		"paidAmount":        "-100",
		"remainingBalance":  "200",
		"dueDate":           "2024-02-01",
		"Proveedor":         "",
		"provider":          "sancor tres",
		"productLine":       "Personales",
	}

	res := Normalize([]RawRow{row}, testToday, time.UTC)

	require.Len(t, res.Installments, 1)
	inst := res.Installments[0]
	assert.Equal(t, "L9", inst.LoanID)
	assert.Equal(t, 2, inst.InstallmentNumber)
	assert.Equal(t, 100.0, inst.PaidAmount)
	assert.Equal(t, entities.InstallmentStatusParcial, inst.Status)
	assert.Equal(t, "Sancor 3", inst.Provider)
	assert.Equal(t, "PERSONALES", inst.ProductLine)
	assert.Equal(t, 30, inst.DaysDelayed)
}

func TestNormalize_SkipsInvalidRows(t *testing.T) {
	missingCUIT := baseRow()
	delete(missingCUIT, "CUIT")

	badNumber := baseRow()
	badNumber["Nro Cuota"] = "1.5"

	badDate := baseRow()
	badDate["Fecha"] = "not a date"

	badAmount := baseRow()
	badAmount["Monto Total"] = "abc"

	res := Normalize([]RawRow{missingCUIT, badNumber, badDate, badAmount, baseRow()}, testToday, time.UTC)

	assert.Equal(t, 5, res.Rows)
	assert.Len(t, res.Installments, 1)
	require.Len(t, res.Skipped, 4)
	assert.Equal(t, 2, res.Skipped[0].Row)
	assert.True(t, errors.Is(res.Skipped[0].Reason, ErrMissingRequiredField))
}

func TestNormalize_BlankRowsKeepSheetNumbering(t *testing.T) {
	badDate := baseRow()
	badDate["Nro Cuota"] = "2"
	badDate["Fecha"] = "not a date"

	res := Normalize([]RawRow{baseRow(), {}, badDate}, testToday, time.UTC)

	assert.Equal(t, 2, res.Rows)
	assert.Len(t, res.Installments, 1)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 4, res.Skipped[0].Row)
	assert.ErrorContains(t, res.Skipped[0].Reason, "due date")
}

func TestNormalize_ProductLineGroupingForm(t *testing.T) {
	mixed := baseRow()
	mixed["Linea Prestamo"] = "Personales"
	padded := baseRow()
	padded["Nro Cuota"] = "2"
	padded["Linea Prestamo"] = "PERSONALES "

	res := Normalize([]RawRow{mixed, padded}, testToday, time.UTC)

	require.Len(t, res.Installments, 2)
	assert.Equal(t, "PERSONALES", res.Installments[0].ProductLine)
	assert.Equal(t, res.Installments[0].ProductLine, res.Installments[1].ProductLine)
	assert.Equal(t, DefaultProductLine, NormalizeProductLine("   "))
}

func TestNormalize_ClientFirstOccurrenceWins(t *testing.T) {
	first := baseRow()
	first["Fecha De Nacimiento"] = "32874"

	second := baseRow()
	second["Nro Cuota"] = "2"
	second["Nombre Completo"] = "Otro Nombre"
	second["Fecha De Nacimiento"] = "2000-01-01"

	res := Normalize([]RawRow{first, second}, testToday, time.UTC)

	require.Len(t, res.Clients, 1)
	assert.Equal(t, "Ana Perez", res.Clients[0].FullName)
	require.NotNil(t, res.Clients[0].Age)
	assert.Equal(t, 34, *res.Clients[0].Age)
	assert.Len(t, res.Installments, 2)
}

func TestNormalize_DuplicateKeyLastRowWins(t *testing.T) {
	first := baseRow()
	second := baseRow()
	second["Monto Total"] = "1200"

	res := Normalize([]RawRow{first, second}, testToday, time.UTC)

	require.Len(t, res.Installments, 1)
	assert.Equal(t, 1200.0, res.Installments[0].ExpectedAmount)
}

func TestNormalize_Idempotent(t *testing.T) {
	rows := []RawRow{baseRow(), {
		"Numero":      "L2",
		"Nro Cuota":   "3",
		"CUIT":        "27-3",
		"Monto Total": "500",
		"Saldo Cuota": "500",
		"Fecha":       "45291",
	}}

	once := Normalize(rows, testToday, time.UTC)
	twice := Normalize(rows, testToday, time.UTC)

	assert.Equal(t, once, twice)
}

func TestNormalize_StatusAmountCoherence(t *testing.T) {
	cases := []struct{ paid, remaining string }{
		{"0", "0"}, {"100", "0"}, {"100", "50"}, {"0", "50"}, {"", ""}, {"-20", "10"},
	}
	var rows []RawRow
	for i, c := range cases {
		row := baseRow()
		row["Nro Cuota"] = string(rune('1' + i))
		row["Total Pago"] = c.paid
		row["Saldo Cuota"] = c.remaining
		rows = append(rows, row)
	}

	res := Normalize(rows, testToday, time.UTC)
	require.Len(t, res.Installments, len(cases))

	for _, inst := range res.Installments {
		assert.Equal(t, inst.RemainingBalance == 0, inst.Status == entities.InstallmentStatusPagado, inst.Key())
		assert.Equal(t, inst.PaidAmount > 0 && inst.RemainingBalance > 0, inst.Status == entities.InstallmentStatusParcial, inst.Key())
	}
}

func TestDelayDays(t *testing.T) {
	due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 1, 12, 8, 0, 0, 0, time.UTC)
	early := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DelayDays(entities.InstallmentStatusPagado, &due, &late, testToday))
	assert.Equal(t, 0, DelayDays(entities.InstallmentStatusPagado, &due, &early, testToday))
	assert.Equal(t, 0, DelayDays(entities.InstallmentStatusPagado, &due, nil, testToday))
	assert.Equal(t, 52, DelayDays(entities.InstallmentStatusImpago, &due, nil, testToday))
	assert.Equal(t, 0, DelayDays(entities.InstallmentStatusImpago, nil, nil, testToday))

	future := testToday.AddDate(0, 0, 5)
	assert.Equal(t, 0, DelayDays(entities.InstallmentStatusParcial, &future, nil, testToday))
}

func TestAgeAt(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, AgeAt(time.Date(1994, 6, 15, 0, 0, 0, 0, time.UTC), today))
	assert.Equal(t, 29, AgeAt(time.Date(1994, 6, 16, 0, 0, 0, 0, time.UTC), today))
	assert.Equal(t, 29, AgeAt(time.Date(1994, 7, 1, 0, 0, 0, 0, time.UTC), today))
}
