package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mutual_cartera/internal/domain/entities"
)

const (
	DefaultProductLine = "GENERAL"
	DefaultClientName  = "Sin Nombre"
)

var ErrMissingRequiredField = errors.New("missing required field")

// SkippedRow identifies a rejected row by its sheet row number (header = 1).
type SkippedRow struct {
	Row    int
	Reason error
}

// Result is the outcome of normalizing one spreadsheet.
//
// Installments are unique by natural key (the last row for a key wins) and
// Clients are unique by CUIT (the first row for a CUIT wins). Both keep the
// order in which their key was first seen.
type Result struct {
	Rows         int
	Installments []entities.Installment
	Clients      []entities.Client
	Skipped      []SkippedRow
}

// Normalize converts raw rows into canonical records. Rows with a missing key
// field or an unreadable date or amount are skipped and reported; they never
// abort the batch. rows[i] is sheet row i+2; empty rows are ignored and not
// counted in Rows.
func Normalize(rows []RawRow, today time.Time, loc *time.Location) Result {
	if loc == nil {
		loc = time.UTC
	}
	today = today.In(loc)

	var res Result
	installmentIdx := make(map[string]int, len(rows))
	seenClients := make(map[string]struct{})

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		res.Rows++

		inst, client, err := normalizeRow(row, today, loc)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedRow{Row: i + 2, Reason: err})
			continue
		}

		key := inst.Key()
		if idx, ok := installmentIdx[key]; ok {
			res.Installments[idx] = inst
		} else {
			installmentIdx[key] = len(res.Installments)
			res.Installments = append(res.Installments, inst)
		}

		if _, ok := seenClients[client.CUIT]; !ok {
			seenClients[client.CUIT] = struct{}{}
			res.Clients = append(res.Clients, client)
		}
	}
	return res
}

func normalizeRow(row RawRow, today time.Time, loc *time.Location) (entities.Installment, entities.Client, error) {
	f := resolveFields(row)

	switch {
	case f.loanID == "":
		return entities.Installment{}, entities.Client{}, fmt.Errorf("%w: loan id", ErrMissingRequiredField)
	case f.installmentNumber == "":
		return entities.Installment{}, entities.Client{}, fmt.Errorf("%w: installment number", ErrMissingRequiredField)
	case f.cuit == "":
		return entities.Installment{}, entities.Client{}, fmt.Errorf("%w: cuit", ErrMissingRequiredField)
	}

	number, err := parseInstallmentNumber(f.installmentNumber)
	if err != nil {
		return entities.Installment{}, entities.Client{}, err
	}

	amounts, err := parseAmounts(f)
	if err != nil {
		return entities.Installment{}, entities.Client{}, err
	}

	dates, err := parseDates(f, loc)
	if err != nil {
		return entities.Installment{}, entities.Client{}, err
	}

	// An unreadable birth date leaves the client without one.
	birthDate, _ := ParseDate(f.birthDate, loc)

	status := DeriveStatus(amounts.paid, amounts.remaining)

	provider := f.provider
	if provider == "" {
		provider = DefaultProvider
	}

	inst := entities.Installment{
		LoanID:            f.loanID,
		InstallmentNumber: number,
		ClientCUIT:        f.cuit,
		ProductLine:       NormalizeProductLine(f.productLine),
		Provider:          NormalizeProvider(provider),
		IssueDate:         dates.issue,
		DueDate:           dates.due,
		PaymentDate:       dates.payment,
		ExpectedAmount:    amounts.expected,
		PaidAmount:        amounts.paid,
		RemainingBalance:  amounts.remaining,
		RefinancedAmount:  amounts.refinanced,
		DisbursedAmount:   amounts.disbursed,
		Status:            status,
		DaysDelayed:       DelayDays(status, dates.due, dates.payment, today),
		ClientName:        f.fullName,
		ClientBirthDate:   birthDate,
		UpdatedAt:         today,
	}

	client := entities.Client{
		CUIT:      f.cuit,
		FullName:  f.fullName,
		Email:     strings.ToLower(f.email),
		Phone:     f.phone,
		Address:   f.address,
		BirthDate: birthDate,
		Gender:    f.gender,
		UpdatedAt: today,
	}
	if client.FullName == "" {
		client.FullName = DefaultClientName
	}
	if birthDate != nil {
		if age := AgeAt(*birthDate, today); age >= 0 {
			client.Age = &age
		}
	}

	return inst, client, nil
}

type rowAmounts struct {
	expected   float64
	paid       float64
	remaining  float64
	refinanced float64
	disbursed  float64
}

func parseAmounts(f rowFields) (rowAmounts, error) {
	var out rowAmounts
	targets := []struct {
		raw string
		dst *float64
		abs bool
	}{
		{f.expectedAmount, &out.expected, false},
		{f.paidAmount, &out.paid, true},
		{f.remainingBalance, &out.remaining, false},
		{f.refinancedAmount, &out.refinanced, false},
		{f.disbursedAmount, &out.disbursed, false},
	}
	for _, t := range targets {
		d, err := ParseAmount(t.raw)
		if err != nil {
			return rowAmounts{}, err
		}
		if t.abs {
			d = d.Abs()
		}
		*t.dst = d.InexactFloat64()
	}
	return out, nil
}

type rowDates struct {
	issue   *time.Time
	due     *time.Time
	payment *time.Time
}

func parseDates(f rowFields, loc *time.Location) (rowDates, error) {
	var (
		out rowDates
		err error
	)
	if out.due, err = ParseDate(f.dueDate, loc); err != nil {
		return rowDates{}, fmt.Errorf("due date: %w", err)
	}
	if out.payment, err = ParseDate(f.paymentDate, loc); err != nil {
		return rowDates{}, fmt.Errorf("payment date: %w", err)
	}
	if out.issue, err = ParseDate(f.issueDate, loc); err != nil {
		return rowDates{}, fmt.Errorf("issue date: %w", err)
	}
	return out, nil
}

// NormalizeProductLine is the grouping form of a product line: trimmed and
// uppercased, DefaultProductLine when blank.
func NormalizeProductLine(raw string) string {
	line := strings.ToUpper(strings.TrimSpace(raw))
	if line == "" {
		return DefaultProductLine
	}
	return line
}
