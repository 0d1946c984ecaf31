package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestExcelReader_ReadRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Numero", " Nro Cuota ", "CUIT", "Fecha", "Monto Total", ""},
		{"L1", 1, "20-1", 45306, 1500.5, "ignored"},
		{nil, nil, nil, nil, nil},
		{"L1", 2, "20-1", 45337, 1500.5},
	})

	rows, err := NewExcelReader().ReadRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "L1", rows[0]["Numero"])
	assert.Equal(t, "1", rows[0]["Nro Cuota"])
	assert.Equal(t, "45306", rows[0]["Fecha"])
	assert.Equal(t, "1500.5", rows[0]["Monto Total"])
	assert.Len(t, rows[0], 5)
	assert.Empty(t, rows[1])
	assert.Equal(t, "2", rows[2]["Nro Cuota"])
}

func TestExcelReader_HeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]any{{"Numero", "CUIT"}})

	rows, err := NewExcelReader().ReadRows(buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExcelReader_NotAWorkbook(t *testing.T) {
	_, err := NewExcelReader().ReadRows(strings.NewReader("Numero;CUIT\nL1;20-1"))
	assert.Error(t, err)
}
