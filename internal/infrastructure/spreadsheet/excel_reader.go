package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"mutual_cartera/internal/domain/ingest"
	"mutual_cartera/internal/usecase/interfaces"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// ExcelReader reads the first sheet of an .xlsx workbook. The first row is the
// header; cells are returned raw so date serials and amounts stay numeric.
// Blank rows come back as empty RawRows so positions match sheet rows.
type ExcelReader struct{}

var _ interfaces.ISpreadsheetReader = (*ExcelReader)(nil)

func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

func (r *ExcelReader) ReadRows(rd io.Reader) ([]ingest.RawRow, error) {
	f, err := excelize.OpenReader(rd)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	out := make([]ingest.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(ingest.RawRow, len(header))
		for i, cell := range cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if v := strings.TrimSpace(cell); v != "" {
				row[header[i]] = v
			}
		}
		out = append(out, row)
	}
	return out, nil
}
