package interfaces

//go:generate mockgen -source=spreadsheet_reader_interface.go -destination=mocks/spreadsheet_reader_interface_mock.go -package=mock_interfaces

import (
	"io"

	"mutual_cartera/internal/domain/ingest"
)

// ISpreadsheetReader turns an uploaded workbook into header-keyed rows.
type ISpreadsheetReader interface {
	ReadRows(r io.Reader) ([]ingest.RawRow, error)
}
