package response

import (
	"time"

	"mutual_cartera/internal/usecase"
)

type SkippedRowResponse struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResponse struct {
	ImportID     string               `json:"import_id"`
	Rows         int                  `json:"rows"`
	Installments int                  `json:"installments"`
	Clients      int                  `json:"clients"`
	Skipped      int                  `json:"skipped"`
	SkippedRows  []SkippedRowResponse `json:"skipped_rows"`
	Batches      int                  `json:"batches"`
	StartedAt    time.Time            `json:"started_at"`
	FinishedAt   time.Time            `json:"finished_at"`
}

func FromImportSummary(s usecase.ImportSummary) ImportResponse {
	skipped := make([]SkippedRowResponse, 0, len(s.Skipped))
	for _, row := range s.Skipped {
		skipped = append(skipped, SkippedRowResponse{Row: row.Row, Reason: row.Reason.Error()})
	}
	return ImportResponse{
		ImportID:     s.ImportID,
		Rows:         s.Rows,
		Installments: s.Installments,
		Clients:      s.Clients,
		Skipped:      len(s.Skipped),
		SkippedRows:  skipped,
		Batches:      s.Batches,
		StartedAt:    s.StartedAt,
		FinishedAt:   s.FinishedAt,
	}
}
