package response

import (
	"time"

	"mutual_cartera/internal/domain/entities"
)

type PeriodMetricsResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	entities.PeriodMetrics
}

func FromPeriodMetrics(start, end time.Time, m entities.PeriodMetrics) PeriodMetricsResponse {
	return PeriodMetricsResponse{Start: start, End: end, PeriodMetrics: m}
}

type RefreshClientsResponse struct {
	Clients     int       `json:"clients"`
	RefreshedAt time.Time `json:"refreshed_at"`
}
