package analytics

import (
	"time"

	"mutual_cartera/internal/domain/entities"
	"mutual_cartera/internal/domain/ingest"
)

// AggregateGlobalDelinquency ages the overdue balance of the whole portfolio.
// Paid installments and installments not yet due are ignored.
func AggregateGlobalDelinquency(items []entities.Installment, dir ClientDirectory, today time.Time) entities.DelinquencyMetrics {
	out := entities.DelinquencyMetrics{Records: len(items)}
	debtors := newClientTotals()

	for _, inst := range items {
		if inst.Status == entities.InstallmentStatusPagado {
			continue
		}
		if inst.DueDate == nil || !inst.DueDate.Before(today) {
			continue
		}
		debt := inst.RemainingBalance
		if debt <= 0 {
			continue
		}

		switch days := ceilDaysSince(*inst.DueDate, today); {
		case days <= 30:
			out.Buckets.Days0To30 += debt
		case days <= 60:
			out.Buckets.Days31To60 += debt
		case days <= 90:
			out.Buckets.Days61To90 += debt
		default:
			out.Buckets.Days90Plus += debt
		}
		out.TotalOverdue += debt

		if inst.ClientCUIT != "" {
			debtors.add(inst.ClientCUIT, displayName(resolveClient(dir, inst), inst.ClientCUIT), debt)
		}
	}

	out.DelinquentClients = len(debtors.rows)
	out.TopDebtors = debtors.top(topClientsLimit)
	return out
}

func ceilDaysSince(due, today time.Time) int {
	return ingest.DelayDays(entities.InstallmentStatusImpago, &due, nil, today)
}
