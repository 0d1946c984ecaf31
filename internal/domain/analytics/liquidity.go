package analytics

import (
	"sort"
	"time"

	"mutual_cartera/internal/domain/entities"
)

// DefaultProjectionMonths is the horizon of the liquidity projection.
const DefaultProjectionMonths = 12

// ProjectLiquidity sums the remaining balance of installments due between
// today and today+months, grouped by due month (YYYY-MM in today's location).
func ProjectLiquidity(items []entities.Installment, today time.Time, months int) entities.LiquidityProjection {
	if months <= 0 {
		months = DefaultProjectionMonths
	}
	out := entities.LiquidityProjection{From: today, To: today.AddDate(0, months, 0)}

	byMonth := make(map[string]float64)
	for _, inst := range items {
		if inst.DueDate == nil {
			continue
		}
		due := inst.DueDate.In(today.Location())
		if due.Before(out.From) || due.After(out.To) {
			continue
		}
		byMonth[due.Format("2006-01")] += inst.RemainingBalance
		out.Total += inst.RemainingBalance
	}

	out.Months = make([]entities.MonthlyBalance, 0, len(byMonth))
	for month, balance := range byMonth {
		out.Months = append(out.Months, entities.MonthlyBalance{Month: month, Balance: balance})
	}
	sort.Slice(out.Months, func(i, j int) bool { return out.Months[i].Month < out.Months[j].Month })
	return out
}
