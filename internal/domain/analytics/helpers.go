package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"mutual_cartera/internal/domain/entities"
	"mutual_cartera/internal/domain/ingest"
)

const (
	topClientsLimit   = 10
	topProvidersLimit = 10

	fallbackProductLine = "OTROS"

	// unpaidRemainderThreshold marks a status-less record as unpaid.
	unpaidRemainderThreshold = 10
)

// ratio returns num/den, or 0 when den is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func percent(num, den float64) float64 {
	return ratio(num, den) * 100
}

func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// dueMonth returns the 0-based calendar month of the due date in loc, or -1.
func dueMonth(inst entities.Installment, loc *time.Location) int {
	if inst.DueDate == nil {
		return -1
	}
	return int(inst.DueDate.In(loc).Month()) - 1
}

// liveDelay recomputes the delay against today instead of trusting DaysDelayed.
func liveDelay(inst entities.Installment, today time.Time) int {
	return ingest.DelayDays(inst.Status, inst.DueDate, inst.PaymentDate, today)
}

func ageGroup(birth *time.Time, today time.Time) string {
	if birth == nil {
		return entities.AgeGroupUnknown
	}
	age := ingest.AgeAt(*birth, today)
	switch {
	case age >= 18 && age <= 25:
		return entities.AgeGroup18To25
	case age >= 26 && age <= 35:
		return entities.AgeGroup26To35
	case age >= 36 && age <= 45:
		return entities.AgeGroup36To45
	case age >= 46 && age <= 60:
		return entities.AgeGroup46To60
	case age > 60:
		return entities.AgeGroupOver60
	default:
		return entities.AgeGroupUnknown
	}
}

// clientTotals accumulates an amount per CUIT, remembering encounter order.
type clientTotals struct {
	index map[string]int
	rows  []entities.ClientAmount
}

func newClientTotals() *clientTotals {
	return &clientTotals{index: make(map[string]int)}
}

func (c *clientTotals) add(cuit, name string, amount float64) {
	if i, ok := c.index[cuit]; ok {
		c.rows[i].Amount += amount
		return
	}
	c.index[cuit] = len(c.rows)
	c.rows = append(c.rows, entities.ClientAmount{CUIT: cuit, Name: name, Amount: amount})
}

// top returns the n largest totals; ties keep encounter order.
func (c *clientTotals) top(n int) []entities.ClientAmount {
	out := make([]entities.ClientAmount, len(c.rows))
	copy(out, c.rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
