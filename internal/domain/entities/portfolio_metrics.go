package entities

import "time"

// Age groups used by the risk and demographic breakdowns, in display order.
const (
	AgeGroup18To25  = "18-25"
	AgeGroup26To35  = "26-35"
	AgeGroup36To45  = "36-45"
	AgeGroup46To60  = "46-60"
	AgeGroupOver60  = "+60"
	AgeGroupUnknown = "N/D"
)

// AgeGroups lists every age group in display order.
var AgeGroups = []string{AgeGroup18To25, AgeGroup26To35, AgeGroup36To45, AgeGroup46To60, AgeGroupOver60, AgeGroupUnknown}

// PortfolioKPIs are the headline figures of a period.
//
// Effectiveness is Paid over Expected as a percentage and AverageDelay is
// TotalDelayedDays/DelayedItems; both are 0 when their denominator is 0.
type PortfolioKPIs struct {
	Expected         float64 `json:"expected"`
	Paid             float64 `json:"paid"`
	Mora             float64 `json:"mora"`
	TotalDelayedDays int     `json:"total_delayed_days"`
	DelayedItems     int     `json:"delayed_items"`
	Effectiveness    float64 `json:"effectiveness"`
	AverageDelay     float64 `json:"average_delay"`
}

type MonthlyAmount struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type MonthlyCashFlow struct {
	Expected float64 `json:"expected"`
	Paid     float64 `json:"paid"`
}

type MonthlyRefinancing struct {
	Cash       float64 `json:"cash"`
	Refinanced float64 `json:"refinanced"`
}

type NamedAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// PaymentStates counts installments per status. Percentages (0-100) are over
// the sum of the three counts.
type PaymentStates struct {
	Pagado     int     `json:"pagado"`
	Parcial    int     `json:"parcial"`
	Impago     int     `json:"impago"`
	PagadoPct  float64 `json:"pagado_pct"`
	ParcialPct float64 `json:"parcial_pct"`
	ImpagoPct  float64 `json:"impago_pct"`
}

// DelayStat aggregates live delay for a product line or provider. Only
// installments with a positive delay count towards TotalDelay and Count;
// Amount is the expected amount of every installment in the group.
type DelayStat struct {
	Name       string  `json:"name"`
	TotalDelay int     `json:"total_delay"`
	Count      int     `json:"count"`
	Average    float64 `json:"average"`
	Amount     float64 `json:"amount"`
}

// PortfolioComposition splits the period's expected amount by live delay.
type PortfolioComposition struct {
	Vigente    float64 `json:"vigente"`
	Mora30     float64 `json:"mora_30"`
	Mora60     float64 `json:"mora_60"`
	Mora90Plus float64 `json:"mora_90_plus"`
}

// Total returns the sum of every bucket.
func (c PortfolioComposition) Total() float64 {
	return c.Vigente + c.Mora30 + c.Mora60 + c.Mora90Plus
}

// LineHealth.Ratio is the collected percentage, capped at 100.
type LineHealth struct {
	Line     string  `json:"line"`
	Expected float64 `json:"expected"`
	Paid     float64 `json:"paid"`
	Ratio    float64 `json:"ratio"`
}

type AgeRisk struct {
	Group      string  `json:"group"`
	Expected   float64 `json:"expected"`
	Paid       float64 `json:"paid"`
	Efficiency float64 `json:"efficiency"`
}

type AgeGroupCount struct {
	Group   string `json:"group"`
	Clients int    `json:"clients"`
}

type ClientAmount struct {
	CUIT   string  `json:"cuit"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// PeriodMetrics is the metrics bundle for installments due inside a period.
// Monthly arrays are indexed by calendar month (0 = January) regardless of year.
type PeriodMetrics struct {
	Records          int                    `json:"records"`
	KPIs             PortfolioKPIs          `json:"kpis"`
	MonthlyEvolution [12]MonthlyAmount      `json:"monthly_evolution"`
	ProductRanking   []NamedAmount          `json:"product_ranking"`
	CashFlow         [12]MonthlyCashFlow    `json:"cash_flow"`
	CashVsRefinance  [12]MonthlyRefinancing `json:"cash_vs_refinance"`
	PaymentStates    PaymentStates          `json:"payment_states"`
	DelayByLine      []DelayStat            `json:"delay_by_line"`
	DelayByProvider  []DelayStat            `json:"delay_by_provider"`
	TopLateProviders []DelayStat            `json:"top_late_providers"`
	Composition      PortfolioComposition   `json:"composition"`
	LineHealth       []LineHealth           `json:"line_health"`
	AgeRisk          []AgeRisk              `json:"age_risk"`
	Demographics     []AgeGroupCount        `json:"demographics"`
	ActiveClients    int                    `json:"active_clients"`
	TopPayers        []ClientAmount         `json:"top_payers"`
}

type DelinquencyBuckets struct {
	Days0To30  float64 `json:"days_0_30"`
	Days31To60 float64 `json:"days_31_60"`
	Days61To90 float64 `json:"days_61_90"`
	Days90Plus float64 `json:"days_90_plus"`
}

// DelinquencyMetrics is the point-in-time arrears state of the whole portfolio.
type DelinquencyMetrics struct {
	Records           int                `json:"records"`
	Buckets           DelinquencyBuckets `json:"buckets"`
	TotalOverdue      float64            `json:"total_overdue"`
	DelinquentClients int                `json:"delinquent_clients"`
	TopDebtors        []ClientAmount     `json:"top_debtors"`
}

type MonthlyBalance struct {
	Month   string  `json:"month"`
	Balance float64 `json:"balance"`
}

// LiquidityProjection is the remaining balance expected to come in, per due month.
type LiquidityProjection struct {
	From   time.Time        `json:"from"`
	To     time.Time        `json:"to"`
	Months []MonthlyBalance `json:"months"`
	Total  float64          `json:"total"`
}
