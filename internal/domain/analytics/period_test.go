package analytics

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutual_cartera/internal/domain/entities"
)

var today = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := today.AddDate(0, 0, -n)
	return &t
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func unpaid(loan string, n int, cuit string, amount float64, due *time.Time) entities.Installment {
	return entities.Installment{
		LoanID:            loan,
		InstallmentNumber: n,
		ClientCUIT:        cuit,
		ProductLine:       "Personales",
		Provider:          "MUTUAL",
		DueDate:           due,
		ExpectedAmount:    amount,
		RemainingBalance:  amount,
		Status:            entities.InstallmentStatusImpago,
	}
}

func paidInstallment(loan string, n int, cuit string, amount float64, due, paidOn *time.Time) entities.Installment {
	return entities.Installment{
		LoanID:            loan,
		InstallmentNumber: n,
		ClientCUIT:        cuit,
		ProductLine:       "Comercio",
		Provider:          "Sancor 1",
		DueDate:           due,
		PaymentDate:       paidOn,
		ExpectedAmount:    amount,
		PaidAmount:        amount,
		Status:            entities.InstallmentStatusPagado,
	}
}

func TestAggregatePeriod_FortyDaysLateIsMora60(t *testing.T) {
	items := []entities.Installment{unpaid("L1", 1, "20-1", 500, daysAgo(40))}

	m := AggregatePeriod(items, nil, today)

	assert.Equal(t, 500.0, m.Composition.Mora60)
	assert.Zero(t, m.Composition.Vigente)
	assert.Zero(t, m.Composition.Mora30)
	assert.Zero(t, m.Composition.Mora90Plus)
	assert.Equal(t, 500.0, m.KPIs.Mora)
}

func TestAggregatePeriod_CashVsRefinanceCountsLoanOnce(t *testing.T) {
	first := unpaid("L1", 1, "20-1", 100, date(2024, 3, 10))
	first.IssueDate = date(2024, 2, 1)
	first.DisbursedAmount = 1000
	first.RefinancedAmount = 200

	second := unpaid("L1", 2, "20-1", 100, date(2024, 4, 10))
	second.IssueDate = date(2024, 2, 1)
	second.RefinancedAmount = 200

	m := AggregatePeriod([]entities.Installment{first, second}, nil, today)

	assert.Equal(t, entities.MonthlyRefinancing{Cash: 800, Refinanced: 200}, m.CashVsRefinance[time.February-1])
	for i, r := range m.CashVsRefinance {
		if i != int(time.February-1) {
			assert.Zero(t, r, "month %d", i)
		}
	}
}

func TestAggregatePeriod_RatiosAreZeroWithoutDenominator(t *testing.T) {
	cases := map[string][]entities.Installment{
		"empty":         nil,
		"zero expected": {paidInstallment("L1", 1, "20-1", 0, daysAgo(3), daysAgo(3))},
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			m := AggregatePeriod(items, nil, today)

			assert.Zero(t, m.KPIs.Effectiveness)
			assert.Zero(t, m.KPIs.AverageDelay)
			for _, h := range m.LineHealth {
				assert.Zero(t, h.Ratio)
			}
			for _, r := range m.AgeRisk {
				assert.Zero(t, r.Efficiency)
				assert.False(t, math.IsNaN(r.Efficiency))
			}
			for _, s := range m.DelayByProvider {
				assert.Zero(t, s.Average)
			}
		})
	}
}

func TestAggregatePeriod_CompositionIsExhaustive(t *testing.T) {
	var items []entities.Installment
	for i, lateness := range []int{-30, 0, 3, 5, 6, 30, 31, 60, 61, 90, 200} {
		items = append(items, unpaid(fmt.Sprintf("L%d", i), 1, "20-1", float64(100+i), daysAgo(lateness)))
	}
	items = append(items, unpaid("LX", 1, "20-1", 77, nil))

	m := AggregatePeriod(items, nil, today)

	var total float64
	for _, inst := range items {
		total += inst.ExpectedAmount
	}
	assert.InDelta(t, total, m.Composition.Total(), 1e-9)
	assert.InDelta(t, total, m.KPIs.Expected, 1e-9)
}

func TestAggregatePeriod_MatchesPerMetricReference(t *testing.T) {
	items := []entities.Installment{
		unpaid("L1", 1, "20-1", 1000.333, date(2024, 1, 10)),
		paidInstallment("L2", 1, "20-2", 250.10, date(2024, 2, 10), date(2024, 2, 20)),
		paidInstallment("L2", 2, "20-2", 250.10, date(2024, 3, 10), date(2024, 3, 1)),
		unpaid("L3", 1, "", 400, date(2024, 7, 1)),
		{LoanID: "L4", InstallmentNumber: 1, ClientCUIT: "20-3", ProductLine: "Comercio", DueDate: date(2024, 5, 1),
			ExpectedAmount: 300, PaidAmount: 100, RemainingBalance: 200, Status: entities.InstallmentStatusParcial, DaysDelayed: 45},
		{LoanID: "L5", InstallmentNumber: 1, ClientCUIT: "20-3", ExpectedAmount: 90, RemainingBalance: 50, DaysDelayed: -3},
	}
	items[0].DaysDelayed = 157
	items[1].DaysDelayed = 10

	m := AggregatePeriod(items, nil, today)

	var expected, paid, mora float64
	var delayed, delayedDays int
	for _, inst := range items {
		expected += inst.ExpectedAmount
	}
	for _, inst := range items {
		paid += inst.PaidAmount
	}
	for _, inst := range items {
		if isUnpaid(inst) {
			mora += inst.RemainingBalance
		}
	}
	for _, inst := range items {
		if inst.DaysDelayed > 0 {
			delayed++
			delayedDays += inst.DaysDelayed
		}
	}
	var monthly [12]int
	for _, inst := range items {
		if inst.DueDate != nil {
			monthly[inst.DueDate.Month()-1]++
		}
	}
	states := map[entities.InstallmentStatus]int{}
	for _, inst := range items {
		states[inst.Status]++
	}
	cuits := map[string]bool{}
	for _, inst := range items {
		if inst.ClientCUIT != "" {
			cuits[inst.ClientCUIT] = true
		}
	}

	assert.InDelta(t, expected, m.KPIs.Expected, 0.01)
	assert.InDelta(t, paid, m.KPIs.Paid, 0.01)
	assert.InDelta(t, mora, m.KPIs.Mora, 0.01)
	require.Equal(t, 3, delayed)
	assert.Equal(t, delayed, m.KPIs.DelayedItems)
	assert.Equal(t, delayedDays, m.KPIs.TotalDelayedDays)
	assert.InDelta(t, float64(delayedDays)/float64(delayed), m.KPIs.AverageDelay, 1e-9)
	for i := range monthly {
		assert.Equal(t, monthly[i], m.MonthlyEvolution[i].Count, "month %d", i)
	}
	assert.Equal(t, states[entities.InstallmentStatusPagado], m.PaymentStates.Pagado)
	assert.Equal(t, states[entities.InstallmentStatusParcial], m.PaymentStates.Parcial)
	assert.Equal(t, states[entities.InstallmentStatusImpago]+states[""], m.PaymentStates.Impago)
	assert.Equal(t, len(cuits), m.ActiveClients)
	assert.Equal(t, len(items), m.Records)
}

func TestAggregatePeriod_MoraForMissingStatusUsesThreshold(t *testing.T) {
	items := []entities.Installment{
		{LoanID: "A", InstallmentNumber: 1, RemainingBalance: 10},
		{LoanID: "B", InstallmentNumber: 1, RemainingBalance: 10.5},
	}

	m := AggregatePeriod(items, nil, today)

	assert.Equal(t, 10.5, m.KPIs.Mora)
}

func TestAggregatePeriod_DelayByProviderUsesLiveDelay(t *testing.T) {
	items := []entities.Installment{
		unpaid("L1", 1, "20-1", 100, daysAgo(10)),
		unpaid("L1", 2, "20-1", 100, daysAgo(20)),
		paidInstallment("L2", 1, "20-2", 100, daysAgo(30), daysAgo(26)),
		paidInstallment("L2", 2, "20-2", 100, daysAgo(60), daysAgo(61)),
	}
	items[0].DaysDelayed = 999

	m := AggregatePeriod(items, nil, today)

	require.Len(t, m.DelayByProvider, 2)
	assert.Equal(t, entities.DelayStat{Name: "MUTUAL", TotalDelay: 30, Count: 2, Average: 15, Amount: 200}, m.DelayByProvider[0])
	assert.Equal(t, entities.DelayStat{Name: "Sancor 1", TotalDelay: 4, Count: 1, Average: 4, Amount: 200}, m.DelayByProvider[1])
	assert.Equal(t, m.DelayByProvider, m.TopLateProviders)

	require.Len(t, m.DelayByLine, 2)
	assert.Equal(t, "PERSONALES", m.DelayByLine[0].Name)
}

func TestAggregatePeriod_HealthExcludesFutureUnpaid(t *testing.T) {
	future := unpaid("L1", 2, "20-1", 1000, date(2024, 7, 10))
	past := unpaid("L1", 1, "20-1", 1000, date(2024, 6, 10))
	past.PaidAmount = 500
	past.RemainingBalance = 500
	past.Status = entities.InstallmentStatusParcial

	m := AggregatePeriod([]entities.Installment{future, past}, nil, today)

	require.Len(t, m.LineHealth, 1)
	assert.Equal(t, entities.LineHealth{Line: "PERSONALES", Expected: 1000, Paid: 500, Ratio: 50}, m.LineHealth[0])
}

func TestAggregatePeriod_AgeRiskAndDemographics(t *testing.T) {
	dir := ClientCache{
		"20-1": {FullName: "Joven", BirthDate: date(2000, 1, 1)},
		"20-2": {FullName: "Mayor", BirthDate: date(1950, 1, 1)},
	}
	items := []entities.Installment{
		paidInstallment("L1", 1, "20-1", 100, daysAgo(5), daysAgo(5)),
		unpaid("L1", 2, "20-1", 100, daysAgo(2)),
		paidInstallment("L2", 1, "20-2", 300, daysAgo(5), daysAgo(5)),
		unpaid("L3", 1, "20-9", 50, daysAgo(1)),
		unpaid("L4", 1, "", 70, daysAgo(1)),
	}

	m := AggregatePeriod(items, dir, today)

	groups := map[string]entities.AgeRisk{}
	for _, r := range m.AgeRisk {
		groups[r.Group] = r
	}
	require.Len(t, groups, len(entities.AgeGroups))
	assert.Equal(t, entities.AgeRisk{Group: entities.AgeGroup18To25, Expected: 200, Paid: 100, Efficiency: 50}, groups[entities.AgeGroup18To25])
	assert.Equal(t, entities.AgeRisk{Group: entities.AgeGroupOver60, Expected: 300, Paid: 300, Efficiency: 100}, groups[entities.AgeGroupOver60])
	assert.Equal(t, 50.0, groups[entities.AgeGroupUnknown].Expected)

	counts := map[string]int{}
	for _, d := range m.Demographics {
		counts[d.Group] = d.Clients
	}
	assert.Equal(t, 1, counts[entities.AgeGroup18To25])
	assert.Equal(t, 1, counts[entities.AgeGroupOver60])
	assert.Equal(t, 1, counts[entities.AgeGroupUnknown])
	assert.Equal(t, 3, m.ActiveClients)
}

func TestAggregatePeriod_TopPayersStableTies(t *testing.T) {
	var items []entities.Installment
	for i := 0; i < 12; i++ {
		amount := 100.0
		if i == 7 {
			amount = 500
		}
		items = append(items, paidInstallment(fmt.Sprintf("L%d", i), 1, fmt.Sprintf("20-%02d", i), amount, daysAgo(1), daysAgo(1)))
	}
	items[3].ClientName = "Denormalizado"

	dir := ClientCache{"20-00": {FullName: "Directorio"}}
	m := AggregatePeriod(items, dir, today)

	require.Len(t, m.TopPayers, 10)
	assert.Equal(t, "20-07", m.TopPayers[0].CUIT)
	assert.Equal(t, 500.0, m.TopPayers[0].Amount)
	assert.Equal(t, entities.ClientAmount{CUIT: "20-00", Name: "Directorio", Amount: 100}, m.TopPayers[1])
	assert.Equal(t, "CUIT 20-01", m.TopPayers[2].Name)
	assert.Equal(t, "Denormalizado", m.TopPayers[4].Name)
	assert.Equal(t, "20-09", m.TopPayers[9].CUIT)
}

func TestAggregatePeriod_ProductRankingAndStates(t *testing.T) {
	items := []entities.Installment{
		unpaid("L1", 1, "20-1", 100, daysAgo(1)),
		paidInstallment("L2", 1, "20-1", 300, daysAgo(1), daysAgo(1)),
		paidInstallment("L3", 1, "20-1", 50, daysAgo(1), daysAgo(1)),
		{LoanID: "L4", InstallmentNumber: 1, ExpectedAmount: 20, Status: entities.InstallmentStatusParcial},
	}

	m := AggregatePeriod(items, nil, today)

	assert.Equal(t, []entities.NamedAmount{
		{Name: "COMERCIO", Amount: 350},
		{Name: "PERSONALES", Amount: 100},
		{Name: fallbackProductLine, Amount: 20},
	}, m.ProductRanking)
	assert.Equal(t, 2, m.PaymentStates.Pagado)
	assert.Equal(t, 50.0, m.PaymentStates.PagadoPct)
	assert.Equal(t, 25.0, m.PaymentStates.ParcialPct)
}

func TestAggregatePeriod_ProductLineGroupingIgnoresCase(t *testing.T) {
	mixed := unpaid("L1", 1, "20-1", 100, daysAgo(1))
	mixed.ProductLine = "Personales"
	padded := unpaid("L2", 1, "20-2", 40, daysAgo(1))
	padded.ProductLine = "PERSONALES "
	blank := unpaid("L3", 1, "20-3", 10, daysAgo(1))
	blank.ProductLine = "  "

	m := AggregatePeriod([]entities.Installment{mixed, padded, blank}, nil, today)

	assert.Equal(t, []entities.NamedAmount{
		{Name: "PERSONALES", Amount: 140},
		{Name: fallbackProductLine, Amount: 10},
	}, m.ProductRanking)
}
