package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"mutual_cartera/internal/domain/entities"
	"mutual_cartera/internal/domain/ingest"
)

type delayAccumulator struct {
	index map[string]int
	stats []entities.DelayStat
}

func newDelayAccumulator() *delayAccumulator {
	return &delayAccumulator{index: make(map[string]int)}
}

func (a *delayAccumulator) add(name string, expected float64, delay int) {
	i, ok := a.index[name]
	if !ok {
		i = len(a.stats)
		a.index[name] = i
		a.stats = append(a.stats, entities.DelayStat{Name: name})
	}
	a.stats[i].Amount += expected
	if delay > 0 {
		a.stats[i].TotalDelay += delay
		a.stats[i].Count++
	}
}

func (a *delayAccumulator) result() []entities.DelayStat {
	out := make([]entities.DelayStat, len(a.stats))
	for i, s := range a.stats {
		s.Average = ratio(float64(s.TotalDelay), float64(s.Count))
		out[i] = s
	}
	return out
}

type namedSums struct {
	index map[string]int
	rows  []entities.LineHealth
}

func (n *namedSums) add(name string, expected, paid float64) {
	i, ok := n.index[name]
	if !ok {
		i = len(n.rows)
		n.index[name] = i
		n.rows = append(n.rows, entities.LineHealth{Line: name})
	}
	n.rows[i].Expected += expected
	n.rows[i].Paid += paid
}

// periodAccumulator holds every running figure of AggregatePeriod so that each
// installment is read exactly once.
type periodAccumulator struct {
	today time.Time
	dir   ClientDirectory

	records      int
	expected     decimal.Decimal
	paid         decimal.Decimal
	mora         decimal.Decimal
	delayedDays  int
	delayedItems int

	monthly    [12]entities.MonthlyAmount
	cashFlow   [12]entities.MonthlyCashFlow
	refinance  [12]entities.MonthlyRefinancing
	seenLoans  map[string]struct{}
	products   map[string]int
	ranking    []entities.NamedAmount
	states     entities.PaymentStates
	byLine     *delayAccumulator
	byProvider *delayAccumulator
	comp       entities.PortfolioComposition
	health     namedSums
	ageRisk    map[string]*entities.AgeRisk
	activeAge  map[string]string
	payers     *clientTotals
}

func newPeriodAccumulator(dir ClientDirectory, today time.Time) *periodAccumulator {
	acc := &periodAccumulator{
		today:      today,
		dir:        dir,
		seenLoans:  make(map[string]struct{}),
		products:   make(map[string]int),
		byLine:     newDelayAccumulator(),
		byProvider: newDelayAccumulator(),
		health:     namedSums{index: make(map[string]int)},
		ageRisk:    make(map[string]*entities.AgeRisk, len(entities.AgeGroups)),
		activeAge:  make(map[string]string),
		payers:     newClientTotals(),
	}
	for _, g := range entities.AgeGroups {
		acc.ageRisk[g] = &entities.AgeRisk{Group: g}
	}
	return acc
}

func (acc *periodAccumulator) add(inst entities.Installment) {
	acc.records++

	line := strings.ToUpper(strings.TrimSpace(inst.ProductLine))
	if line == "" {
		line = fallbackProductLine
	}
	provider := inst.Provider
	if provider == "" {
		provider = ingest.DefaultProvider
	}
	expected, paid, remaining := inst.ExpectedAmount, inst.PaidAmount, inst.RemainingBalance

	// KPIs use the delay stored at ingestion.
	acc.expected = acc.expected.Add(cents(expected))
	acc.paid = acc.paid.Add(cents(paid))
	if isUnpaid(inst) {
		acc.mora = acc.mora.Add(cents(remaining))
	}
	if inst.DaysDelayed > 0 {
		acc.delayedDays += inst.DaysDelayed
		acc.delayedItems++
	}

	if m := dueMonth(inst, acc.today.Location()); m >= 0 {
		acc.monthly[m].Amount += expected
		acc.monthly[m].Count++
		acc.cashFlow[m].Expected += expected
		acc.cashFlow[m].Paid += paid
	}

	if i, ok := acc.products[line]; ok {
		acc.ranking[i].Amount += expected
	} else {
		acc.products[line] = len(acc.ranking)
		acc.ranking = append(acc.ranking, entities.NamedAmount{Name: line, Amount: expected})
	}

	acc.addRefinancing(inst)

	switch inst.Status {
	case entities.InstallmentStatusPagado:
		acc.states.Pagado++
	case entities.InstallmentStatusParcial:
		acc.states.Parcial++
	default:
		acc.states.Impago++
	}

	delay := liveDelay(inst, acc.today)
	acc.byLine.add(line, expected, delay)
	acc.byProvider.add(provider, expected, delay)

	switch {
	case delay <= 5:
		acc.comp.Vigente += expected
	case delay <= 30:
		acc.comp.Mora30 += expected
	case delay <= 60:
		acc.comp.Mora60 += expected
	default:
		acc.comp.Mora90Plus += expected
	}

	included := paid > 0 || (inst.DueDate != nil && !inst.DueDate.After(acc.today))
	if included {
		acc.health.add(line, expected, paid)
	}

	if inst.ClientCUIT == "" {
		return
	}
	client := resolveClient(acc.dir, inst)
	group, seen := acc.activeAge[inst.ClientCUIT]
	if !seen {
		group = ageGroup(client.BirthDate, acc.today)
		acc.activeAge[inst.ClientCUIT] = group
	}
	if included {
		acc.ageRisk[group].Expected += expected
		acc.ageRisk[group].Paid += paid
	}
	if paid > 0 {
		acc.payers.add(inst.ClientCUIT, displayName(client, inst.ClientCUIT), paid)
	}
}

// addRefinancing attributes loan-level amounts once per loan, to the month the
// loan was issued.
func (acc *periodAccumulator) addRefinancing(inst entities.Installment) {
	if inst.IssueDate == nil {
		return
	}
	if _, ok := acc.seenLoans[inst.LoanID]; ok {
		return
	}
	acc.seenLoans[inst.LoanID] = struct{}{}

	m := int(inst.IssueDate.In(acc.today.Location()).Month()) - 1
	cash := inst.DisbursedAmount - inst.RefinancedAmount
	if cash < 0 {
		cash = 0
	}
	acc.refinance[m].Cash += cash
	acc.refinance[m].Refinanced += inst.RefinancedAmount
}

func (acc *periodAccumulator) result() entities.PeriodMetrics {
	expected := acc.expected.InexactFloat64()
	paid := acc.paid.InexactFloat64()

	out := entities.PeriodMetrics{
		Records: acc.records,
		KPIs: entities.PortfolioKPIs{
			Expected:         expected,
			Paid:             paid,
			Mora:             acc.mora.InexactFloat64(),
			TotalDelayedDays: acc.delayedDays,
			DelayedItems:     acc.delayedItems,
			Effectiveness:    percent(paid, expected),
			AverageDelay:     ratio(float64(acc.delayedDays), float64(acc.delayedItems)),
		},
		MonthlyEvolution: acc.monthly,
		CashFlow:         acc.cashFlow,
		CashVsRefinance:  acc.refinance,
		Composition:      acc.comp,
		ActiveClients:    len(acc.activeAge),
		TopPayers:        acc.payers.top(topClientsLimit),
	}

	out.ProductRanking = append([]entities.NamedAmount(nil), acc.ranking...)
	sort.SliceStable(out.ProductRanking, func(i, j int) bool {
		return out.ProductRanking[i].Amount > out.ProductRanking[j].Amount
	})

	states := acc.states
	total := float64(states.Pagado + states.Parcial + states.Impago)
	states.PagadoPct = percent(float64(states.Pagado), total)
	states.ParcialPct = percent(float64(states.Parcial), total)
	states.ImpagoPct = percent(float64(states.Impago), total)
	out.PaymentStates = states

	out.DelayByLine = acc.byLine.result()
	out.DelayByProvider = acc.byProvider.result()
	sort.SliceStable(out.DelayByProvider, func(i, j int) bool {
		return out.DelayByProvider[i].Average > out.DelayByProvider[j].Average
	})
	out.TopLateProviders = append([]entities.DelayStat(nil), out.DelayByProvider[:min(len(out.DelayByProvider), topProvidersLimit)]...)

	out.LineHealth = make([]entities.LineHealth, len(acc.health.rows))
	for i, h := range acc.health.rows {
		h.Ratio = percent(h.Paid, h.Expected)
		if h.Ratio > 100 {
			h.Ratio = 100
		}
		out.LineHealth[i] = h
	}
	sort.SliceStable(out.LineHealth, func(i, j int) bool {
		return out.LineHealth[i].Ratio > out.LineHealth[j].Ratio
	})

	counts := make(map[string]int, len(entities.AgeGroups))
	for _, g := range acc.activeAge {
		counts[g]++
	}
	for _, g := range entities.AgeGroups {
		risk := *acc.ageRisk[g]
		risk.Efficiency = percent(risk.Paid, risk.Expected)
		out.AgeRisk = append(out.AgeRisk, risk)
		out.Demographics = append(out.Demographics, entities.AgeGroupCount{Group: g, Clients: counts[g]})
	}

	return out
}

func isUnpaid(inst entities.Installment) bool {
	switch inst.Status {
	case entities.InstallmentStatusImpago, entities.InstallmentStatusParcial:
		return true
	case "":
		return inst.RemainingBalance > unpaidRemainderThreshold
	default:
		return false
	}
}

// AggregatePeriod reduces the installments due in a period to its metrics
// bundle in a single pass. Monthly figures use the calendar month of today's
// location; installments without a due date only reach the totals.
func AggregatePeriod(items []entities.Installment, dir ClientDirectory, today time.Time) entities.PeriodMetrics {
	acc := newPeriodAccumulator(dir, today)
	for _, inst := range items {
		acc.add(inst)
	}
	return acc.result()
}
