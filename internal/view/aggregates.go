package view

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"churchconnect/internal/models"
)

// CategoryCount is one bucket of a grouped count, in first-seen order.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryTotal is one bucket of a grouped sum, in first-seen order.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) buckets() []CategoryCount {
	out := make([]CategoryCount, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, CategoryCount{Category: key, Count: c.counts[key]})
	}
	return out
}

type MemberAggregates struct {
	Total            int             `json:"total"`
	Active           int             `json:"active"`
	Inactive         int             `json:"inactive"`
	ByWorkerCategory []CategoryCount `json:"by_worker_category"`
	StatsLabel       string          `json:"stats_label"`
}

// AggregateMembers summarizes the filtered members. The label depends on the
// worker-category filter the way the stats card reads it.
func AggregateMembers(members []models.Member, workerCategory string) MemberAggregates {
	agg := MemberAggregates{Total: len(members), StatsLabel: MemberStatsLabel(workerCategory)}
	byCategory := newCounter()
	for _, m := range members {
		if m.IsActive() {
			agg.Active++
		} else {
			agg.Inactive++
		}
		byCategory.add(m.WorkerCategory)
	}
	agg.ByWorkerCategory = byCategory.buckets()
	return agg
}

func MemberStatsLabel(workerCategory string) string {
	switch {
	case Unconstrained(workerCategory):
		return "Total Members"
	case workerCategory == "member":
		return "Church Members"
	default:
		return "Workers"
	}
}

type EventAggregates struct {
	Total             int             `json:"total"`
	Upcoming          int             `json:"upcoming"`
	Completed         int             `json:"completed"`
	ByCategory        []CategoryCount `json:"by_category"`
	TotalCapacity     int             `json:"total_capacity"`
	TotalRegistered   int             `json:"total_registered"`
	AverageAttendance int             `json:"average_attendance"`
	CompletionRate    int             `json:"completion_rate"`
	MinCapacity       int             `json:"min_capacity"`
	MaxCapacity       int             `json:"max_capacity"`
	AverageCapacity   float64         `json:"average_capacity"`
	FillRate          float64         `json:"fill_rate"`
}

// AggregateEvents computes the analytics cards. Capacity and registration
// totals cover upcoming events, attendance covers completed ones.
func AggregateEvents(events []models.Event) EventAggregates {
	agg := EventAggregates{Total: len(events)}
	byCategory := newCounter()
	attended := 0
	capacitySum := 0

	for i, e := range events {
		byCategory.add(e.Category)
		capacitySum += e.Capacity
		if i == 0 || e.Capacity < agg.MinCapacity {
			agg.MinCapacity = e.Capacity
		}
		if i == 0 || e.Capacity > agg.MaxCapacity {
			agg.MaxCapacity = e.Capacity
		}

		switch {
		case e.IsUpcoming():
			agg.Upcoming++
			agg.TotalCapacity += e.Capacity
			agg.TotalRegistered += e.Registered
		case e.IsCompleted():
			agg.Completed++
			attended += e.Attended
		}
	}

	agg.ByCategory = byCategory.buckets()
	if agg.Completed > 0 {
		agg.AverageAttendance = int(math.Round(float64(attended) / float64(agg.Completed)))
	}
	if agg.Total > 0 {
		agg.CompletionRate = int(math.Round(float64(agg.Completed) / float64(agg.Total) * 100))
		agg.AverageCapacity = roundTo(float64(capacitySum)/float64(agg.Total), 2)
	}
	if agg.TotalCapacity > 0 {
		agg.FillRate = roundTo(float64(agg.TotalRegistered)/float64(agg.TotalCapacity)*100, 2)
	}
	return agg
}

const (
	HealthPositive = "positive"
	HealthWarning  = "warning"
	HealthNegative = "negative"
)

type FinanceAggregates struct {
	Count            int             `json:"count"`
	IncomeCount      int             `json:"income_count"`
	ExpenseCount     int             `json:"expense_count"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetIncome        decimal.Decimal `json:"net_income"`
	ByCategory       []CategoryTotal `json:"by_category"`
	TopCategory      *CategoryTotal  `json:"top_category,omitempty"`
	MinAmount        decimal.Decimal `json:"min_amount"`
	MaxAmount        decimal.Decimal `json:"max_amount"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
	HealthScore      decimal.Decimal `json:"health_score"`
	HealthRating     string          `json:"health_rating"`
	PositiveCashFlow bool            `json:"positive_cash_flow"`
}

var hundred = decimal.NewFromInt(100)

// AggregateFinance splits signed amounts into income and expenses. Category
// totals and the average use absolute values.
func AggregateFinance(transactions []models.Transaction) FinanceAggregates {
	agg := FinanceAggregates{
		Count:         len(transactions),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		MinAmount:     decimal.Zero,
		MaxAmount:     decimal.Zero,
		AverageAmount: decimal.Zero,
	}

	order := []string{}
	totals := make(map[string]decimal.Decimal)
	absSum := decimal.Zero

	for i, t := range transactions {
		switch {
		case t.Amount.IsPositive():
			agg.IncomeCount++
			agg.TotalIncome = agg.TotalIncome.Add(t.Amount)
		case t.Amount.IsNegative():
			agg.ExpenseCount++
			agg.TotalExpenses = agg.TotalExpenses.Add(t.Amount.Abs())
		}

		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
			totals[t.Category] = decimal.Zero
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount.Abs())
		absSum = absSum.Add(t.Amount.Abs())

		if i == 0 || t.Amount.LessThan(agg.MinAmount) {
			agg.MinAmount = t.Amount
		}
		if i == 0 || t.Amount.GreaterThan(agg.MaxAmount) {
			agg.MaxAmount = t.Amount
		}
	}

	agg.NetIncome = agg.TotalIncome.Sub(agg.TotalExpenses)
	agg.PositiveCashFlow = agg.NetIncome.IsPositive()

	agg.ByCategory = make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		bucket := CategoryTotal{Category: category, Total: totals[category]}
		agg.ByCategory = append(agg.ByCategory, bucket)
		if agg.TopCategory == nil || bucket.Total.GreaterThan(agg.TopCategory.Total) {
			top := bucket
			agg.TopCategory = &top
		}
	}

	if agg.Count > 0 {
		agg.AverageAmount = absSum.Div(decimal.NewFromInt(int64(agg.Count))).Round(2)
	}

	agg.HealthScore = HealthScore(agg.TotalIncome, agg.TotalExpenses)
	agg.HealthRating = HealthRating(agg.HealthScore)
	return agg
}

// HealthScore is 100 minus the expense ratio as a percentage, clamped to
// [0, 100]. Without income the score is 0, or 100 when nothing was spent.
func HealthScore(income, expenses decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		if expenses.IsPositive() {
			return decimal.Zero
		}
		return hundred
	}

	score := hundred.Sub(expenses.Div(income).Mul(hundred))
	if score.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if score.GreaterThan(hundred) {
		return hundred
	}
	return score.Round(2)
}

func HealthRating(score decimal.Decimal) string {
	switch {
	case score.GreaterThan(decimal.NewFromInt(70)):
		return HealthPositive
	case score.GreaterThan(decimal.NewFromInt(40)):
		return HealthWarning
	default:
		return HealthNegative
	}
}

type AttendeeAggregates struct {
	Total     int `json:"total"`
	Visible   int `json:"visible"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Waitlist  int `json:"waitlist"`
}

// AggregateAttendees counts statuses over the whole list; Visible is the
// filtered count.
func AggregateAttendees(all []models.Attendee, visible int) AttendeeAggregates {
	agg := AttendeeAggregates{Total: len(all), Visible: visible}
	for _, a := range all {
		switch strings.ToLower(a.Status) {
		case models.AttendeeStatusConfirmed:
			agg.Confirmed++
		case models.AttendeeStatusPending:
			agg.Pending++
		case models.AttendeeStatusWaitlist:
			agg.Waitlist++
		}
	}
	return agg
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
