package view

import (
	"slices"
	"time"

	"churchconnect/internal/models"
)

// Options are the distinct values a screen offers in its filter selects.
// They are drawn from the full collection, not the filtered view.
type Options map[string][]string

func distinct[T any](items []T, value func(T) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, item := range items {
		v := value(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func MemberOptions(categories models.WorkerCategories) Options {
	keys := make([]string, 0, len(categories))
	for key := range categories.WithAll() {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return Options{
		KeyStatus:         {"all", "active", "inactive"},
		KeyWorkerCategory: keys,
	}
}

func EventOptions(events []models.Event) Options {
	return Options{
		KeyCategory: distinct(events, func(e models.Event) string { return e.Category }),
		KeyStatus:   distinct(events, func(e models.Event) string { return e.Status }),
		KeyLocation: distinct(events, func(e models.Event) string { return e.Location }),
		KeyCapacity: {"0-50", "51-150", "151-300", "300+"},
	}
}

// FinanceOptions lists months newest first, the way the month select reads.
func FinanceOptions(transactions []models.Transaction) Options {
	type month struct {
		label string
		start time.Time
	}
	seen := make(map[string]struct{})
	months := []month{}
	for _, t := range transactions {
		label := t.Month()
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		months = append(months, month{label: label, start: time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC)})
	}
	slices.SortFunc(months, func(a, b month) int { return b.start.Compare(a.start) })

	monthLabels := make([]string, 0, len(months))
	for _, m := range months {
		monthLabels = append(monthLabels, m.label)
	}

	years := distinct(transactions, models.Transaction.Year)
	slices.Reverse(years)

	return Options{
		KeyCategory: distinct(transactions, func(t models.Transaction) string { return t.Category }),
		KeyType:     {models.TransactionTypeIncome, models.TransactionTypeExpense},
		KeyMethod:   distinct(transactions, func(t models.Transaction) string { return t.Method }),
		KeyMonth:    monthLabels,
		KeyYear:     years,
	}
}

func AttendeeOptions() Options {
	return Options{
		KeyStatus: {models.AttendeeStatusConfirmed, models.AttendeeStatusPending, models.AttendeeStatusWaitlist},
	}
}
