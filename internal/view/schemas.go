package view

import (
	"strings"

	"churchconnect/internal/models"
)

// Filter keys shared by handlers and tests.
const (
	KeyStatus         = "status"
	KeyWorkerCategory = "workerCategory"
	KeyCategory       = "category"
	KeyLocation       = "location"
	KeyCapacity       = "capacity"
	KeyType           = "type"
	KeyMethod         = "method"
	KeyMonth          = "month"
	KeyYear           = "year"
	KeyAmount         = "amount"
)

func MemberSchema() Schema[models.Member] {
	return Schema[models.Member]{
		Search: []func(models.Member) string{
			func(m models.Member) string { return m.Name },
			func(m models.Member) string { return m.Email },
		},
		Fields: []Field[models.Member]{
			{Key: KeyStatus, Text: func(m models.Member) string { return m.Status }, FoldCase: true},
			{Key: KeyWorkerCategory, Text: func(m models.Member) string { return m.WorkerCategory }},
		},
		Sorts: []SortKey[models.Member]{
			{Key: "name", Less: func(a, b models.Member) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }},
			{Key: "join_date", Less: func(a, b models.Member) bool { return a.JoinDate < b.JoinDate }},
		},
	}
}

func EventSchema() Schema[models.Event] {
	return Schema[models.Event]{
		Search: []func(models.Event) string{
			func(e models.Event) string { return e.Title },
			func(e models.Event) string { return e.Description },
		},
		Fields: []Field[models.Event]{
			{Key: KeyCategory, Text: func(e models.Event) string { return e.Category }},
			{Key: KeyStatus, Text: func(e models.Event) string { return e.Status }},
			{Key: KeyLocation, Text: func(e models.Event) string { return e.Location }},
			{Key: KeyCapacity, Kind: RangeField, Number: func(e models.Event) float64 { return float64(e.Capacity) }},
		},
		Sorts: []SortKey[models.Event]{
			{Key: "date", Less: func(a, b models.Event) bool { return a.Date.Before(b.Date) }},
			{Key: "title", Less: func(a, b models.Event) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }},
			{Key: "capacity", Less: func(a, b models.Event) bool { return a.Capacity < b.Capacity }},
		},
	}
}

func TransactionSchema() Schema[models.Transaction] {
	return Schema[models.Transaction]{
		Search: []func(models.Transaction) string{
			func(t models.Transaction) string { return t.Description },
			func(t models.Transaction) string { return t.Category },
		},
		Fields: []Field[models.Transaction]{
			{Key: KeyCategory, Text: func(t models.Transaction) string { return t.Category }},
			{Key: KeyType, Text: func(t models.Transaction) string { return t.Type }},
			{Key: KeyMethod, Text: func(t models.Transaction) string { return t.Method }},
			{Key: KeyMonth, Text: models.Transaction.Month},
			{Key: KeyYear, Text: models.Transaction.Year},
			{Key: KeyAmount, Kind: RangeField, Number: func(t models.Transaction) float64 { return t.Amount.Abs().InexactFloat64() }},
		},
		Sorts: []SortKey[models.Transaction]{
			{Key: "date", Less: func(a, b models.Transaction) bool { return a.Date.Before(b.Date) }},
			{Key: "amount", Less: func(a, b models.Transaction) bool { return a.Amount.LessThan(b.Amount) }},
		},
	}
}

func AttendeeSchema() Schema[models.Attendee] {
	return Schema[models.Attendee]{
		Search: []func(models.Attendee) string{
			func(a models.Attendee) string { return a.Name },
			func(a models.Attendee) string { return a.Email },
		},
		Fields: []Field[models.Attendee]{
			{Key: KeyStatus, Text: func(a models.Attendee) string { return a.Status }},
		},
		Sorts: []SortKey[models.Attendee]{
			{Key: "name", Less: func(a, b models.Attendee) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }},
			{Key: "registered_at", Less: func(a, b models.Attendee) bool { return a.RegisteredAt.Before(b.RegisteredAt) }},
		},
	}
}
