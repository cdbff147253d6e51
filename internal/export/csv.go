// Package export renders the visible rows of a screen as a CSV download.
package export

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"

	"churchconnect/internal/models"
)

const ContentType = "text/csv; charset=utf-8"

// Column is one CSV column. Text columns are always quoted; numeric columns
// are written bare.
type Column[T any] struct {
	Header  string
	Value   func(T) string
	Numeric bool
}

// Table describes the CSV layout of one screen.
type Table[T any] struct {
	FileName func(now time.Time) string
	Columns  []Column[T]
}

// File is a rendered export ready to be served as an attachment.
type File struct {
	Name        string
	ContentType string
	Body        []byte
	Rows        int
}

// Write emits the header row followed by one line per row.
func (t Table[T]) Write(w io.Writer, rows []T) error {
	bw := bufio.NewWriter(w)

	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Header
	}
	if _, err := bw.WriteString(strings.Join(headers, ",") + "\n"); err != nil {
		return err
	}

	fields := make([]string, len(t.Columns))
	for _, row := range rows {
		for i, col := range t.Columns {
			value := col.Value(row)
			if col.Numeric {
				fields[i] = value
			} else {
				fields[i] = quote(value)
			}
		}
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Render writes rows into a File named for now.
func (t Table[T]) Render(rows []T, now time.Time) (File, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, rows); err != nil {
		return File{}, err
	}
	return File{
		Name:        t.FileName(now),
		ContentType: ContentType,
		Body:        buf.Bytes(),
		Rows:        len(rows),
	}, nil
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func fixedName(name string) func(time.Time) string {
	return func(time.Time) string { return name }
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func Events() Table[models.Event] {
	return Table[models.Event]{
		FileName: fixedName("events_export.csv"),
		Columns: []Column[models.Event]{
			{Header: "Title", Value: func(e models.Event) string { return e.Title }},
			{Header: "Date", Value: func(e models.Event) string { return e.Date.Format(models.DateLayout) }},
			{Header: "Time", Value: func(e models.Event) string { return e.Time }},
			{Header: "Location", Value: func(e models.Event) string { return e.Location }},
			{Header: "Category", Value: func(e models.Event) string { return e.Category }},
			{Header: "Registered", Numeric: true, Value: func(e models.Event) string { return itoa(e.Headcount()) }},
			{Header: "Capacity", Numeric: true, Value: func(e models.Event) string { return itoa(e.Capacity) }},
		},
	}
}

func Transactions() Table[models.Transaction] {
	return Table[models.Transaction]{
		FileName: func(now time.Time) string {
			return "transactions_" + now.UTC().Format(models.DateLayout) + ".csv"
		},
		Columns: []Column[models.Transaction]{
			{Header: "Date", Value: func(t models.Transaction) string { return t.Date.Format(models.DateLayout) }},
			{Header: "Type", Value: func(t models.Transaction) string { return t.Type }},
			{Header: "Category", Value: func(t models.Transaction) string { return t.Category }},
			{Header: "Description", Value: func(t models.Transaction) string { return t.Description }},
			{Header: "Amount", Numeric: true, Value: func(t models.Transaction) string { return t.Amount.String() }},
			{Header: "Payment Method", Value: func(t models.Transaction) string { return t.Method }},
		},
	}
}

func Members() Table[models.Member] {
	return Table[models.Member]{
		FileName: fixedName("members_export.csv"),
		Columns: []Column[models.Member]{
			{Header: "Name", Value: func(m models.Member) string { return m.Name }},
			{Header: "Email", Value: func(m models.Member) string { return m.Email }},
			{Header: "Phone", Value: func(m models.Member) string { return m.Phone }},
			{Header: "Status", Value: func(m models.Member) string { return m.Status }},
			{Header: "Worker Category", Value: func(m models.Member) string { return m.WorkerCategory }},
			{Header: "Join Date", Value: func(m models.Member) string { return m.JoinDate }},
		},
	}
}

func Attendees() Table[models.Attendee] {
	return Table[models.Attendee]{
		FileName: fixedName("attendees_export.csv"),
		Columns: []Column[models.Attendee]{
			{Header: "Name", Value: func(a models.Attendee) string { return a.Name }},
			{Header: "Email", Value: func(a models.Attendee) string { return a.Email }},
			{Header: "Phone", Value: func(a models.Attendee) string { return a.Phone }},
			{Header: "Status", Value: func(a models.Attendee) string { return a.Status }},
			{Header: "Registered At", Value: func(a models.Attendee) string { return a.RegisteredAt.Format(time.RFC3339) }},
		},
	}
}
