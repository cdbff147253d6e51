package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"churchconnect/internal/models"
)

// MemberRequest is the add member form.
type MemberRequest struct {
	Name           string                `json:"name" validate:"required"`
	Email          string                `json:"email" validate:"required,email"`
	Phone          string                `json:"phone"`
	Address        string                `json:"address"`
	Birthdate      string                `json:"birthdate" validate:"omitempty,calendar_date"`
	JoinDate       string                `json:"join_date" validate:"omitempty,calendar_date"`
	WorkerCategory string                `json:"workerCategory"`
	MinistryGroup  models.MinistryGroups `json:"ministry_group"`
	Status         string                `json:"status" validate:"omitempty,member_status"`
}

// ToModel fills the form defaults: active status and a join date of today.
func (r MemberRequest) ToModel(now time.Time) models.Member {
	status := r.Status
	if status == "" {
		status = models.MemberStatusActive
	}
	joinDate := r.JoinDate
	if joinDate == "" {
		joinDate = now.Format(models.DateLayout)
	}
	return models.Member{
		Name:           strings.TrimSpace(r.Name),
		Email:          strings.TrimSpace(r.Email),
		Phone:          r.Phone,
		Address:        r.Address,
		Birthdate:      r.Birthdate,
		JoinDate:       joinDate,
		WorkerCategory: r.WorkerCategory,
		MinistryGroup:  r.MinistryGroup,
		Status:         status,
	}
}

// MemberPatch is the edit member form. Absent fields keep their value.
type MemberPatch struct {
	Name           *string                `json:"name" validate:"omitempty,min=1"`
	Email          *string                `json:"email" validate:"omitempty,email"`
	Phone          *string                `json:"phone"`
	Address        *string                `json:"address"`
	Birthdate      *string                `json:"birthdate" validate:"omitempty,calendar_date"`
	JoinDate       *string                `json:"join_date" validate:"omitempty,calendar_date"`
	WorkerCategory *string                `json:"workerCategory"`
	MinistryGroup  *models.MinistryGroups `json:"ministry_group"`
	Status         *string                `json:"status" validate:"omitempty,member_status"`
}

func (p MemberPatch) Apply(m models.Member) models.Member {
	setString(&m.Name, p.Name)
	setString(&m.Email, p.Email)
	setString(&m.Phone, p.Phone)
	setString(&m.Address, p.Address)
	setString(&m.Birthdate, p.Birthdate)
	setString(&m.JoinDate, p.JoinDate)
	setString(&m.WorkerCategory, p.WorkerCategory)
	setString(&m.Status, p.Status)
	if p.MinistryGroup != nil {
		m.MinistryGroup = *p.MinistryGroup
	}
	return m
}

// EventRequest is the add event form.
type EventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required,calendar_date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity" validate:"gte=0"`
	Registered  int    `json:"registered" validate:"gte=0"`
	Attended    int    `json:"attended" validate:"gte=0"`
	Status      string `json:"status" validate:"omitempty,event_status"`
	Category    string `json:"category"`
}

func (r EventRequest) ToModel() models.Event {
	status := r.Status
	if status == "" {
		status = models.EventStatusOpen
	}
	return models.Event{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Date:        parseDate(r.Date),
		Time:        r.Time,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Registered:  r.Registered,
		Attended:    r.Attended,
		Status:      status,
		Category:    r.Category,
	}
}

type EventPatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Date        *string `json:"date" validate:"omitempty,calendar_date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gte=0"`
	Registered  *int    `json:"registered" validate:"omitempty,gte=0"`
	Attended    *int    `json:"attended" validate:"omitempty,gte=0"`
	Status      *string `json:"status" validate:"omitempty,event_status"`
	Category    *string `json:"category"`
}

func (p EventPatch) Apply(e models.Event) models.Event {
	setString(&e.Title, p.Title)
	setString(&e.Description, p.Description)
	setString(&e.Time, p.Time)
	setString(&e.Location, p.Location)
	setString(&e.Status, p.Status)
	setString(&e.Category, p.Category)
	setInt(&e.Capacity, p.Capacity)
	setInt(&e.Registered, p.Registered)
	setInt(&e.Attended, p.Attended)
	if p.Date != nil {
		e.Date = parseDate(*p.Date)
	}
	return e
}

// TransactionRequest is the add transaction form. Amount is entered
// positive; the sign follows Type.
type TransactionRequest struct {
	Type        string  `json:"type" validate:"required,transaction_type"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,transaction_amount"`
	Date        string  `json:"date" validate:"required,calendar_date"`
	Description string  `json:"description"`
	Method      string  `json:"method"`
}

func (r TransactionRequest) ToModel() models.Transaction {
	return models.Transaction{
		Type:        r.Type,
		Category:    r.Category,
		Amount:      models.SignedAmount(r.Type, decimal.NewFromFloat(r.Amount)),
		Date:        parseDate(r.Date),
		Description: strings.TrimSpace(r.Description),
		Method:      r.Method,
	}
}

type TransactionPatch struct {
	Type        *string  `json:"type" validate:"omitempty,transaction_type"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	Amount      *float64 `json:"amount" validate:"omitempty,transaction_amount"`
	Date        *string  `json:"date" validate:"omitempty,calendar_date"`
	Description *string  `json:"description"`
	Method      *string  `json:"method"`
}

// Apply re-signs the amount whenever the type or the amount changes.
func (p TransactionPatch) Apply(t models.Transaction) models.Transaction {
	setString(&t.Type, p.Type)
	setString(&t.Category, p.Category)
	setString(&t.Description, p.Description)
	setString(&t.Method, p.Method)
	if p.Date != nil {
		t.Date = parseDate(*p.Date)
	}

	amount := t.Amount.Abs()
	if p.Amount != nil {
		amount = decimal.NewFromFloat(*p.Amount)
	}
	t.Amount = models.SignedAmount(t.Type, amount)
	return t
}

type AttendeeRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Status string `json:"status" validate:"required,attendee_status"`
}

func (r AttendeeRequest) ToModel(now time.Time) models.Attendee {
	return models.Attendee{
		Name:         strings.TrimSpace(r.Name),
		Email:        strings.TrimSpace(r.Email),
		Phone:        r.Phone,
		Status:       r.Status,
		RegisteredAt: now,
	}
}

type AttendeePatch struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status" validate:"omitempty,attendee_status"`
}

func (p AttendeePatch) Apply(a models.Attendee) models.Attendee {
	setString(&a.Name, p.Name)
	setString(&a.Email, p.Email)
	setString(&a.Phone, p.Phone)
	setString(&a.Status, p.Status)
	return a
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// parseDate expects input already checked by the calendar_date rule.
func parseDate(raw string) time.Time {
	t, _ := time.Parse(models.DateLayout, raw)
	return t
}
