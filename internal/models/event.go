package models

import (
	"strings"
	"time"
)

const (
	EventStatusOpen      = "Open"
	EventStatusCompleted = "Completed"
	EventStatusCancelled = "Cancelled"

	// DateLayout is the calendar date format used in seeds, exports and forms.
	DateLayout = "2006-01-02"
)

// Event is a scheduled church event. Upcoming events carry Registered,
// completed ones carry Attended.
type Event struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Time        string    `gorm:"type:varchar(20)" json:"time"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	Capacity    int       `gorm:"not null;default:0" json:"capacity"`
	Registered  int       `gorm:"not null;default:0" json:"registered"`
	Attended    int       `gorm:"not null;default:0" json:"attended"`
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status"`
	Category    string    `gorm:"type:varchar(50);index" json:"category"`
}

func (e Event) EntityID() int64 { return e.ID }

func (e Event) WithEntityID(id int64) Event {
	e.ID = id
	return e
}

// TableName returns the table name for Event
func (e *Event) TableName() string {
	return "events"
}

func (e Event) IsUpcoming() bool {
	return e.Status == EventStatusOpen
}

func (e Event) IsCompleted() bool {
	return e.Status == EventStatusCompleted
}

// Headcount is the registered count, falling back to attendance for past events.
func (e Event) Headcount() int {
	if e.Registered > 0 {
		return e.Registered
	}
	return e.Attended
}

func (e Event) Validate() error {
	verr := NewValidationError()
	if strings.TrimSpace(e.Title) == "" {
		verr.Add("title", "is required")
	}
	if e.Date.IsZero() {
		verr.Add("date", "is required")
	}
	if strings.TrimSpace(e.Location) == "" {
		verr.Add("location", "is required")
	}
	if strings.TrimSpace(e.Category) == "" {
		verr.Add("category", "is required")
	}
	if e.Capacity < 0 {
		verr.Add("capacity", "must not be negative")
	}
	if e.Registered < 0 {
		verr.Add("registered", "must not be negative")
	}
	if e.Attended < 0 {
		verr.Add("attended", "must not be negative")
	}
	if e.Status != "" && !IsValidEventStatus(e.Status) {
		verr.Add("status", "must be Open, Completed or Cancelled")
	}
	return verr.OrNil()
}

func IsValidEventStatus(status string) bool {
	switch status {
	case EventStatusOpen, EventStatusCompleted, EventStatusCancelled:
		return true
	default:
		return false
	}
}

// EventCategories are the categories offered by the event form.
var EventCategories = []string{
	"Worship",
	"Youth",
	"Education",
	"Bible Study",
	"Community",
	"Outreach",
	"Fellowship",
}
