package models

import (
	"strings"
	"time"
)

const (
	AttendeeStatusConfirmed = "confirmed"
	AttendeeStatusPending   = "pending"
	AttendeeStatusWaitlist  = "waitlist"
)

type Attendee struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func (a Attendee) EntityID() int64 { return a.ID }

func (a Attendee) WithEntityID(id int64) Attendee {
	a.ID = id
	return a
}

func (a Attendee) Validate() error {
	verr := NewValidationError()
	if strings.TrimSpace(a.Name) == "" {
		verr.Add("name", "is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		verr.Add("email", "is required")
	} else if !emailPattern.MatchString(a.Email) {
		verr.Add("email", "must be a valid email address")
	}
	if !IsValidAttendeeStatus(a.Status) {
		verr.Add("status", "must be confirmed, pending or waitlist")
	}
	return verr.OrNil()
}

func IsValidAttendeeStatus(status string) bool {
	switch status {
	case AttendeeStatusConfirmed, AttendeeStatusPending, AttendeeStatusWaitlist:
		return true
	default:
		return false
	}
}
