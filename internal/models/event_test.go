package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Headcount(t *testing.T) {
	assert.Equal(t, 245, Event{Registered: 245}.Headcount())
	assert.Equal(t, 142, Event{Attended: 142}.Headcount())
	assert.Equal(t, 0, Event{}.Headcount())
}

func TestEvent_Validate(t *testing.T) {
	valid := Event{
		Title:    "Christmas Eve Service",
		Date:     time.Date(2023, time.December, 24, 0, 0, 0, 0, time.UTC),
		Location: "Main Sanctuary",
		Category: "Worship",
		Capacity: 300,
		Status:   EventStatusOpen,
	}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.Title = " "
	invalid.Capacity = -1
	invalid.Status = "Postponed"

	var verr *ValidationError
	require.ErrorAs(t, invalid.Validate(), &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "capacity")
	assert.Contains(t, verr.Fields, "status")
}

func TestAttendee_Validate(t *testing.T) {
	valid := Attendee{Name: "Sarah Johnson", Email: "sarah.j@email.com", Status: AttendeeStatusConfirmed}
	assert.NoError(t, valid.Validate())

	invalid := Attendee{Name: "Sarah Johnson", Email: "sarah.j@email.com", Status: "maybe"}
	var verr *ValidationError
	require.ErrorAs(t, invalid.Validate(), &verr)
	assert.Equal(t, map[string]string{"status": "must be confirmed, pending or waitlist"}, verr.Fields)
}

func TestSettings_DefaultsAreValid(t *testing.T) {
	settings := DefaultSettings()

	require.NoError(t, settings.Validate())
	assert.Equal(t, Theme{Name: ThemeLight, Dark: false}, settings.ThemeDescriptor())

	settings.Theme = "sepia"
	assert.Error(t, settings.Validate())
}

func TestBulkEmailRequest_Validate(t *testing.T) {
	valid := BulkEmailRequest{Audience: AudienceSelected, Subject: "Hello", Message: "Body"}
	assert.NoError(t, valid.Validate())

	missing := BulkEmailRequest{Audience: AudienceCategory, Subject: "  "}
	var verr *ValidationError
	require.ErrorAs(t, missing.Validate(), &verr)
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "subject")
	assert.Contains(t, verr.Fields, "message")
}

func TestValidationError_Error(t *testing.T) {
	verr := NewValidationError()
	verr.Add("subject", "is required")
	verr.Add("message", "is required")
	verr.Add("subject", "ignored duplicate")

	assert.Equal(t, "validation failed: message: is required; subject: is required", verr.Error())
	assert.Nil(t, NewValidationError().OrNil())
}
