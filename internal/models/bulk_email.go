package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	AudienceSelected = "selected"
	AudienceCategory = "category"

	BulkEmailStatusSending = "sending"
	BulkEmailStatusSent    = "sent"
	BulkEmailStatusFailed  = "failed"
)

// BulkEmailRequest describes one message sent to many members.
type BulkEmailRequest struct {
	Audience string
	Category string
	Subject  string
	Message  string
}

func (r BulkEmailRequest) Validate() error {
	verr := NewValidationError()
	if r.Audience != AudienceSelected && r.Audience != AudienceCategory {
		verr.Add("audience", "must be selected or category")
	}
	if r.Audience == AudienceCategory && strings.TrimSpace(r.Category) == "" {
		verr.Add("category", "is required")
	}
	if strings.TrimSpace(r.Subject) == "" {
		verr.Add("subject", "is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		verr.Add("message", "is required")
	}
	return verr.OrNil()
}

// BulkEmailJob tracks an asynchronous bulk email send.
type BulkEmailJob struct {
	ID          uuid.UUID  `json:"id"`
	Audience    string     `json:"audience"`
	Category    string     `json:"category,omitempty"`
	Subject     string     `json:"subject"`
	Recipients  int        `json:"recipients"`
	Status      string     `json:"status"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (j *BulkEmailJob) Finish(err error) {
	now := time.Now()
	j.CompletedAt = &now
	if err != nil {
		j.Status = BulkEmailStatusFailed
		j.Error = err.Error()
		return
	}
	j.Status = BulkEmailStatusSent
}
