package models

import (
	"encoding/json"
	"strings"
)

const (
	MemberStatusActive   = "Active"
	MemberStatusInactive = "Inactive"
)

// Member is a congregation member as served by the members REST API.
type Member struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	Birthdate      string         `json:"birthdate"`
	JoinDate       string         `json:"join_date"`
	WorkerCategory string         `json:"workerCategory"`
	MinistryGroup  MinistryGroups `json:"ministry_group"`
	Status         string         `json:"status"`
}

func (m Member) EntityID() int64 { return m.ID }

func (m Member) WithEntityID(id int64) Member {
	m.ID = id
	return m
}

// IsActive compares case-insensitively; the API is not consistent about casing.
func (m Member) IsActive() bool {
	return strings.EqualFold(m.Status, MemberStatusActive)
}

// UnmarshalJSON accepts both workerCategory and worker_category.
func (m *Member) UnmarshalJSON(data []byte) error {
	type plain Member
	aux := struct {
		*plain
		SnakeWorkerCategory *string `json:"worker_category"`
	}{plain: (*plain)(m)}

	before := m.WorkerCategory
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.SnakeWorkerCategory != nil && m.WorkerCategory == before {
		m.WorkerCategory = *aux.SnakeWorkerCategory
	}
	return nil
}

// Validate checks the fields the add and edit member forms require.
func (m Member) Validate() error {
	verr := NewValidationError()
	if strings.TrimSpace(m.Name) == "" {
		verr.Add("name", "is required")
	}
	if strings.TrimSpace(m.Email) == "" {
		verr.Add("email", "is required")
	} else if !emailPattern.MatchString(m.Email) {
		verr.Add("email", "must be a valid email address")
	}
	if m.Status != "" && !IsValidMemberStatus(m.Status) {
		verr.Add("status", "must be Active or Inactive")
	}
	return verr.OrNil()
}

func IsValidMemberStatus(status string) bool {
	return strings.EqualFold(status, MemberStatusActive) || strings.EqualFold(status, MemberStatusInactive)
}

// MinistryGroups decodes either a single string or an array of strings.
type MinistryGroups []string

func (g *MinistryGroups) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*g = nil
		} else {
			*g = MinistryGroups{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*g = many
	return nil
}

func (g MinistryGroups) String() string {
	return strings.Join(g, ", ")
}

// MemberPayload is the body the members API expects on POST and PUT.
type MemberPayload struct {
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	Birthdate      string         `json:"birthdate"`
	JoinDate       string         `json:"join_date"`
	WorkerCategory string         `json:"worker_category"`
	MinistryGroup  MinistryGroups `json:"ministry_group"`
	Status         string         `json:"status"`
}

func (m Member) Payload() MemberPayload {
	return MemberPayload{
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Address:        m.Address,
		Birthdate:      m.Birthdate,
		JoinDate:       m.JoinDate,
		WorkerCategory: m.WorkerCategory,
		MinistryGroup:  m.MinistryGroup,
		Status:         m.Status,
	}
}

// WorkerCategories maps a category key to its display label.
type WorkerCategories map[string]string

const AllWorkerCategories = "all"

// WithAll returns a copy that carries the "all" option the filter select needs.
func (w WorkerCategories) WithAll() WorkerCategories {
	out := make(WorkerCategories, len(w)+1)
	out[AllWorkerCategories] = "All Categories"
	for k, v := range w {
		out[k] = v
	}
	return out
}

// DefaultWorkerCategories is served when the API does not provide the list.
func DefaultWorkerCategories() WorkerCategories {
	return WorkerCategories{
		"member":    "Member",
		"sanctuary": "Sanctuary",
		"media":     "Media",
		"ushers":    "Ushers",
		"security":  "Security",
		"children":  "Children",
	}
}
