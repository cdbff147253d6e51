package dto

import (
	"github.com/google/uuid"

	"churchconnect/internal/models"
)

// MountResponse identifies a freshly mounted screen session.
type MountResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Screen    string    `json:"screen"`
}

type SearchRequest struct {
	Text string `json:"text"`
	// Immediate applies the search without waiting for the quiet period.
	Immediate bool `json:"immediate"`
}

type FilterRequest struct {
	Value string `json:"value"`
}

type SortRequest struct {
	Key       string `json:"key"`
	Direction string `json:"direction" validate:"omitempty,oneof=asc desc"`
}

type PageRequest struct {
	Page int `json:"page"`
}

type SelectRequest struct {
	Selected bool `json:"selected"`
}

type BulkEmailRequest struct {
	Audience string `json:"audience" validate:"required,oneof=selected category"`
	Category string `json:"category"`
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

func (r BulkEmailRequest) ToModel() models.BulkEmailRequest {
	return models.BulkEmailRequest{
		Audience: r.Audience,
		Category: r.Category,
		Subject:  r.Subject,
		Message:  r.Message,
	}
}

// SettingsPatch carries the settings fields a client changed.
type SettingsPatch struct {
	Theme              *string `json:"theme" validate:"omitempty,theme"`
	Notifications      *bool   `json:"notifications"`
	EmailNotifications *bool   `json:"emailNotifications"`
	Language           *string `json:"language"`
	Timezone           *string `json:"timezone"`
	AutoBackup         *bool   `json:"autoBackup"`
	BackupFrequency    *string `json:"backupFrequency" validate:"omitempty,oneof=hourly daily weekly monthly"`
	ChurchName         *string `json:"churchName" validate:"omitempty,min=1"`
	ChurchAddress      *string `json:"churchAddress"`
	ChurchPhone        *string `json:"churchPhone"`
	ChurchEmail        *string `json:"churchEmail" validate:"omitempty,email"`
	RequireApproval    *bool   `json:"requireApproval"`
	AllowGuestAccess   *bool   `json:"allowGuestAccess"`
	SessionTimeout     *string `json:"sessionTimeout"`
}
