package models

import "strings"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings holds the dashboard preferences and church contact details.
type Settings struct {
	Theme              string `json:"theme"`
	Notifications      bool   `json:"notifications"`
	EmailNotifications bool   `json:"emailNotifications"`
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
	AutoBackup         bool   `json:"autoBackup"`
	BackupFrequency    string `json:"backupFrequency"`
	ChurchName         string `json:"churchName"`
	ChurchAddress      string `json:"churchAddress"`
	ChurchPhone        string `json:"churchPhone"`
	ChurchEmail        string `json:"churchEmail"`
	RequireApproval    bool   `json:"requireApproval"`
	AllowGuestAccess   bool   `json:"allowGuestAccess"`
	SessionTimeout     string `json:"sessionTimeout"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:              ThemeLight,
		Notifications:      true,
		EmailNotifications: true,
		Language:           "en",
		Timezone:           "UTC",
		AutoBackup:         true,
		BackupFrequency:    "daily",
		ChurchName:         "ChurchConnect Community",
		ChurchAddress:      "123 Faith Street, City, State 12345",
		ChurchPhone:        "(555) 123-4567",
		ChurchEmail:        "info@churchconnect.org",
		RequireApproval:    true,
		AllowGuestAccess:   false,
		SessionTimeout:     "30",
	}
}

func (s Settings) Validate() error {
	verr := NewValidationError()
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		verr.Add("theme", "must be light or dark")
	}
	switch s.BackupFrequency {
	case "hourly", "daily", "weekly", "monthly":
	default:
		verr.Add("backupFrequency", "must be hourly, daily, weekly or monthly")
	}
	if strings.TrimSpace(s.ChurchName) == "" {
		verr.Add("churchName", "is required")
	}
	if s.ChurchEmail != "" && !emailPattern.MatchString(s.ChurchEmail) {
		verr.Add("churchEmail", "must be a valid email address")
	}
	return verr.OrNil()
}

// Theme is the presentation descriptor handed to each screen at mount.
type Theme struct {
	Name string `json:"name"`
	Dark bool   `json:"dark"`
}

func (s Settings) ThemeDescriptor() Theme {
	return Theme{Name: s.Theme, Dark: s.Theme == ThemeDark}
}
