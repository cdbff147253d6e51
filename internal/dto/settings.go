package dto

import "churchconnect/internal/models"

func (p SettingsPatch) Apply(s models.Settings) models.Settings {
	setString(&s.Theme, p.Theme)
	setBool(&s.Notifications, p.Notifications)
	setBool(&s.EmailNotifications, p.EmailNotifications)
	setString(&s.Language, p.Language)
	setString(&s.Timezone, p.Timezone)
	setBool(&s.AutoBackup, p.AutoBackup)
	setString(&s.BackupFrequency, p.BackupFrequency)
	setString(&s.ChurchName, p.ChurchName)
	setString(&s.ChurchAddress, p.ChurchAddress)
	setString(&s.ChurchPhone, p.ChurchPhone)
	setString(&s.ChurchEmail, p.ChurchEmail)
	setBool(&s.RequireApproval, p.RequireApproval)
	setBool(&s.AllowGuestAccess, p.AllowGuestAccess)
	setString(&s.SessionTimeout, p.SessionTimeout)
	return s
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
