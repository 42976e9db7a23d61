package models

import "time"

// SettingRegistrationEnabled gates public admin registration once the first
// admin account exists.
const SettingRegistrationEnabled = "registration_enabled"

// SystemSetting is an upsert-by-key configuration record managed by superadmins.
type SystemSetting struct {
	Key       string    `gorm:"size:128;primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `gorm:"size:128" json:"updated_by"`
}
