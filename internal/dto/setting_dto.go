package dto

// SettingUpdateRequest upserts a system setting value.
type SettingUpdateRequest struct {
	Value string `json:"value" validate:"required"`
}

// RegistrationStatusResponse is the public registration toggle probe.
type RegistrationStatusResponse struct {
	RegistrationEnabled bool `json:"registration_enabled"`
}
