package models

// Lab describes a research lab listed on the public site.
type Lab struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:255;not null" json:"name"`
	LeadName      string `gorm:"size:160" json:"lead_name,omitempty"`
	Email         string `gorm:"size:160" json:"email,omitempty"`
	Phone         string `gorm:"size:32" json:"phone,omitempty"`
	ResearchAreas string `gorm:"type:text" json:"research_areas,omitempty"`
}
