package models

import "time"

// Buddy lifecycle statuses. Submissions start pending and become visible to the
// public only once an admin approves them.
const (
	BuddyStatusPending  = "pending"
	BuddyStatusApproved = "approved"
)

// Buddy represents a research-matching request submitted by a visitor.
type Buddy struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FullName        string    `gorm:"size:160;not null" json:"full_name"`
	StudentID       string    `gorm:"size:64" json:"student_id,omitempty"`
	Course          string    `gorm:"size:64;index;not null" json:"course"`
	Email           string    `gorm:"size:160;not null" json:"email"`
	Phone           string    `gorm:"size:32" json:"phone,omitempty"`
	ResearchTopic   string    `gorm:"size:255;not null" json:"research_topic"`
	ResearchField   string    `gorm:"size:128" json:"research_field,omitempty"`
	ResearchSubject string    `gorm:"size:128" json:"research_subject,omitempty"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Status          string    `gorm:"size:32;index;not null;default:pending" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName keeps the legacy table name.
func (Buddy) TableName() string {
	return "bio_buddies"
}
