package models

import "time"

// Feedback stores a message submitted through the public feedback form.
type Feedback struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderName string    `gorm:"size:160;not null" json:"sender_name"`
	Email      string    `gorm:"size:160;not null" json:"email"`
	StudentID  string    `gorm:"size:64" json:"student_id,omitempty"`
	Subject    string    `gorm:"size:255;not null" json:"subject"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName keeps the legacy table name.
func (Feedback) TableName() string {
	return "feedbacks"
}
