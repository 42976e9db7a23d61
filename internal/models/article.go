package models

import "time"

// Article is an editorial content entry published by admins.
type Article struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Category        string    `gorm:"size:64;index;not null" json:"category"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Content         string    `gorm:"type:text" json:"content,omitempty"`
	Author          string    `gorm:"size:160" json:"author,omitempty"`
	ExternalLink    string    `gorm:"size:512" json:"external_link,omitempty"`
	FileURL         string    `gorm:"size:512" json:"file_url,omitempty"`
	PublicationDate string    `gorm:"size:64" json:"publication_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
