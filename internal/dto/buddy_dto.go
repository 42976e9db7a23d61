package dto

// BuddyCreateRequest is the public buddy submission payload.
type BuddyCreateRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	StudentID       string `json:"student_id"`
	Course          string `json:"course" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	ResearchTopic   string `json:"research_topic" validate:"required"`
	ResearchField   string `json:"research_field"`
	ResearchSubject string `json:"research_subject"`
	Description     string `json:"description" validate:"required"`
}
