package dto

// FeedbackCreateRequest is the public feedback form payload.
type FeedbackCreateRequest struct {
	SenderName string `json:"sender_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	StudentID  string `json:"student_id"`
	Subject    string `json:"subject" validate:"required"`
	Message    string `json:"message" validate:"required"`
}
