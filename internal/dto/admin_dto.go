package dto

// AdminCreateRequest is the superadmin payload for creating an admin account.
type AdminCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin superadmin"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// AdminUpdateRequest carries partial admin account changes.
type AdminUpdateRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin superadmin"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// AdminResponse serializes an admin account without credentials.
type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
}
