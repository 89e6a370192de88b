package dto

// UserRequest carries the full mutable state of a user. PUT replaces both
// fields wholesale, there are no partial updates.
type UserRequest struct {
	Username string  `json:"username" validate:"required,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
}
