package dto

// ChatRequest is one message in the conversational log. UserID is optional;
// when present it must reference an existing user.
type ChatRequest struct {
	UserID  *uint  `json:"user_id"`
	Message string `json:"message" validate:"required"`
}
