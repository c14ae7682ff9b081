package requests

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
