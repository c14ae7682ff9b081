package responses

import "newschat-server/internal/domain/chat"

// ChatResponse is the success body of POST /v1/chat.
type ChatResponse struct {
	Response     string `json:"response"`
	HasToolCalls bool   `json:"hasToolCalls"`
}

// NewChatResponse maps a completed domain response to the transport shape.
func NewChatResponse(resp *chat.Response) ChatResponse {
	return ChatResponse{
		Response:     resp.Response,
		HasToolCalls: resp.HasToolCalls,
	}
}
