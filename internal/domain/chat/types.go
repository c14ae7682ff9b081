package chat

import "context"

// Role tags a conversation turn for the language model.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in a model invocation.
type Turn struct {
	Role    Role
	Content string
}

// LLMClient defines the language model operations required by the domain
// layer: one text completion for an ordered sequence of turns.
type LLMClient interface {
	Complete(ctx context.Context, turns []Turn) (string, error)
}

// Request is a single incoming chat message.
type Request struct {
	Message string
}

// Response is the completed chat turn returned to the transport layer.
// HasToolCalls is always true today because search is unconditionally
// invoked; it is kept as a field so a future conditional-tool design can
// derive it instead.
type Response struct {
	Response     string
	HasToolCalls bool
}
