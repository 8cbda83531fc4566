package advisor

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is a hosted text-generation service
type Completer interface {
	Complete(ctx context.Context, messages []Message) (Message, error)
}
