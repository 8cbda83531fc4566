package advisor

import "sync"

// DefaultConversationID is used when a request names no conversation
const DefaultConversationID = "default"

// ConversationManager keeps a bounded message history per conversation
type ConversationManager struct {
	mu            sync.Mutex
	conversations map[string][]Message
	maxMessages   int
}

// NewConversationManager keeps at most maxMessages per conversation
func NewConversationManager(maxMessages int) *ConversationManager {
	if maxMessages <= 0 {
		maxMessages = 5
	}
	return &ConversationManager{
		conversations: make(map[string][]Message),
		maxMessages:   maxMessages,
	}
}

// AddMessage appends a message, dropping the oldest beyond the limit
func (m *ConversationManager) AddMessage(id string, msg Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := append(m.conversations[id], msg)
	if len(history) > m.maxMessages {
		history = history[len(history)-m.maxMessages:]
	}
	m.conversations[id] = history
}

// GetConversation returns a copy of the history
func (m *ConversationManager) GetConversation(id string) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.conversations[id]
	out := make([]Message, len(history))
	copy(out, history)
	return out
}

// ClearConversation empties the history
func (m *ConversationManager) ClearConversation(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conversations, id)
}
