package session

import (
	"context"
	"sync"
)

type conversationKeyContext struct{}

const defaultConversationID = "default"

// WithConversationID sets the routing key that selects a conversation's
// session. The transport layer supplies it; absent a key, a single shared
// conversation is used.
func WithConversationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, conversationKeyContext{}, id)
}

// ConversationIDFromContext gets the routing key from the context.
func ConversationIDFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(conversationKeyContext{})
	if value == nil {
		return "", false
	}
	id, ok := value.(string)
	return id, ok
}

func conversationIDOrDefault(ctx context.Context) string {
	id, ok := ConversationIDFromContext(ctx)
	if ok && id != "" {
		return id
	}
	return defaultConversationID
}

type entry struct {
	mu   sync.Mutex
	sess *Session
}

// Manager owns the sessions, one per conversation key, and serializes all
// access to each of them. Controller invocations for the same conversation
// never interleave; different conversations proceed in parallel.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{entries: map[string]*entry{}}
}

// Acquire locks the session for the conversation keyed in ctx, creating it
// on first use, and returns it with a release function. The caller must call
// release when the turn is done.
func (m *Manager) Acquire(ctx context.Context) (*Session, func()) {
	key := conversationIDOrDefault(ctx)

	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{sess: New()}
		m.entries[key] = e
	}
	m.mu.Unlock()

	e.mu.Lock()
	return e.sess, e.mu.Unlock
}

// Remove drops the session for the conversation keyed in ctx.
func (m *Manager) Remove(ctx context.Context) {
	key := conversationIDOrDefault(ctx)
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}
