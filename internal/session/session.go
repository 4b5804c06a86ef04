// package session holds the explicit session lifecycle: a token is issued at
// login, resolved on every request and revoked at logout or when the account
// is deleted. There is no ambient "current user" anywhere else in the system.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager maps opaque session tokens to user ids.
type Manager struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewManager() *Manager {
	return &Manager{tokens: make(map[string]string)}
}

// Issue creates a new session for the given user and returns its token.
func (m *Manager) Issue(userID string) string {
	token := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[token] = userID

	return token
}

// Resolve returns the user id behind a token.
func (m *Manager) Resolve(token string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, ok := m.tokens[token]

	return userID, ok
}

// Revoke ends a single session. Unknown tokens are ignored.
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, token)
}

// RevokeUser ends every session of the given user, forcing a logout.
func (m *Manager) RevokeUser(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, id := range m.tokens {
		if id == userID {
			delete(m.tokens, token)
		}
	}
}
