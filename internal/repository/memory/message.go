package memory

import (
	"context"

	"github.com/linguanexus/nexus-service/internal/domain"
)

func (s *Store) InsertMessage(_ context.Context, message domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, clone(message))

	return nil
}

func (s *Store) ListMessagesByUser(_ context.Context, userID string) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Message

	for _, m := range s.messages {
		if m.SenderID == userID || m.RecipientID == userID {
			out = append(out, clone(m))
		}
	}

	return out, nil
}

func (s *Store) MarkConversationRead(_ context.Context, recipientID, senderID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var flipped int

	for i := range s.messages {
		m := &s.messages[i]
		if m.SenderID == senderID && m.RecipientID == recipientID && !m.IsRead {
			m.IsRead = true
			flipped++
		}
	}

	return flipped, nil
}

func (s *Store) CountUnread(_ context.Context, recipientID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int

	for _, m := range s.messages {
		if m.RecipientID == recipientID && !m.IsRead {
			count++
		}
	}

	return count, nil
}
