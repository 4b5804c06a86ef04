package memory

import (
	"context"

	"github.com/linguanexus/nexus-service/internal/domain"
)

func (s *Store) InsertNotifications(_ context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(cloneSlice(notifications), s.notifications...)

	return nil
}

func (s *Store) ListNotificationsByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Notification

	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, clone(n))
		}
	}

	return out, nil
}
