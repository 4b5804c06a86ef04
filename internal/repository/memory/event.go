package memory

import (
	"context"

	"github.com/linguanexus/nexus-service/internal/domain"
)

func (s *Store) InsertEvent(_ context.Context, event domain.ScientificEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, clone(event))

	return nil
}

func (s *Store) ListEvents(_ context.Context) ([]domain.ScientificEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.events), nil
}
