package memory

import (
	"context"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/domain"
)

func (s *Store) InsertGroup(_ context.Context, group domain.WorkingGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.groups = append([]domain.WorkingGroup{clone(group)}, s.groups...)

	return nil
}

func (s *Store) GetGroupByID(_ context.Context, groupID string) (*domain.WorkingGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.groups {
		if g.ID == groupID {
			out := clone(g)
			return &out, nil
		}
	}

	return nil, apperrors.ErrNotFound
}

func (s *Store) ListGroups(_ context.Context) ([]domain.WorkingGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.groups), nil
}

func (s *Store) UpdateGroup(_ context.Context, group domain.WorkingGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.groups {
		if g.ID == group.ID {
			s.groups[i] = clone(group)
			return nil
		}
	}

	return apperrors.ErrNotFound
}
