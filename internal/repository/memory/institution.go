package memory

import (
	"context"
	"sort"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/domain"
)

func (s *Store) InsertInstitution(_ context.Context, institution domain.Institution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.institutions = append(s.institutions, clone(institution))
	sort.SliceStable(s.institutions, func(i, j int) bool {
		return s.institutions[i].Name < s.institutions[j].Name
	})

	return nil
}

func (s *Store) GetInstitutionByID(_ context.Context, institutionID string) (*domain.Institution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inst := range s.institutions {
		if inst.ID == institutionID {
			out := clone(inst)
			return &out, nil
		}
	}

	return nil, apperrors.ErrNotFound
}

func (s *Store) ListInstitutions(_ context.Context) ([]domain.Institution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.institutions), nil
}
