package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/repository"
	"github.com/linguanexus/nexus-service/pkg/api"
)

type InstitutionService interface {
	Create(ctx context.Context, newInstitution api.NewInstitution) (*api.Institution, error)
	Get(ctx context.Context, institutionID string) (*api.Institution, error)
	List(ctx context.Context) ([]api.Institution, error)
}

type InstitutionServiceImpl struct {
	BaseService
	institutions repository.InstitutionRepository
}

func NewInstitutionService(
	seq repository.Sequencer,
	log *slog.Logger,
	institutions repository.InstitutionRepository,
) *InstitutionServiceImpl {
	return &InstitutionServiceImpl{
		BaseService:  NewBaseService(seq, log),
		institutions: institutions,
	}
}

// Create adds an institution with a placeholder logo derived from its name.
// The collection stays sorted by name. Creation is open to unauthenticated
// callers because registration offers it before any session exists.
func (s *InstitutionServiceImpl) Create(ctx context.Context, newInstitution api.NewInstitution) (*api.Institution, error) {
	const op = "internal.service.institution.Create"
	log := s.log.With(slog.String("op", op))

	var out api.Institution

	err := s.pipeline(ctx, func() error {
		institution := domain.Institution{
			ID:          uuid.NewString(),
			Name:        newInstitution.Name,
			City:        newInstitution.City,
			Country:     newInstitution.Country,
			WebsiteURL:  newInstitution.WebsiteURL,
			LogoURL:     placeholderLogo(newInstitution.Name),
			Description: newInstitution.Description,
		}

		if err := s.institutions.InsertInstitution(ctx, institution); err != nil {
			return fmt.Errorf("%s: failed to insert institution: %w", op, err)
		}

		log.Info("institution created", slog.String("institution_id", institution.ID))

		out = toAPIInstitution(institution)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *InstitutionServiceImpl) Get(ctx context.Context, institutionID string) (*api.Institution, error) {
	const op = "internal.service.institution.Get"

	institution, err := s.institutions.GetInstitutionByID(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get institution: %w", op, err)
	}

	out := toAPIInstitution(*institution)

	return &out, nil
}

func (s *InstitutionServiceImpl) List(ctx context.Context) ([]api.Institution, error) {
	const op = "internal.service.institution.List"

	institutions, err := s.institutions.ListInstitutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list institutions: %w", op, err)
	}

	out := make([]api.Institution, len(institutions))
	for i, inst := range institutions {
		out[i] = toAPIInstitution(inst)
	}

	return out, nil
}

func placeholderLogo(name string) string {
	initials := name
	if len(initials) > 2 {
		initials = initials[:2]
	}

	return fmt.Sprintf("https://via.placeholder.com/150/81A4CD/FFFFFF?text=%s", strings.ToUpper(initials))
}
