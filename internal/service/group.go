package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/repository"
	"github.com/linguanexus/nexus-service/pkg/api"
)

type GroupService interface {
	Create(ctx context.Context, actorID string, newGroup api.NewWorkingGroup) (*api.WorkingGroup, error)
	AddMember(ctx context.Context, actorID, groupID, userID string) (*api.WorkingGroup, error)
	Get(ctx context.Context, groupID string) (*api.WorkingGroup, error)
	List(ctx context.Context) ([]api.WorkingGroup, error)
}

type GroupServiceImpl struct {
	BaseService
	users  repository.UserRepository
	groups repository.GroupRepository
}

func NewGroupService(
	seq repository.Sequencer,
	log *slog.Logger,
	users repository.UserRepository,
	groups repository.GroupRepository,
) *GroupServiceImpl {
	return &GroupServiceImpl{
		BaseService: NewBaseService(seq, log),
		users:       users,
		groups:      groups,
	}
}

// Create opens a working group with the creator as its only member and
// coordinator. Affiliated users and articles are always computed by
// filtering, never stored.
func (s *GroupServiceImpl) Create(ctx context.Context, actorID string, newGroup api.NewWorkingGroup) (*api.WorkingGroup, error) {
	const op = "internal.service.group.Create"
	log := s.log.With(slog.String("op", op), slog.String("actor_id", actorID))

	var out api.WorkingGroup

	err := s.pipeline(ctx, func() error {
		if _, err := s.users.GetUserByID(ctx, actorID); err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		group := domain.WorkingGroup{
			ID:                 uuid.NewString(),
			Name:               newGroup.Name,
			Description:        newGroup.Description,
			Members:            []string{actorID},
			Coordinators:       []string{actorID},
			AssociatedArticles: []string{},
			Bibliography:       newGroup.Bibliography,
			CreatedDate:        time.Now().UTC(),
		}

		if err := s.groups.InsertGroup(ctx, group); err != nil {
			return fmt.Errorf("%s: failed to insert group: %w", op, err)
		}

		log.Info("working group created", slog.String("group_id", group.ID))

		out = toAPIGroup(group)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// AddMember adds a user to the group's member list. Adding an existing
// member is a no-op.
func (s *GroupServiceImpl) AddMember(ctx context.Context, actorID, groupID, userID string) (*api.WorkingGroup, error) {
	const op = "internal.service.group.AddMember"

	var out api.WorkingGroup

	err := s.pipeline(ctx, func() error {
		if _, err := s.users.GetUserByID(ctx, actorID); err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		if _, err := s.users.GetUserByID(ctx, userID); err != nil {
			return fmt.Errorf("%s: failed to get user: %w", op, err)
		}

		group, err := s.groups.GetGroupByID(ctx, groupID)
		if err != nil {
			return fmt.Errorf("%s: failed to get group: %w", op, err)
		}

		if !group.HasMember(userID) {
			group.Members = append(group.Members, userID)

			if err := s.groups.UpdateGroup(ctx, *group); err != nil {
				return fmt.Errorf("%s: failed to update group: %w", op, err)
			}
		}

		out = toAPIGroup(*group)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (s *GroupServiceImpl) Get(ctx context.Context, groupID string) (*api.WorkingGroup, error) {
	const op = "internal.service.group.Get"

	group, err := s.groups.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get group: %w", op, err)
	}

	out := toAPIGroup(*group)

	return &out, nil
}

func (s *GroupServiceImpl) List(ctx context.Context) ([]api.WorkingGroup, error) {
	const op = "internal.service.group.List"

	groups, err := s.groups.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list groups: %w", op, err)
	}

	out := make([]api.WorkingGroup, len(groups))
	for i, g := range groups {
		out[i] = toAPIGroup(g)
	}

	return out, nil
}
