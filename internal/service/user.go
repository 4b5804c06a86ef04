package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/repository"
	"github.com/linguanexus/nexus-service/internal/session"
	"github.com/linguanexus/nexus-service/pkg/api"
)

const defaultBio = "A new member of the Linguistics Nexus community."

type UserService interface {
	Register(ctx context.Context, newUser api.NewUser) (*api.Session, error)
	Login(ctx context.Context, email string) (*api.Session, error)
	Logout(ctx context.Context, token string) error
	Get(ctx context.Context, userID string) (*api.User, error)
	List(ctx context.Context) ([]api.User, error)
	Update(ctx context.Context, actorID string, upd api.UserUpdate) (*api.User, error)
	Delete(ctx context.Context, actorID, targetID string) error
	FollowUser(ctx context.Context, actorID, targetID string) (*api.User, error)
	FollowArticle(ctx context.Context, actorID, articleID string) (*api.User, error)
}

type UserServiceImpl struct {
	BaseService
	users    repository.UserRepository
	articles repository.ArticleRepository
	sessions *session.Manager
}

func NewUserService(
	seq repository.Sequencer,
	log *slog.Logger,
	users repository.UserRepository,
	articles repository.ArticleRepository,
	sessions *session.Manager,
) *UserServiceImpl {
	return &UserServiceImpl{
		BaseService: NewBaseService(seq, log),
		users:       users,
		articles:    articles,
		sessions:    sessions,
	}
}

// Register creates a user with the default author role and an empty activity
// record, then opens a session for them.
func (s *UserServiceImpl) Register(ctx context.Context, newUser api.NewUser) (*api.Session, error) {
	const op = "internal.service.user.Register"
	log := s.log.With(slog.String("op", op))

	var out api.Session

	err := s.pipeline(ctx, func() error {
		user := domain.User{
			ID:               uuid.NewString(),
			Name:             newUser.Name,
			Email:            newUser.Email,
			InstitutionID:    newUser.InstitutionID,
			Specialties:      []string{},
			AvatarURL:        fmt.Sprintf("https://i.pravatar.cc/150?u=%s", uuid.NewString()),
			Bio:              defaultBio,
			Roles:            []domain.UserRole{domain.RoleAuthor},
			FollowingUsers:   []string{},
			FollowedArticles: []string{},
			BannerURL:        "/placeholder-banner.jpg",
			Badges:           []domain.Badge{},
			FavoriteKeywords: []string{},
			JoinDate:         time.Now().UTC(),
		}

		if err := s.users.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("%s: failed to create user: %w", op, err)
		}

		log.Info("user registered", slog.String("user_id", user.ID))

		out = api.Session{
			Token: s.sessions.Issue(user.ID),
			User:  toAPIUser(user),
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Login opens a session for the user registered under the given email. The
// seeded collection is the credential source; there are no passwords.
func (s *UserServiceImpl) Login(ctx context.Context, email string) (*api.Session, error) {
	const op = "internal.service.user.Login"
	log := s.log.With(slog.String("op", op))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID))

	return &api.Session{
		Token: s.sessions.Issue(user.ID),
		User:  toAPIUser(*user),
	}, nil
}

// Logout ends the session behind the given token.
func (s *UserServiceImpl) Logout(_ context.Context, token string) error {
	s.sessions.Revoke(token)

	return nil
}

func (s *UserServiceImpl) Get(ctx context.Context, userID string) (*api.User, error) {
	const op = "internal.service.user.Get"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	out := toAPIUser(*user)

	return &out, nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]api.User, error) {
	const op = "internal.service.user.List"

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list users: %w", op, err)
	}

	out := make([]api.User, len(users))
	for i, u := range users {
		out[i] = toAPIUser(u)
	}

	return out, nil
}

// Update applies profile changes to a user. A user may edit themselves;
// administrators may edit anyone, and only they may change roles. Every
// embedded snapshot of the user is refreshed afterwards.
func (s *UserServiceImpl) Update(ctx context.Context, actorID string, upd api.UserUpdate) (*api.User, error) {
	const op = "internal.service.user.Update"

	var out api.User

	err := s.pipeline(ctx, func() error {
		actor, err := s.users.GetUserByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		isAdmin := actor.HasRole(domain.RoleAdmin)

		if actor.ID != upd.UserID && !isAdmin {
			return fmt.Errorf("%s: %w", op, apperrors.ErrForbidden)
		}

		target, err := s.users.GetUserByID(ctx, upd.UserID)
		if err != nil {
			return fmt.Errorf("%s: failed to get target user: %w", op, err)
		}

		if upd.Roles != nil && !isAdmin {
			return fmt.Errorf("%s: %w", op, apperrors.ErrForbidden)
		}

		applyUserUpdate(target, upd)

		if err := s.storeAndRefresh(ctx, op, *target); err != nil {
			return err
		}

		out = toAPIUser(*target)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a user. Administrators only. Deleting yourself revokes your
// sessions and forces a logout. Authored articles, reviews and comments stay,
// by design.
func (s *UserServiceImpl) Delete(ctx context.Context, actorID, targetID string) error {
	const op = "internal.service.user.Delete"
	log := s.log.With(slog.String("op", op), slog.String("target_id", targetID))

	return s.pipeline(ctx, func() error {
		actor, err := s.users.GetUserByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		if !actor.HasRole(domain.RoleAdmin) {
			return fmt.Errorf("%s: %w", op, apperrors.ErrNotAdmin)
		}

		if err := s.users.DeleteUser(ctx, targetID); err != nil {
			return fmt.Errorf("%s: failed to delete user: %w", op, err)
		}

		s.sessions.RevokeUser(targetID)

		log.Info("user deleted", slog.String("actor_id", actorID))

		return nil
	})
}

// FollowUser toggles the target's membership in the actor's following set.
// Calling it twice restores the original state. No notification is generated.
func (s *UserServiceImpl) FollowUser(ctx context.Context, actorID, targetID string) (*api.User, error) {
	const op = "internal.service.user.FollowUser"

	var out api.User

	err := s.pipeline(ctx, func() error {
		actor, err := s.users.GetUserByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		if _, err := s.users.GetUserByID(ctx, targetID); err != nil {
			return fmt.Errorf("%s: failed to get target user: %w", op, err)
		}

		actor.FollowingUsers = toggle(actor.FollowingUsers, targetID)

		if err := s.storeAndRefresh(ctx, op, *actor); err != nil {
			return err
		}

		out = toAPIUser(*actor)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// FollowArticle toggles the article's membership in the actor's followed
// articles set. Same semantics as FollowUser.
func (s *UserServiceImpl) FollowArticle(ctx context.Context, actorID, articleID string) (*api.User, error) {
	const op = "internal.service.user.FollowArticle"

	var out api.User

	err := s.pipeline(ctx, func() error {
		actor, err := s.users.GetUserByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		if _, err := s.articles.GetArticleByID(ctx, articleID); err != nil {
			return fmt.Errorf("%s: failed to get article: %w", op, err)
		}

		actor.FollowedArticles = toggle(actor.FollowedArticles, articleID)

		if err := s.storeAndRefresh(ctx, op, *actor); err != nil {
			return err
		}

		out = toAPIUser(*actor)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// storeAndRefresh replaces the stored user and fans the new value out to
// every embedded snapshot.
func (s *UserServiceImpl) storeAndRefresh(ctx context.Context, op string, user domain.User) error {
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("%s: failed to update user: %w", op, err)
	}

	if err := s.articles.RefreshUserSnapshots(ctx, user); err != nil {
		return fmt.Errorf("%s: failed to refresh user snapshots: %w", op, err)
	}

	return nil
}

// toggle flips membership of id in the given set.
func toggle(set []string, id string) []string {
	for i, v := range set {
		if v == id {
			return append(set[:i], set[i+1:]...)
		}
	}

	return append(set, id)
}

func applyUserUpdate(user *domain.User, upd api.UserUpdate) {
	if upd.Name != nil {
		user.Name = *upd.Name
	}

	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}

	if upd.InstitutionID != nil {
		user.InstitutionID = *upd.InstitutionID
	}

	if upd.Specialties != nil {
		user.Specialties = *upd.Specialties
	}

	if upd.AvatarURL != nil {
		user.AvatarURL = *upd.AvatarURL
	}

	if upd.BannerURL != nil {
		user.BannerURL = *upd.BannerURL
	}

	if upd.WebsiteURL != nil {
		user.WebsiteURL = *upd.WebsiteURL
	}

	if upd.GoogleScholarURL != nil {
		user.GoogleScholarURL = *upd.GoogleScholarURL
	}

	if upd.Location != nil {
		user.Location = &domain.Location{
			City:    upd.Location.City,
			Country: upd.Location.Country,
			Lat:     upd.Location.Lat,
			Lng:     upd.Location.Lng,
		}
	}

	if upd.FavoriteKeywords != nil {
		user.FavoriteKeywords = *upd.FavoriteKeywords
	}

	if upd.Roles != nil {
		roles := make([]domain.UserRole, 0, len(*upd.Roles))
		for _, r := range *upd.Roles {
			roles = append(roles, domain.UserRole(strings.ToLower(r)))
		}

		user.Roles = roles
	}
}
