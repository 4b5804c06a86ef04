package memory

import (
	"context"
	"strings"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/domain"
)

func (s *Store) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return &apperrors.EmailTakenError{Email: user.Email}
		}
	}

	s.users = append(s.users, clone(user))

	return nil
}

func (s *Store) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == userID {
			out := clone(u)
			return &out, nil
		}
	}

	return nil, &apperrors.UserNotFoundError{UserID: userID}
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			out := clone(u)
			return &out, nil
		}
	}

	return nil, apperrors.ErrNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.users), nil
}

func (s *Store) UpdateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == user.ID {
			s.users[i] = clone(user)
			return nil
		}
	}

	return &apperrors.UserNotFoundError{UserID: user.ID}
}

func (s *Store) DeleteUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == userID {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}

	return &apperrors.UserNotFoundError{UserID: userID}
}
