package service

import (
	"io"
	"log/slog"
	"time"

	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/repository/memory"
)

// The services run against the real in-memory store in these tests: the store
// has no external dependencies, and going through it exercises the snapshot
// fan-out that mocks would hide.

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(data memory.Dataset) *memory.Store {
	store := memory.New()
	store.Load(data)

	return store
}

func testUser(id string, roles ...domain.UserRole) domain.User {
	if len(roles) == 0 {
		roles = []domain.UserRole{domain.RoleAuthor}
	}

	return domain.User{
		ID:               id,
		Name:             "User " + id,
		Email:            id + "@nexus.test",
		Specialties:      []string{},
		Roles:            roles,
		FollowingUsers:   []string{},
		FollowedArticles: []string{},
		Badges:           []domain.Badge{},
		FavoriteKeywords: []string{},
		JoinDate:         time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testArticle(id string, author domain.User) domain.Article {
	return domain.Article{
		ID:             id,
		Title:          "Article " + id,
		Abstract:       "Abstract of " + id,
		Keywords:       []string{"Syntax"},
		Disciplines:    []string{"Syntax"},
		Author:         author,
		SubmissionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:         domain.StatusPublished,
		Language:       "en",
	}
}
