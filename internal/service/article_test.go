package service

import (
	"context"
	"testing"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/repository/memory"
	"github.com/linguanexus/nexus-service/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticleService(store *memory.Store) *ArticleServiceImpl {
	return NewArticleService(store, newTestLogger(), store, store, store)
}

func TestArticleServiceImpl_Submit(t *testing.T) {
	ctx := context.Background()

	author := testUser("author")
	fan := testUser("fan")
	fan.FavoriteKeywords = []string{"Laryngeal Theory"}

	store := newTestStore(memory.Dataset{
		Users:    []domain.User{author, fan},
		Articles: []domain.Article{testArticle("art-1", author)},
	})
	service := newArticleService(store)

	article, err := service.Submit(ctx, author.ID, api.NewArticle{
		Title:       "A Reassessment of Laryngeal Theory",
		Abstract:    "We revisit the laryngeal theory with new Hittite evidence.",
		Keywords:    []string{"Laryngeal Theory", "Hittite"},
		Disciplines: []string{"Phonology"},
		License:     string(domain.LicenseCCBY),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusSubmitted), article.Status)
	assert.Equal(t, "en", article.Language)
	assert.Equal(t, author.ID, article.Author.ID)

	// The new article lands at the front of the collection.
	articles, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, article.ID, articles[0].ID)

	// Two authored articles now: reputation 40, Prolific Author earned, and
	// the embedded author snapshot reflects both.
	stored, err := store.GetUserByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, stored.Reputation)
	assert.Contains(t, stored.Badges, domain.BadgeProlificAuthor)
	assert.Equal(t, 40, articles[0].Author.Reputation)
	assert.Equal(t, 40, articles[1].Author.Reputation)

	// The keyword trigger reached the fan and skipped the author.
	notifs, err := store.ListNotificationsByUser(ctx, fan.ID)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, domain.NotificationNewArticleKeyword, notifs[0].Type)
	assert.Equal(t, "Laryngeal Theory", notifs[0].MessagePayload["keyword"])

	authorNotifs, err := store.ListNotificationsByUser(ctx, author.ID)
	require.NoError(t, err)
	assert.Empty(t, authorNotifs)
}

func TestArticleServiceImpl_Submit_AuthorMissing(t *testing.T) {
	store := newTestStore(memory.Dataset{})
	service := newArticleService(store)

	_, err := service.Submit(context.Background(), "ghost", api.NewArticle{Title: "x"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestArticleServiceImpl_Get_IncrementsViews(t *testing.T) {
	ctx := context.Background()

	author := testUser("author")
	store := newTestStore(memory.Dataset{
		Users:    []domain.User{author},
		Articles: []domain.Article{testArticle("art-1", author)},
	})
	service := newArticleService(store)

	first, err := service.Get(ctx, "art-1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Views)

	second, err := service.Get(ctx, "art-1")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Views)
}

func TestArticleServiceImpl_AddReview(t *testing.T) {
	ctx := context.Background()

	author := testUser("author")
	reviewer := testUser("reviewer", domain.RoleAuthor, domain.RoleReviewer)
	plainUser := testUser("plain")

	testCases := []struct {
		name          string
		actorID       string
		expectedError error
	}{
		{
			name:    "Reviewer role adds review and forces Under Review",
			actorID: reviewer.ID,
		},
		{
			name:          "Missing reviewer role is rejected",
			actorID:       plainUser.ID,
			expectedError: apperrors.ErrNotReviewer,
		},
		{
			name:          "Unknown actor",
			actorID:       "ghost",
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			published := testArticle("art-1", author)
			published.Status = domain.StatusPublished

			store := newTestStore(memory.Dataset{
				Users:    []domain.User{author, reviewer, plainUser},
				Articles: []domain.Article{published},
			})
			service := newArticleService(store)

			article, err := service.AddReview(ctx, tc.actorID, "art-1", domain.RecommendAccept, "Looks solid.")

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)

			// The status moves to Under Review even for a published article.
			assert.Equal(t, string(domain.StatusUnderReview), article.Status)
			require.Len(t, article.Reviews, 1)
			assert.Equal(t, string(domain.RecommendAccept), article.Reviews[0].Recommendation)

			storedReviewer, err := store.GetUserByID(ctx, reviewer.ID)
			require.NoError(t, err)
			assert.Equal(t, 10, storedReviewer.Reputation)
		})
	}
}

func TestArticleServiceImpl_AddComment(t *testing.T) {
	ctx := context.Background()

	author := testUser("author")
	commenter := testUser("commenter")

	setup := func() (*memory.Store, *ArticleServiceImpl) {
		article := testArticle("art-1", author)
		article.Comments = []domain.Comment{
			{ID: "com-1", Author: author, Text: "Root comment."},
		}

		store := newTestStore(memory.Dataset{
			Users:    []domain.User{author, commenter},
			Articles: []domain.Article{article},
		})

		return store, newArticleService(store)
	}

	t.Run("Reply notifies the parent comment's author", func(t *testing.T) {
		store, service := setup()

		article, err := service.AddComment(ctx, commenter.ID, "art-1", "Interesting point!", "com-1")
		require.NoError(t, err)
		require.Len(t, article.Comments, 2)

		notifs, err := store.ListNotificationsByUser(ctx, author.ID)
		require.NoError(t, err)
		require.Len(t, notifs, 1)
		assert.Equal(t, domain.NotificationReply, notifs[0].Type)
		assert.Equal(t, commenter.Name, notifs[0].MessagePayload["userName"])

		storedCommenter, err := store.GetUserByID(ctx, commenter.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, storedCommenter.Reputation)
	})

	t.Run("Replying to yourself produces no notification", func(t *testing.T) {
		store, service := setup()

		_, err := service.AddComment(ctx, author.ID, "art-1", "Following up on my own comment.", "com-1")
		require.NoError(t, err)

		notifs, err := store.ListNotificationsByUser(ctx, author.ID)
		require.NoError(t, err)
		assert.Empty(t, notifs)
	})

	t.Run("Dangling parent id is silently skipped", func(t *testing.T) {
		store, service := setup()

		article, err := service.AddComment(ctx, commenter.ID, "art-1", "Orphaned reply.", "com-gone")
		require.NoError(t, err)
		require.Len(t, article.Comments, 2)

		notifs, err := store.ListNotificationsByUser(ctx, author.ID)
		require.NoError(t, err)
		assert.Empty(t, notifs)
	})

	t.Run("Root comment notifies nobody", func(t *testing.T) {
		store, service := setup()

		_, err := service.AddComment(ctx, commenter.ID, "art-1", "Root level comment.", "")
		require.NoError(t, err)

		notifs, err := store.ListNotificationsByUser(ctx, author.ID)
		require.NoError(t, err)
		assert.Empty(t, notifs)
	})
}

func TestArticleServiceImpl_Update(t *testing.T) {
	ctx := context.Background()

	author := testUser("author")
	admin := testUser("admin", domain.RoleAuthor, domain.RoleAdmin)
	other := testUser("other")

	newTitle := "Revised Title"

	testCases := []struct {
		name          string
		actorID       string
		expectedError error
	}{
		{name: "Author updates own article", actorID: author.ID},
		{name: "Admin updates any article", actorID: admin.ID},
		{name: "Other users are rejected", actorID: other.ID, expectedError: apperrors.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(memory.Dataset{
				Users:    []domain.User{author, admin, other},
				Articles: []domain.Article{testArticle("art-1", author)},
			})
			service := newArticleService(store)

			article, err := service.Update(ctx, tc.actorID, api.ArticleUpdate{
				ArticleID: "art-1",
				Title:     &newTitle,
			})

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, newTitle, article.Title)
		})
	}
}

func TestArticleServiceImpl_Delete(t *testing.T) {
	ctx := context.Background()

	author := testUser("author")
	admin := testUser("admin", domain.RoleAuthor, domain.RoleAdmin)

	t.Run("Admin deletes an article", func(t *testing.T) {
		store := newTestStore(memory.Dataset{
			Users:    []domain.User{author, admin},
			Articles: []domain.Article{testArticle("art-1", author)},
		})
		service := newArticleService(store)

		require.NoError(t, service.Delete(ctx, admin.ID, "art-1"))

		_, err := store.GetArticleByID(ctx, "art-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("The author alone cannot delete", func(t *testing.T) {
		store := newTestStore(memory.Dataset{
			Users:    []domain.User{author, admin},
			Articles: []domain.Article{testArticle("art-1", author)},
		})
		service := newArticleService(store)

		err := service.Delete(ctx, author.ID, "art-1")
		assert.ErrorIs(t, err, apperrors.ErrNotAdmin)
	})
}
