package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/repository"
	"github.com/linguanexus/nexus-service/pkg/api"
)

const defaultLanguage = "en"

type ArticleService interface {
	Submit(ctx context.Context, authorID string, draft api.NewArticle) (*api.Article, error)
	Get(ctx context.Context, articleID string) (*api.Article, error)
	List(ctx context.Context) ([]api.Article, error)
	Update(ctx context.Context, actorID string, upd api.ArticleUpdate) (*api.Article, error)
	Delete(ctx context.Context, actorID, articleID string) error
	AddComment(ctx context.Context, actorID, articleID, text, parentID string) (*api.Article, error)
	AddReview(ctx context.Context, actorID, articleID string, recommendation domain.ReviewRecommendation, comment string) (*api.Article, error)
}

type ArticleServiceImpl struct {
	BaseService
	users         repository.UserRepository
	articles      repository.ArticleRepository
	notifications repository.NotificationRepository
}

func NewArticleService(
	seq repository.Sequencer,
	log *slog.Logger,
	users repository.UserRepository,
	articles repository.ArticleRepository,
	notifications repository.NotificationRepository,
) *ArticleServiceImpl {
	return &ArticleServiceImpl{
		BaseService:   NewBaseService(seq, log),
		users:         users,
		articles:      articles,
		notifications: notifications,
	}
}

// Submit creates a new article authored by the given user, recomputes the
// author's reputation and badges over the post-insert collection and notifies
// every other user whose favorite keywords match the article.
func (s *ArticleServiceImpl) Submit(ctx context.Context, authorID string, draft api.NewArticle) (*api.Article, error) {
	const op = "internal.service.article.Submit"
	log := s.log.With(slog.String("op", op), slog.String("author_id", authorID))

	var out api.Article

	err := s.pipeline(ctx, func() error {
		author, err := s.users.GetUserByID(ctx, authorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get author: %w", op, err)
		}

		// Snapshot the user collection before the author's stats change, so
		// the keyword trigger sees the pre-update recipients.
		recipients, err := s.users.ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("%s: failed to list users: %w", op, err)
		}

		now := time.Now().UTC()
		article := domain.Article{
			ID:             uuid.NewString(),
			Title:          draft.Title,
			Abstract:       draft.Abstract,
			Keywords:       draft.Keywords,
			Disciplines:    draft.Disciplines,
			References:     draft.References,
			FullText:       draft.FullText,
			Author:         *author,
			SubmissionDate: now,
			Status:         domain.StatusSubmitted,
			License:        domain.License(draft.License),
			WorkingGroupID: draft.WorkingGroupID,
			Language:       defaultLanguage,
		}

		if err := s.articles.InsertArticle(ctx, article); err != nil {
			return fmt.Errorf("%s: failed to insert article: %w", op, err)
		}

		if err := s.recomputeAndStore(ctx, op, *author); err != nil {
			return err
		}

		notifs := keywordNotifications(article, recipients, now)
		if err := s.notifications.InsertNotifications(ctx, notifs); err != nil {
			return fmt.Errorf("%s: failed to insert notifications: %w", op, err)
		}

		log.Info("article submitted",
			slog.String("article_id", article.ID),
			slog.Int("keyword_notifications", len(notifs)),
		)

		stored, err := s.articles.GetArticleByID(ctx, article.ID)
		if err != nil {
			return fmt.Errorf("%s: failed to reload article: %w", op, err)
		}

		out = toAPIArticle(*stored)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns an article by id, bumping its view counter.
func (s *ArticleServiceImpl) Get(ctx context.Context, articleID string) (*api.Article, error) {
	const op = "internal.service.article.Get"

	article, err := s.articles.IncrementViews(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get article: %w", op, err)
	}

	out := toAPIArticle(*article)

	return &out, nil
}

func (s *ArticleServiceImpl) List(ctx context.Context) ([]api.Article, error) {
	const op = "internal.service.article.List"

	articles, err := s.articles.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list articles: %w", op, err)
	}

	out := make([]api.Article, len(articles))
	for i, a := range articles {
		out[i] = toAPIArticle(a)
	}

	return out, nil
}

// Update replaces the editable fields of an article. Only the author or an
// administrator may update; reviews, comments and the author snapshot are
// never touched through it.
func (s *ArticleServiceImpl) Update(ctx context.Context, actorID string, upd api.ArticleUpdate) (*api.Article, error) {
	const op = "internal.service.article.Update"

	var out api.Article

	err := s.pipeline(ctx, func() error {
		actor, err := s.users.GetUserByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		article, err := s.articles.GetArticleByID(ctx, upd.ArticleID)
		if err != nil {
			return fmt.Errorf("%s: failed to get article: %w", op, err)
		}

		if article.Author.ID != actor.ID && !actor.HasRole(domain.RoleAdmin) {
			return fmt.Errorf("%s: %w", op, apperrors.ErrForbidden)
		}

		applyArticleUpdate(article, upd)

		if err := s.articles.UpdateArticle(ctx, *article); err != nil {
			return fmt.Errorf("%s: failed to update article: %w", op, err)
		}

		out = toAPIArticle(*article)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes an article. Administrators only; authored reviews and
// comments disappear with the article, nothing else cascades.
func (s *ArticleServiceImpl) Delete(ctx context.Context, actorID, articleID string) error {
	const op = "internal.service.article.Delete"
	log := s.log.With(slog.String("op", op), slog.String("article_id", articleID))

	return s.pipeline(ctx, func() error {
		actor, err := s.users.GetUserByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		if !actor.HasRole(domain.RoleAdmin) {
			return fmt.Errorf("%s: %w", op, apperrors.ErrNotAdmin)
		}

		if err := s.articles.DeleteArticle(ctx, articleID); err != nil {
			return fmt.Errorf("%s: failed to delete article: %w", op, err)
		}

		log.Info("article deleted", slog.String("actor_id", actorID))

		return nil
	})
}

// AddComment appends a comment to an article, recomputes the commenter's
// stats and, for threaded replies, notifies the parent comment's author.
// Replying to yourself produces no notification.
func (s *ArticleServiceImpl) AddComment(ctx context.Context, actorID, articleID, text, parentID string) (*api.Article, error) {
	const op = "internal.service.article.AddComment"
	log := s.log.With(slog.String("op", op), slog.String("article_id", articleID), slog.String("actor_id", actorID))

	var out api.Article

	err := s.pipeline(ctx, func() error {
		actor, err := s.users.GetUserByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		article, err := s.articles.GetArticleByID(ctx, articleID)
		if err != nil {
			return fmt.Errorf("%s: failed to get article: %w", op, err)
		}

		now := time.Now().UTC()
		comment := domain.Comment{
			ID:       uuid.NewString(),
			Author:   *actor,
			Date:     now,
			Text:     text,
			ParentID: parentID,
		}

		article.Comments = append(article.Comments, comment)

		if err := s.articles.UpdateArticle(ctx, *article); err != nil {
			return fmt.Errorf("%s: failed to update article: %w", op, err)
		}

		if err := s.recomputeAndStore(ctx, op, *actor); err != nil {
			return err
		}

		if parentID != "" {
			// The parent is looked up in the post-append article; a dangling
			// parent id silently produces no notification.
			if parent, ok := article.Comment(parentID); ok && parent.Author.ID != actor.ID {
				notif := replyNotification(*article, parent, *actor, now)
				if err := s.notifications.InsertNotifications(ctx, []domain.Notification{notif}); err != nil {
					return fmt.Errorf("%s: failed to insert reply notification: %w", op, err)
				}

				log.Info("reply notification sent", slog.String("recipient_id", parent.Author.ID))
			}
		}

		stored, err := s.articles.GetArticleByID(ctx, articleID)
		if err != nil {
			return fmt.Errorf("%s: failed to reload article: %w", op, err)
		}

		out = toAPIArticle(*stored)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// AddReview appends a review to an article and moves the article to
// Under Review unconditionally, whatever its previous status. Only users
// holding the reviewer role may review; the guard lives here, not in the
// presentation layer.
func (s *ArticleServiceImpl) AddReview(ctx context.Context, actorID, articleID string, recommendation domain.ReviewRecommendation, comment string) (*api.Article, error) {
	const op = "internal.service.article.AddReview"
	log := s.log.With(slog.String("op", op), slog.String("article_id", articleID), slog.String("actor_id", actorID))

	var out api.Article

	err := s.pipeline(ctx, func() error {
		actor, err := s.users.GetUserByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get actor: %w", op, err)
		}

		if !actor.HasRole(domain.RoleReviewer) {
			return fmt.Errorf("%s: %w", op, apperrors.ErrNotReviewer)
		}

		article, err := s.articles.GetArticleByID(ctx, articleID)
		if err != nil {
			return fmt.Errorf("%s: failed to get article: %w", op, err)
		}

		review := domain.Review{
			ID:             uuid.NewString(),
			Reviewer:       *actor,
			Date:           time.Now().UTC(),
			Recommendation: recommendation,
			Comment:        comment,
		}

		article.Reviews = append(article.Reviews, review)
		article.Status = domain.StatusUnderReview

		if err := s.articles.UpdateArticle(ctx, *article); err != nil {
			return fmt.Errorf("%s: failed to update article: %w", op, err)
		}

		if err := s.recomputeAndStore(ctx, op, *actor); err != nil {
			return err
		}

		log.Info("review added", slog.String("recommendation", string(recommendation)))

		stored, err := s.articles.GetArticleByID(ctx, articleID)
		if err != nil {
			return fmt.Errorf("%s: failed to reload article: %w", op, err)
		}

		out = toAPIArticle(*stored)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// recomputeAndStore recomputes a user's derived fields over the current
// article collection, stores the result and fans the fresh snapshot out to
// every place it is embedded.
func (s *ArticleServiceImpl) recomputeAndStore(ctx context.Context, op string, user domain.User) error {
	articles, err := s.articles.ListArticles(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to list articles: %w", op, err)
	}

	updated := recomputeStats(user, articles)

	if err := s.users.UpdateUser(ctx, updated); err != nil {
		return fmt.Errorf("%s: failed to update user: %w", op, err)
	}

	if err := s.articles.RefreshUserSnapshots(ctx, updated); err != nil {
		return fmt.Errorf("%s: failed to refresh user snapshots: %w", op, err)
	}

	return nil
}

func applyArticleUpdate(article *domain.Article, upd api.ArticleUpdate) {
	if upd.Title != nil {
		article.Title = *upd.Title
	}

	if upd.Abstract != nil {
		article.Abstract = *upd.Abstract
	}

	if upd.Keywords != nil {
		article.Keywords = *upd.Keywords
	}

	if upd.Disciplines != nil {
		article.Disciplines = *upd.Disciplines
	}

	if upd.References != nil {
		article.References = *upd.References
	}

	if upd.FullText != nil {
		article.FullText = *upd.FullText
	}

	if upd.Status != nil {
		article.Status = domain.ArticleStatus(*upd.Status)
	}

	if upd.License != nil {
		article.License = domain.License(*upd.License)
	}

	if upd.WorkingGroupID != nil {
		article.WorkingGroupID = *upd.WorkingGroupID
	}

	if upd.Citations != nil {
		article.Citations = *upd.Citations
	}

	if upd.PublicationDate != nil {
		article.PublicationDate = upd.PublicationDate
	}
}
