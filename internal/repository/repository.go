// package repository defines the interfaces for the entity store.
// These interfaces abstract the in-memory collections from the service layer,
// which only ever sees deep-copied snapshots of stored values.
package repository

import (
	"context"

	"github.com/linguanexus/nexus-service/internal/domain"
)

// Sequencer serializes whole mutation pipelines. Every multi-step mutation
// (primary update, derived recomputation, notification emission) runs inside
// Do, so no other pipeline can observe an intermediate state.
type Sequencer interface {
	Do(ctx context.Context, fn func() error) error
}

// UserRepository defines the contract for the user collection.
type UserRepository interface {
	// CreateUser appends a new user.
	// It returns an apperrors.EmailTakenError if the email is already in use.
	CreateUser(ctx context.Context, user domain.User) error

	// GetUserByID retrieves a user by id.
	// It returns apperrors.ErrNotFound if the user does not exist.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	// It returns apperrors.ErrNotFound if no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers returns a snapshot of the whole user collection in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser replaces the stored user with the same id.
	// It returns apperrors.ErrNotFound if the user does not exist.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user. Authored content is left in place.
	// It returns apperrors.ErrNotFound if the user does not exist.
	DeleteUser(ctx context.Context, userID string) error
}

// ArticleRepository defines the contract for the article collection, which
// owns embedded reviews and comments.
type ArticleRepository interface {
	// InsertArticle prepends a new article, so listings are newest first.
	InsertArticle(ctx context.Context, article domain.Article) error

	// GetArticleByID retrieves an article by id.
	// It returns apperrors.ErrNotFound if the article does not exist.
	GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error)

	// ListArticles returns a snapshot of the whole article collection.
	ListArticles(ctx context.Context) ([]domain.Article, error)

	// UpdateArticle replaces the stored article with the same id.
	// It returns apperrors.ErrNotFound if the article does not exist.
	UpdateArticle(ctx context.Context, article domain.Article) error

	// DeleteArticle removes an article.
	// It returns apperrors.ErrNotFound if the article does not exist.
	DeleteArticle(ctx context.Context, articleID string) error

	// IncrementViews bumps the view counter and returns the updated article.
	// It returns apperrors.ErrNotFound if the article does not exist.
	IncrementViews(ctx context.Context, articleID string) (*domain.Article, error)

	// RefreshUserSnapshots walks every article and replaces each embedded copy
	// of the given user (article author, review reviewer, comment author) with
	// the provided value. This is the fan-out half of the denormalization
	// invariant: it must run after any mutation of a user's derived fields.
	RefreshUserSnapshots(ctx context.Context, user domain.User) error
}

// NotificationRepository defines the contract for the notification collection.
type NotificationRepository interface {
	// InsertNotifications prepends the given records, newest first.
	InsertNotifications(ctx context.Context, notifications []domain.Notification) error

	// ListNotificationsByUser returns all notifications addressed to a user,
	// in store order.
	ListNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error)
}

// MessageRepository defines the contract for the direct-message collection.
type MessageRepository interface {
	// InsertMessage appends a new message.
	InsertMessage(ctx context.Context, message domain.Message) error

	// ListMessagesByUser returns every message the user sent or received.
	ListMessagesByUser(ctx context.Context, userID string) ([]domain.Message, error)

	// MarkConversationRead flips IsRead on every unread message sent by
	// senderID to recipientID and reports how many were flipped. Idempotent.
	MarkConversationRead(ctx context.Context, recipientID, senderID string) (int, error)

	// CountUnread returns the number of unread messages addressed to the user.
	CountUnread(ctx context.Context, recipientID string) (int, error)
}

// GroupRepository defines the contract for the working-group collection.
// Affiliated users and articles are derived by filtering, never stored here.
type GroupRepository interface {
	// InsertGroup prepends a new working group.
	InsertGroup(ctx context.Context, group domain.WorkingGroup) error

	// GetGroupByID retrieves a working group by id.
	// It returns apperrors.ErrNotFound if the group does not exist.
	GetGroupByID(ctx context.Context, groupID string) (*domain.WorkingGroup, error)

	// ListGroups returns a snapshot of the working-group collection.
	ListGroups(ctx context.Context) ([]domain.WorkingGroup, error)

	// UpdateGroup replaces the stored group with the same id.
	// It returns apperrors.ErrNotFound if the group does not exist.
	UpdateGroup(ctx context.Context, group domain.WorkingGroup) error
}

// InstitutionRepository defines the contract for the institution collection,
// which is kept sorted by name.
type InstitutionRepository interface {
	// InsertInstitution adds an institution, keeping the collection sorted.
	InsertInstitution(ctx context.Context, institution domain.Institution) error

	// GetInstitutionByID retrieves an institution by id.
	// It returns apperrors.ErrNotFound if the institution does not exist.
	GetInstitutionByID(ctx context.Context, institutionID string) (*domain.Institution, error)

	// ListInstitutions returns the institutions sorted by name.
	ListInstitutions(ctx context.Context) ([]domain.Institution, error)
}

// EventRepository defines the contract for the scientific-event collection,
// which is populated at seed time only.
type EventRepository interface {
	// InsertEvent appends a scientific event.
	InsertEvent(ctx context.Context, event domain.ScientificEvent) error

	// ListEvents returns a snapshot of the event collection.
	ListEvents(ctx context.Context) ([]domain.ScientificEvent, error)
}
