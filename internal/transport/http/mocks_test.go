package http

import (
	"context"

	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/internal/service"
	"github.com/linguanexus/nexus-service/internal/summarize"
	"github.com/linguanexus/nexus-service/pkg/api"
	"github.com/stretchr/testify/mock"
)

type UserServiceMock struct {
	mock.Mock
}

var _ service.UserService = (*UserServiceMock)(nil)

func (m *UserServiceMock) Register(ctx context.Context, newUser api.NewUser) (*api.Session, error) {
	args := m.Called(ctx, newUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Session), args.Error(1)
}

func (m *UserServiceMock) Login(ctx context.Context, email string) (*api.Session, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Session), args.Error(1)
}

func (m *UserServiceMock) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *UserServiceMock) Get(ctx context.Context, userID string) (*api.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

func (m *UserServiceMock) List(ctx context.Context) ([]api.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.User), args.Error(1)
}

func (m *UserServiceMock) Update(ctx context.Context, actorID string, upd api.UserUpdate) (*api.User, error) {
	args := m.Called(ctx, actorID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

func (m *UserServiceMock) Delete(ctx context.Context, actorID, targetID string) error {
	args := m.Called(ctx, actorID, targetID)
	return args.Error(0)
}

func (m *UserServiceMock) FollowUser(ctx context.Context, actorID, targetID string) (*api.User, error) {
	args := m.Called(ctx, actorID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

func (m *UserServiceMock) FollowArticle(ctx context.Context, actorID, articleID string) (*api.User, error) {
	args := m.Called(ctx, actorID, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

type ArticleServiceMock struct {
	mock.Mock
}

var _ service.ArticleService = (*ArticleServiceMock)(nil)

func (m *ArticleServiceMock) Submit(ctx context.Context, authorID string, draft api.NewArticle) (*api.Article, error) {
	args := m.Called(ctx, authorID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Article), args.Error(1)
}

func (m *ArticleServiceMock) Get(ctx context.Context, articleID string) (*api.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Article), args.Error(1)
}

func (m *ArticleServiceMock) List(ctx context.Context) ([]api.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.Article), args.Error(1)
}

func (m *ArticleServiceMock) Update(ctx context.Context, actorID string, upd api.ArticleUpdate) (*api.Article, error) {
	args := m.Called(ctx, actorID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Article), args.Error(1)
}

func (m *ArticleServiceMock) Delete(ctx context.Context, actorID, articleID string) error {
	args := m.Called(ctx, actorID, articleID)
	return args.Error(0)
}

func (m *ArticleServiceMock) AddComment(ctx context.Context, actorID, articleID, text, parentID string) (*api.Article, error) {
	args := m.Called(ctx, actorID, articleID, text, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Article), args.Error(1)
}

func (m *ArticleServiceMock) AddReview(ctx context.Context, actorID, articleID string, recommendation domain.ReviewRecommendation, comment string) (*api.Article, error) {
	args := m.Called(ctx, actorID, articleID, recommendation, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Article), args.Error(1)
}

type MessageServiceMock struct {
	mock.Mock
}

var _ service.MessageService = (*MessageServiceMock)(nil)

func (m *MessageServiceMock) Send(ctx context.Context, senderID, recipientID, text string) (*api.Message, error) {
	args := m.Called(ctx, senderID, recipientID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Message), args.Error(1)
}

func (m *MessageServiceMock) Conversations(ctx context.Context, userID string) ([]api.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.Conversation), args.Error(1)
}

func (m *MessageServiceMock) Thread(ctx context.Context, userID, otherID string) ([]api.Message, error) {
	args := m.Called(ctx, userID, otherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.Message), args.Error(1)
}

func (m *MessageServiceMock) MarkConversationRead(ctx context.Context, userID, otherID string) (int, error) {
	args := m.Called(ctx, userID, otherID)
	return args.Int(0), args.Error(1)
}

func (m *MessageServiceMock) UnreadCount(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type SummarizerMock struct {
	mock.Mock
}

var _ summarize.Client = (*SummarizerMock)(nil)

func (m *SummarizerMock) Suggest(ctx context.Context, abstract string) (*api.Suggestion, error) {
	args := m.Called(ctx, abstract)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Suggestion), args.Error(1)
}
