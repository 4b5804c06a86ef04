package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/session"
	"github.com/linguanexus/nexus-service/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverMocks struct {
	users      *UserServiceMock
	articles   *ArticleServiceMock
	messages   *MessageServiceMock
	summarizer *SummarizerMock
}

func newTestServer(t *testing.T) (*Server, *serverMocks, *session.Manager) {
	t.Helper()

	m := &serverMocks{
		users:      new(UserServiceMock),
		articles:   new(ArticleServiceMock),
		messages:   new(MessageServiceMock),
		summarizer: new(SummarizerMock),
	}

	sessions := session.NewManager()

	server := NewServer(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessions,
		m.users,
		m.articles,
		m.messages,
		nil,
		nil,
		nil,
		nil,
		m.summarizer,
	)

	return server, m, sessions
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}

func TestServer_PostRegister(t *testing.T) {
	sessionResponse := &api.Session{
		Token: "tok-1",
		User:  api.User{ID: "user-1", Name: "Dr. New Member", Email: "new@nexus.test"},
	}

	testCases := []struct {
		name                 string
		requestBody          string
		setupMocks           func(*serverMocks)
		expectedStatusCode   int
		expectedResponseBody string
	}{
		{
			name:        "Success",
			requestBody: `{"name": "Dr. New Member", "email": "new@nexus.test", "password": "correct-horse"}`,
			setupMocks: func(m *serverMocks) {
				m.users.On("Register", mock.Anything, mock.MatchedBy(func(u api.NewUser) bool {
					return u.Email == "new@nexus.test"
				})).Return(sessionResponse, nil).Once()
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "Email already taken",
			requestBody: `{"name": "Imposter", "email": "new@nexus.test", "password": "correct-horse"}`,
			setupMocks: func(m *serverMocks) {
				m.users.On("Register", mock.Anything, mock.Anything).
					Return(nil, &apperrors.EmailTakenError{Email: "new@nexus.test"}).Once()
			},
			expectedStatusCode:   http.StatusConflict,
			expectedResponseBody: `{"error":"user with email 'new@nexus.test' already exists"}`,
		},
		{
			name:                 "Password too short fails validation",
			requestBody:          `{"name": "Dr. New Member", "email": "new@nexus.test", "password": "short"}`,
			setupMocks:           func(m *serverMocks) {},
			expectedStatusCode:   http.StatusBadRequest,
			expectedResponseBody: `{"error":"validation failed: field 'Password' failed on the 'min' tag"}`,
		},
		{
			name:                 "Invalid JSON body",
			requestBody:          `{invalid json}`,
			setupMocks:           func(m *serverMocks) {},
			expectedStatusCode:   http.StatusBadRequest,
			expectedResponseBody: `{"error":"invalid request body"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m, _ := newTestServer(t)
			tc.setupMocks(m)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			server.Routes().ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)

			expected := tc.expectedResponseBody
			if expected == "" {
				expected = mustJSON(t, map[string]*api.Session{"session": sessionResponse})
			}
			assert.JSONEq(t, expected, rr.Body.String())

			m.users.AssertExpectations(t)
		})
	}
}

func TestServer_PostArticle(t *testing.T) {
	articleResponse := &api.Article{
		ID:     "art-1",
		Title:  "A Reassessment of Laryngeal Theory",
		Status: "Submitted",
	}

	requestBody := `{
		"title": "A Reassessment of Laryngeal Theory",
		"abstract": "We revisit the laryngeal theory with new Hittite evidence.",
		"keywords": ["Laryngeal Theory"],
		"disciplines": ["Phonology"]
	}`

	t.Run("Authenticated author submits", func(t *testing.T) {
		server, m, sessions := newTestServer(t)
		token := sessions.Issue("user-1")

		m.articles.On("Submit", mock.Anything, "user-1", mock.MatchedBy(func(draft api.NewArticle) bool {
			return draft.Title == articleResponse.Title
		})).Return(articleResponse, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/articles/", strings.NewReader(requestBody))
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		server.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, mustJSON(t, map[string]*api.Article{"article": articleResponse}), rr.Body.String())
		m.articles.AssertExpectations(t)
	})

	t.Run("No session is rejected", func(t *testing.T) {
		server, m, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/articles/", strings.NewReader(requestBody))

		rr := httptest.NewRecorder()
		server.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		m.articles.AssertNotCalled(t, "Submit")
	})
}

func TestServer_GetArticle(t *testing.T) {
	articleResponse := &api.Article{ID: "art-1", Title: "On Laryngeal Theory", Views: 42}

	testCases := []struct {
		name               string
		articleID          string
		setupMocks         func(*serverMocks)
		expectedStatusCode int
	}{
		{
			name:      "Success",
			articleID: "art-1",
			setupMocks: func(m *serverMocks) {
				m.articles.On("Get", mock.Anything, "art-1").Return(articleResponse, nil).Once()
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:      "Not found",
			articleID: "art-gone",
			setupMocks: func(m *serverMocks) {
				m.articles.On("Get", mock.Anything, "art-gone").
					Return(nil, &apperrors.ArticleNotFoundError{ArticleID: "art-gone"}).Once()
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m, _ := newTestServer(t)
			tc.setupMocks(m)

			req := httptest.NewRequest(http.MethodGet, "/articles/"+tc.articleID, nil)

			rr := httptest.NewRecorder()
			server.Routes().ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			m.articles.AssertExpectations(t)
		})
	}
}

func TestServer_PostReview_Forbidden(t *testing.T) {
	server, m, sessions := newTestServer(t)
	token := sessions.Issue("user-1")

	m.articles.On("AddReview", mock.Anything, "user-1", "art-1", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotReviewer).Once()

	body := `{"recommendation": "Accept", "comment": "Looks solid."}`
	req := httptest.NewRequest(http.MethodPost, "/articles/art-1/reviews", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error":"only users with the reviewer role can submit reviews"}`, rr.Body.String())
}

func TestServer_PostMessage_SelfMessage(t *testing.T) {
	server, m, sessions := newTestServer(t)
	token := sessions.Issue("user-1")

	m.messages.On("Send", mock.Anything, "user-1", "user-1", "Note to self").
		Return(nil, apperrors.ErrSelfMessage).Once()

	body := `{"recipient_id": "user-1", "text": "Note to self"}`
	req := httptest.NewRequest(http.MethodPost, "/messages/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"cannot send a message to yourself"}`, rr.Body.String())
}

func TestServer_GetUnreadCount(t *testing.T) {
	server, m, sessions := newTestServer(t)
	token := sessions.Issue("user-1")

	m.messages.On("UnreadCount", mock.Anything, "user-1").Return(3, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/messages/unread-count", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"unread_count":3}`, rr.Body.String())
}

func TestServer_PostDraftSuggest(t *testing.T) {
	t.Run("Suggestion returned", func(t *testing.T) {
		server, m, sessions := newTestServer(t)
		token := sessions.Issue("user-1")

		suggestion := &api.Suggestion{
			Summary:  "A one-sentence summary.",
			Keywords: []string{"Phonology", "Hittite"},
		}

		m.summarizer.On("Suggest", mock.Anything, mock.Anything).Return(suggestion, nil).Once()

		body := `{"abstract": "We revisit the laryngeal theory with new Hittite evidence."}`
		req := httptest.NewRequest(http.MethodPost, "/articles/draft/suggest", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		server.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, mustJSON(t, map[string]*api.Suggestion{"suggestion": suggestion}), rr.Body.String())
	})

	t.Run("Summarizer not configured", func(t *testing.T) {
		server, m, sessions := newTestServer(t)
		token := sessions.Issue("user-1")

		m.summarizer.On("Suggest", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrSummarizerUnset).Once()

		body := `{"abstract": "We revisit the laryngeal theory with new Hittite evidence."}`
		req := httptest.NewRequest(http.MethodPost, "/articles/draft/suggest", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		server.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestServer_DeleteUser(t *testing.T) {
	server, m, sessions := newTestServer(t)
	token := sessions.Issue("admin-1")

	m.users.On("Delete", mock.Anything, "admin-1", "user-2").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/users/user-2", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	m.users.AssertExpectations(t)
}
