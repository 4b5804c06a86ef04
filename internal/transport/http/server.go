// package http implements the HTTP transport layer for the service.
// It handles incoming requests, decodes them, calls the appropriate service
// methods, and encodes the responses.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/service"
	"github.com/linguanexus/nexus-service/internal/session"
	"github.com/linguanexus/nexus-service/internal/summarize"
	"github.com/linguanexus/nexus-service/internal/validation"
	"github.com/linguanexus/nexus-service/pkg/logger/sl"
)

// Server holds the dependencies for the HTTP server, including the logger
// and service interfaces.
type Server struct {
	log                 *slog.Logger
	sessions            *session.Manager
	userService         service.UserService
	articleService      service.ArticleService
	messageService      service.MessageService
	notificationService service.NotificationService
	groupService        service.GroupService
	institutionService  service.InstitutionService
	eventService        service.EventService
	summarizer          summarize.Client
}

// NewServer creates a new instance of the HTTP server.
func NewServer(
	log *slog.Logger,
	sessions *session.Manager,
	us service.UserService,
	as service.ArticleService,
	ms service.MessageService,
	ns service.NotificationService,
	gs service.GroupService,
	is service.InstitutionService,
	es service.EventService,
	summarizer summarize.Client,
) *Server {
	return &Server{
		log:                 log,
		sessions:            sessions,
		userService:         us,
		articleService:      as,
		messageService:      ms,
		notificationService: ns,
		groupService:        gs,
		institutionService:  is,
		eventService:        es,
		summarizer:          summarizer,
	}
}

// Routes sets up the router with all middleware and API endpoints.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)
	mux.Use(s.authenticate)

	mux.Handle("/metrics", promhttp.Handler())

	mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.postRegister)
		r.Post("/login", s.postLogin)
		r.Post("/logout", s.postLogout)
	})

	mux.Route("/users", func(r chi.Router) {
		r.Get("/", s.getUsers)
		r.Get("/{id}", s.getUser)
		r.Patch("/{id}", s.patchUser)
		r.Delete("/{id}", s.deleteUser)
		r.Post("/{id}/follow", s.postFollowUser)
	})

	mux.Route("/articles", func(r chi.Router) {
		r.Get("/", s.getArticles)
		r.Post("/", s.postArticle)
		r.Post("/draft/suggest", s.postDraftSuggest)
		r.Get("/{id}", s.getArticle)
		r.Put("/{id}", s.putArticle)
		r.Delete("/{id}", s.deleteArticle)
		r.Post("/{id}/comments", s.postComment)
		r.Post("/{id}/reviews", s.postReview)
		r.Post("/{id}/follow", s.postFollowArticle)
	})

	mux.Route("/messages", func(r chi.Router) {
		r.Post("/", s.postMessage)
		r.Get("/conversations", s.getConversations)
		r.Get("/unread-count", s.getUnreadCount)
		r.Get("/with/{userId}", s.getThread)
	})

	mux.Get("/notifications", s.getNotifications)

	mux.Route("/groups", func(r chi.Router) {
		r.Get("/", s.getGroups)
		r.Post("/", s.postGroup)
		r.Get("/{id}", s.getGroup)
		r.Post("/{id}/members", s.postGroupMember)
	})

	mux.Route("/institutions", func(r chi.Router) {
		r.Get("/", s.getInstitutions)
		r.Post("/", s.postInstitution)
		r.Get("/{id}", s.getInstitution)
	})

	mux.Get("/events", s.getEvents)

	return mux
}

// respond is a helper function to encode data to JSON and write it to the
// response. It centralizes setting the Content-Type header and writing the
// status code.
func (s *Server) respond(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

// respondError is a convenience wrapper around respond for sending simple
// error messages.
func (s *Server) respondError(w http.ResponseWriter, code int, message string) {
	s.respond(w, code, map[string]string{"error": message})
}

// decodeAndValidate is a helper that deserializes a JSON request body into a
// struct and then runs validation checks on it.
func (s *Server) decodeAndValidate(r *http.Request, v interface{}) error {
	if err := s.decode(r.Body, v); err != nil {
		return err
	}

	if err := validation.ValidateStruct(v); err != nil {
		return err
	}

	return nil
}

// decode is a helper function to decode a JSON request body.
func (s *Server) decode(body io.ReadCloser, v interface{}) error {
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// handleServiceError provides centralized error handling for all HTTP
// handlers. It logs the internal error and maps it to a user-friendly HTTP
// response.
func (s *Server) handleServiceError(w http.ResponseWriter, _ *http.Request, op string, err error) {
	log := s.log.With(slog.String("op", op))
	log.Error("service error occurred", sl.Err(err))

	var validationErr *validation.ValidationError

	switch {
	case errors.As(err, &validationErr):
		wrappedErr := fmt.Errorf("%w: %s", apperrors.ErrValidation, validationErr.Error())
		s.respondError(w, http.StatusBadRequest, wrappedErr.Error())
	case errors.Is(err, apperrors.ErrInvalidRequest):
		s.respondError(w, http.StatusBadRequest, "invalid request body")
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		s.respondError(w, http.StatusUnauthorized, apperrors.ErrNotAuthenticated.Error())
	case errors.Is(err, apperrors.ErrNotAdmin):
		s.respondError(w, http.StatusForbidden, apperrors.ErrNotAdmin.Error())
	case errors.Is(err, apperrors.ErrNotReviewer):
		s.respondError(w, http.StatusForbidden, apperrors.ErrNotReviewer.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		s.respondError(w, http.StatusForbidden, apperrors.ErrForbidden.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		s.respondError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, apperrors.ErrAlreadyExists):
		s.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrSelfMessage):
		s.respondError(w, http.StatusBadRequest, apperrors.ErrSelfMessage.Error())
	case errors.Is(err, apperrors.ErrSummarizerUnset):
		s.respondError(w, http.StatusServiceUnavailable, apperrors.ErrSummarizerUnset.Error())
	default:
		s.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
