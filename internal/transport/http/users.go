package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/pkg/api"
)

// requireUser returns the authenticated user id from the request context, or
// ErrNotAuthenticated when the request carries no valid session.
func requireUser(r *http.Request) (string, error) {
	if userID := currentUserID(r.Context()); userID != "" {
		return userID, nil
	}

	return "", apperrors.ErrNotAuthenticated
}

func (s *Server) getUsers(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getUsers"

	users, err := s.userService.List(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.User{"users": users})
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getUser"

	user, err := s.userService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.User{"user": user})
}

func (s *Server) patchUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.patchUser"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var upd api.UserUpdate
	if err := s.decodeAndValidate(r, &upd); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	upd.UserID = chi.URLParam(r, "id")

	user, err := s.userService.Update(r.Context(), actorID, upd)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.User{"user": user})
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.deleteUser"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.userService.Delete(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) postFollowUser(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postFollowUser"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	user, err := s.userService.FollowUser(r.Context(), actorID, chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.User{"user": user})
}

func (s *Server) getNotifications(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getNotifications"

	userID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	notifications, err := s.notificationService.Feed(r.Context(), userID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.Notification{"notifications": notifications})
}
