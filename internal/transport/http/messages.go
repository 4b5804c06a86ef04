package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linguanexus/nexus-service/pkg/api"
)

func (s *Server) postMessage(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postMessage"

	senderID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req sendMessageRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	message, err := s.messageService.Send(r.Context(), senderID, req.RecipientID, req.Text)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.Message{"message": message})
}

func (s *Server) getConversations(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getConversations"

	userID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	conversations, err := s.messageService.Conversations(r.Context(), userID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.Conversation{"conversations": conversations})
}

// getThread returns the full exchange with another user. Fetching a thread
// marks the other party's messages as read.
func (s *Server) getThread(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getThread"

	userID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	messages, err := s.messageService.Thread(r.Context(), userID, chi.URLParam(r, "userId"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.Message{"messages": messages})
}

func (s *Server) getUnreadCount(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getUnreadCount"

	userID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	count, err := s.messageService.UnreadCount(r.Context(), userID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]int{"unread_count": count})
}
