package http

import (
	"net/http"
	"strings"

	"github.com/linguanexus/nexus-service/pkg/api"
)

func (s *Server) postRegister(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postRegister"

	var req registerRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	session, err := s.userService.Register(r.Context(), api.NewUser{
		Name:          req.Name,
		Email:         req.Email,
		InstitutionID: req.InstitutionID,
		Password:      req.Password,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.Session{"session": session})
}

func (s *Server) postLogin(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postLogin"

	var req loginRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	session, err := s.userService.Login(r.Context(), req.Email)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.Session{"session": session})
}

func (s *Server) postLogout(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postLogout"

	token := bearerToken(r)

	if err := s.userService.Logout(r.Context(), token); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusNoContent, nil)
}

func bearerToken(r *http.Request) string {
	token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")

	return token
}
