package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linguanexus/nexus-service/pkg/api"
)

func (s *Server) getGroups(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getGroups"

	groups, err := s.groupService.List(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.WorkingGroup{"working_groups": groups})
}

func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getGroup"

	group, err := s.groupService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.WorkingGroup{"working_group": group})
}

func (s *Server) postGroup(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postGroup"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req newGroupRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	group, err := s.groupService.Create(r.Context(), actorID, api.NewWorkingGroup{
		Name:         req.Name,
		Description:  req.Description,
		Bibliography: req.Bibliography,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.WorkingGroup{"working_group": group})
}

func (s *Server) postGroupMember(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postGroupMember"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req addMemberRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	group, err := s.groupService.AddMember(r.Context(), actorID, chi.URLParam(r, "id"), req.UserID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.WorkingGroup{"working_group": group})
}

func (s *Server) getInstitutions(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getInstitutions"

	institutions, err := s.institutionService.List(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.Institution{"institutions": institutions})
}

func (s *Server) getInstitution(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getInstitution"

	institution, err := s.institutionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.Institution{"institution": institution})
}

// postInstitution is open to unauthenticated callers: the registration form
// offers creating a missing institution before any session exists.
func (s *Server) postInstitution(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postInstitution"

	var req newInstitutionRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	institution, err := s.institutionService.Create(r.Context(), api.NewInstitution{
		Name:        req.Name,
		City:        req.City,
		Country:     req.Country,
		WebsiteURL:  req.WebsiteURL,
		Description: req.Description,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.Institution{"institution": institution})
}

func (s *Server) getEvents(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getEvents"

	events, err := s.eventService.List(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.ScientificEvent{"events": events})
}
