package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linguanexus/nexus-service/internal/domain"
	"github.com/linguanexus/nexus-service/pkg/api"
)

func (s *Server) getArticles(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getArticles"

	articles, err := s.articleService.List(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]api.Article{"articles": articles})
}

func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.getArticle"

	article, err := s.articleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.Article{"article": article})
}

func (s *Server) postArticle(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postArticle"

	authorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req newArticleRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	article, err := s.articleService.Submit(r.Context(), authorID, api.NewArticle{
		Title:          req.Title,
		Abstract:       req.Abstract,
		Keywords:       req.Keywords,
		Disciplines:    req.Disciplines,
		References:     req.References,
		FullText:       req.FullText,
		License:        req.License,
		WorkingGroupID: req.WorkingGroupID,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.Article{"article": article})
}

func (s *Server) putArticle(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.putArticle"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var upd api.ArticleUpdate
	if err := s.decodeAndValidate(r, &upd); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	upd.ArticleID = chi.URLParam(r, "id")

	article, err := s.articleService.Update(r.Context(), actorID, upd)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.Article{"article": article})
}

func (s *Server) deleteArticle(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.deleteArticle"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.articleService.Delete(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) postComment(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postComment"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req commentRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	article, err := s.articleService.AddComment(r.Context(), actorID, chi.URLParam(r, "id"), req.Text, req.ParentID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.Article{"article": article})
}

func (s *Server) postReview(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postReview"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req reviewRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	article, err := s.articleService.AddReview(
		r.Context(),
		actorID,
		chi.URLParam(r, "id"),
		domain.ReviewRecommendation(req.Recommendation),
		req.Comment,
	)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.Article{"article": article})
}

func (s *Server) postFollowArticle(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postFollowArticle"

	actorID, err := requireUser(r)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	user, err := s.userService.FollowArticle(r.Context(), actorID, chi.URLParam(r, "id"))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.User{"user": user})
}

func (s *Server) postDraftSuggest(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.postDraftSuggest"

	if _, err := requireUser(r); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req suggestRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	suggestion, err := s.summarizer.Suggest(r.Context(), req.Abstract)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.Suggestion{"suggestion": suggestion})
}
