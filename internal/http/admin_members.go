package httpapi

import (
	"net/http"
	"strconv"

	"clubportal-backend-go/internal/models"

	"github.com/go-chi/chi/v5"
)

type ItemsResponse[T any] struct {
	Items []T `json:"items"`
}

func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.Moderation.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, dashboard)
}

func (s *Server) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Moderation.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, stats)
}

func (s *Server) ListPendingMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.Moderation.ListPending(r.Context(), parseInt(r.URL.Query().Get("limit"), 0))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, ItemsResponse[models.Member]{Items: members})
}

func (s *Server) ApproveMember(w http.ResponseWriter, r *http.Request) {
	result, err := s.Moderation.Approve(r.Context(), chi.URLParam(r, "memberId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

func (s *Server) RejectMember(w http.ResponseWriter, r *http.Request) {
	result, err := s.Moderation.Reject(r.Context(), chi.URLParam(r, "memberId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

func (s *Server) ListUnrepliedMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.Moderation.ListUnrepliedMessages(r.Context(), parseInt(r.URL.Query().Get("limit"), 0))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, ItemsResponse[models.AnonymousMessage]{Items: messages})
}

func (s *Server) MarkMessageReplied(w http.ResponseWriter, r *http.Request) {
	result, err := s.Moderation.MarkReplied(r.Context(), chi.URLParam(r, "messageId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
