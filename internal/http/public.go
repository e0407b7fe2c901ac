package httpapi

import (
	"log"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/services"

	"github.com/google/uuid"
)

type VisitRequest struct {
	Path     *string `json:"path"`
	Referrer *string `json:"referrer"`
}

type HelpMessageRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type HelpMessageResponse struct {
	ID        string `json:"id"`
	Submitted bool   `json:"submitted"`
}

type CategoriesResponse struct {
	Items []string `json:"items"`
}

func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, s.Content.Home(r.Context()))
}

func (s *Server) PublicEvents(w http.ResponseWriter, r *http.Request) {
	list, err := s.Content.ListEvents(r.Context(), r.URL.Query().Get("mode"), s.Clock.Now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, list)
}

func (s *Server) PublicPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Content.ListPosts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, ItemsResponse[services.PostView]{Items: posts})
}

func (s *Server) PostCategories(w http.ResponseWriter, r *http.Request) {
	items := append([]string{services.CategoryAll}, services.PostCategories...)
	respond(w, r, http.StatusOK, CategoriesResponse{Items: items})
}

func (s *Server) PublicResources(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, s.Content.ListResources(r.Context(), CurrentSession(r)))
}

func (s *Server) MemberResources(w http.ResponseWriter, r *http.Request) {
	resources, err := s.Content.MemberResources(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, ItemsResponse[models.Resource]{Items: resources})
}

func (s *Server) HelpContacts(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, ItemsResponse[services.EmergencyContact]{Items: services.EmergencyContacts()})
}

func (s *Server) SubmitHelpMessage(w http.ResponseWriter, r *http.Request) {
	var req HelpMessageRequest
	if !decodeJSON(r, &req) {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	msg, err := s.Help.Submit(r.Context(), s.clientIP(r), services.HelpInput{Subject: req.Subject, Message: req.Message})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, HelpMessageResponse{ID: msg.ID, Submitted: true})
}

func (s *Server) TrackVisit(w http.ResponseWriter, r *http.Request) {
	var req VisitRequest
	_ = decodeJSON(r, &req)
	visit := models.SiteVisit{
		ID:        uuid.NewString(),
		IPAddress: nullIfEmpty(s.clientIP(r)),
		UserAgent: nullIfEmpty(trimString(r.Header.Get("User-Agent"), 512)),
		Path:      nullIfEmpty(trimString(ptrToString(req.Path), 255)),
		Referrer:  nullIfEmpty(trimString(ptrToString(req.Referrer), 512)),
		CreatedAt: s.Clock.Now(),
	}
	if err := s.Visits.RecordVisit(r.Context(), visit); err != nil {
		log.Printf("record visit: %v", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// clientIP is the peer address unless the peer is a trusted proxy, in which
// case it is the right-most X-Forwarded-For hop that is not a trusted proxy.
func (s *Server) clientIP(r *http.Request) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		peer = host
	}
	if !s.trusted(peer) {
		return peer
	}
	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if net.ParseIP(hop) == nil {
			return peer
		}
		if !s.trusted(hop) {
			return hop
		}
	}
	return peer
}

func (s *Server) trusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, ipnet := range s.proxies {
		if ipnet.Contains(ip) {
			return true
		}
	}
	return false
}

// trimString cuts on a rune boundary so the result stays valid UTF-8.
func trimString(value string, maxLen int) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) <= maxLen {
		return trimmed
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
		cut--
	}
	return strings.ToValidUTF8(trimmed[:cut], "")
}

func nullIfEmpty(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func ptrToString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
