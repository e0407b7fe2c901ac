package httpapi

import (
	"net/http"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/services"

	"github.com/gorilla/websocket"
)

func (s *Server) StatsHistory(w http.ResponseWriter, r *http.Request) {
	items, err := s.Dashboard.History(r.Context(), parseInt(r.URL.Query().Get("limit"), 120))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, ItemsResponse[models.DashboardSample]{Items: items})
}

// DashboardSocket streams dashboard samples to an admin. Browsers cannot set
// headers on a websocket handshake, so the access token comes in ?token=.
func (s *Server) DashboardSocket(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	if token := r.URL.Query().Get("token"); token != "" {
		resolved, err := s.Sessions.Resolve(r.Context(), token)
		if err != nil {
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		session = resolved
	}
	if decision := services.Guard(session, services.RequireAdmin); decision.Outcome != services.OutcomeRender {
		writeDenied(w, decision)
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.Hub.Add(conn)
	defer func() {
		s.Hub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
