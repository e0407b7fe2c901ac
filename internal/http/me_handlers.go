package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/services"
)

type MeResponse struct {
	ID      string         `json:"id"`
	Email   string         `json:"email"`
	Profile *models.Member `json:"profile"`
	Access  string         `json:"access"`
}

type AccessResponse struct {
	Path string `json:"path"`
	services.Decision
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	access := services.Guard(session, services.RequireMember)
	respond(w, r, http.StatusOK, MeResponse{
		ID:      session.UserID,
		Email:   session.Email,
		Profile: session.Profile,
		Access:  string(access.Outcome),
	})
}

// UpdateProfile accepts only the member-editable keys; any other key in the
// body rejects the whole update.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	raw := map[string]json.RawMessage{}
	if !decodeJSON(r, &raw) {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	if err := services.CheckProfileKeys(keys); err != nil {
		writeServiceError(w, r, err)
		return
	}
	fields := models.ProfileFields{}
	targets := map[string]**string{
		"fullName":    &fields.FullName,
		"phone":       &fields.Phone,
		"department":  &fields.Department,
		"yearOfStudy": &fields.YearOfStudy,
	}
	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			WriteError(w, http.StatusBadRequest, "Field "+key+" must be a string")
			return
		}
		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			WriteError(w, http.StatusBadRequest, "Field "+key+" must be a string")
			return
		}
		*targets[key] = &str
	}
	member, err := s.Profiles.Update(r.Context(), CurrentUserID(r), fields)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]*models.Member{"profile": member})
}

// Access reports what the guard decides for a frontend path.
func (s *Server) Access(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		WriteError(w, http.StatusBadRequest, "path is required")
		return
	}
	respond(w, r, http.StatusOK, AccessResponse{Path: path, Decision: services.Access(CurrentSession(r), path)})
}
