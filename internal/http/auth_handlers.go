package httpapi

import (
	"net/http"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/services"
)

type RegisterRequest struct {
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
	FullName        string  `json:"fullName"`
	Phone           string  `json:"phone"`
	UniversityID    string  `json:"universityId"`
	College         string  `json:"college"`
	Department      string  `json:"department"`
	YearOfStudy     string  `json:"yearOfStudy"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	ExpiresAt    int64          `json:"expiresAt"`
	Member       *models.Member `json:"member,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func tokenResponse(pair services.TokenPair, member *models.Member) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		Member:       member,
	}
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(r, &req) {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.ConfirmPassword != nil && req.Password != *req.ConfirmPassword {
		WriteError(w, http.StatusBadRequest, "Password confirmation does not match")
		return
	}
	member, pair, err := s.Sessions.Register(r.Context(), services.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		Phone:        req.Phone,
		UniversityID: req.UniversityID,
		College:      req.College,
		Department:   req.Department,
		YearOfStudy:  req.YearOfStudy,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, tokenResponse(pair, member))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(r, &req) {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	identity, pair, err := s.Sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	// A member record that fails to load is reported as absent.
	member, _ := s.Profiles.Load(r.Context(), identity.ID)
	respond(w, r, http.StatusOK, tokenResponse(pair, member))
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !decodeJSON(r, &req) || req.RefreshToken == "" {
		WriteError(w, http.StatusBadRequest, "Authentication failed")
		return
	}
	pair, err := s.Sessions.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, tokenResponse(pair, nil))
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	if err := s.Sessions.SignOut(r.Context(), session.SessionID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
