package services

import (
	"strings"

	"clubportal-backend-go/internal/models"
)

type Outcome string

const (
	OutcomeRedirectLogin Outcome = "redirect_login"
	OutcomePendingNotice Outcome = "pending_notice"
	OutcomeRedirectHome  Outcome = "redirect_home"
	OutcomeRender        Outcome = "render"
)

type Requirement struct {
	RequireActive bool
	RequireAdmin  bool
}

var (
	// RequireSignedIn only needs an identity; used for sign-out and /me.
	RequireSignedIn = Requirement{}
	RequireMember   = Requirement{RequireActive: true}
	RequireAdmin    = Requirement{RequireActive: true, RequireAdmin: true}
)

type Decision struct {
	Outcome  Outcome `json:"outcome"`
	Redirect string  `json:"redirect,omitempty"`
	Status   string  `json:"status,omitempty"`
}

// Guard decides what a session may see. Checks run in a fixed order:
// identity, activeness, admin role.
func Guard(session *Session, req Requirement) Decision {
	if !session.Authenticated() || !session.Settled {
		return Decision{Outcome: OutcomeRedirectLogin, Redirect: "/login"}
	}
	if req.RequireActive && !session.Profile.IsActive() {
		status := models.StatusPending
		if session.Profile != nil {
			status = session.Profile.Status
		}
		return Decision{Outcome: OutcomePendingNotice, Status: status}
	}
	if req.RequireAdmin && !session.Profile.IsAdmin() {
		return Decision{Outcome: OutcomeRedirectHome, Redirect: "/"}
	}
	return Decision{Outcome: OutcomeRender}
}

var publicRoutes = map[string]bool{
	"/":          true,
	"/login":     true,
	"/register":  true,
	"/about":     true,
	"/events":    true,
	"/blog":      true,
	"/resources": true,
	"/help":      true,
}

// RouteRequirement maps a frontend path to the requirement that gates it.
// The second result is false for public pages, including unknown paths.
func RouteRequirement(path string) (Requirement, bool) {
	path = "/" + strings.Trim(strings.TrimSpace(path), "/")
	switch {
	case publicRoutes[path]:
		return Requirement{}, false
	case path == "/profile":
		return RequireMember, true
	case path == "/admin" || strings.HasPrefix(path, "/admin/"):
		return RequireAdmin, true
	}
	return Requirement{}, false
}

// Access evaluates a route for a session; public routes always render.
func Access(session *Session, path string) Decision {
	req, gated := RouteRequirement(path)
	if !gated {
		return Decision{Outcome: OutcomeRender}
	}
	return Guard(session, req)
}
