package httpapi

import (
	"context"
	"log"
	"net/http"
	"strings"

	"clubportal-backend-go/internal/services"
)

type contextKey string

const ctxSession contextKey = "session"

type SessionResolver interface {
	Resolve(ctx context.Context, accessToken string) (*services.Session, error)
}

type AccessDenied struct {
	Message  string `json:"message"`
	Notice   string `json:"notice,omitempty"`
	Status   string `json:"status,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

// WithSession attaches the caller's session to the request. A missing or
// unusable token leaves the request anonymous; gating happens in RequireAccess.
func WithSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" || resolver == nil {
				next.ServeHTTP(w, r)
				return
			}
			session, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if err != services.ErrSessionExpired {
					log.Printf("resolve session: %v", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ctxSession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CurrentSession(r *http.Request) *services.Session {
	if value, ok := r.Context().Value(ctxSession).(*services.Session); ok {
		return value
	}
	return nil
}

func CurrentUserID(r *http.Request) string {
	if session := CurrentSession(r); session != nil {
		return session.UserID
	}
	return ""
}

// RequireAccess runs the lifecycle guard for the route and answers with the
// guard's outcome when it does not render.
func RequireAccess(req services.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := services.Guard(CurrentSession(r), req)
			if decision.Outcome == services.OutcomeRender {
				next.ServeHTTP(w, r)
				return
			}
			writeDenied(w, decision)
		})
	}
}

func writeDenied(w http.ResponseWriter, decision services.Decision) {
	switch decision.Outcome {
	case services.OutcomeRedirectLogin:
		WriteJSON(w, http.StatusUnauthorized, AccessDenied{Message: "Authentication failed", Redirect: decision.Redirect})
	case services.OutcomePendingNotice:
		WriteJSON(w, http.StatusForbidden, AccessDenied{Message: "Membership is not active", Notice: "pending", Status: decision.Status})
	default:
		WriteJSON(w, http.StatusForbidden, AccessDenied{Message: "Not allowed", Redirect: decision.Redirect})
	}
}
