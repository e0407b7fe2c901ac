package httpapi

import (
	"log"
	"net"
	"net/http"
	"strings"

	"clubportal-backend-go/internal/config"
	"clubportal-backend-go/internal/services"
	"clubportal-backend-go/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Deps are the collaborators the handlers call into.
type Deps struct {
	Sessions   *services.SessionStore
	Profiles   *services.ProfileService
	Moderation *services.Moderation
	Content    *services.ContentService
	Help       *services.HelpDesk
	Dashboard  *services.DashboardStats
	Hub        *services.DashboardHub
	Visits     store.Stats
	Clock      services.Clock
}

type Server struct {
	Config config.Config
	Deps
	proxies []*net.IPNet
}

func NewServer(cfg config.Config, deps Deps) *Server {
	if deps.Clock == nil {
		deps.Clock = services.RealClock{}
	}
	return &Server{Config: cfg, Deps: deps, proxies: parseProxies(cfg.TrustedProxies)}
}

// parseProxies accepts CIDRs or bare addresses; bad entries are logged and skipped.
func parseProxies(entries []string) []*net.IPNet {
	nets := []*net.IPNet{}
	for _, entry := range entries {
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				log.Printf("trusted proxy %q ignored", entry)
				continue
			}
			bits := 128
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipnet, err := net.ParseCIDR(entry)
		if err != nil {
			log.Printf("trusted proxy %q ignored: %v", entry, err)
			continue
		}
		nets = append(nets, ipnet)
	}
	return nets
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	var resolver SessionResolver
	if s.Sessions != nil {
		resolver = s.Sessions
	}
	r.Use(WithSession(resolver))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", s.Register)
		api.Post("/auth/login", s.Login)
		api.Post("/auth/refresh", s.Refresh)
		api.With(RequireAccess(services.RequireSignedIn)).Post("/auth/logout", s.Logout)

		api.Get("/access", s.Access)

		api.Route("/me", func(me chi.Router) {
			me.Use(RequireAccess(services.RequireSignedIn))
			me.Get("/", s.Me)
			me.With(RequireAccess(services.RequireMember)).Put("/profile", s.UpdateProfile)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(RequireAccess(services.RequireAdmin))
			admin.Get("/dashboard", s.AdminDashboard)
			admin.Get("/stats", s.AdminStats)
			admin.Get("/stats/history", s.StatsHistory)
			admin.Route("/members", func(members chi.Router) {
				members.Get("/pending", s.ListPendingMembers)
				members.Post("/{memberId}/approve", s.ApproveMember)
				members.Post("/{memberId}/reject", s.RejectMember)
			})
			admin.Route("/messages", func(messages chi.Router) {
				messages.Get("/unreplied", s.ListUnrepliedMessages)
				messages.Post("/{messageId}/replied", s.MarkMessageReplied)
			})
		})

		api.With(RequireAccess(services.RequireMember)).Get("/resources/members", s.MemberResources)

		api.Route("/public", func(pub chi.Router) {
			pub.Get("/home", s.Home)
			pub.Get("/events", s.PublicEvents)
			pub.Get("/posts", s.PublicPosts)
			pub.Get("/posts/categories", s.PostCategories)
			pub.Get("/resources", s.PublicResources)
			pub.Get("/help/contacts", s.HelpContacts)
			pub.Post("/help/messages", s.SubmitHelpMessage)
			pub.Post("/visits", s.TrackVisit)
		})
	})

	r.Get("/ws/admin/dashboard", s.DashboardSocket)
	return r
}
