package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"clubportal-backend-go/internal/config"
	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/services"
	"clubportal-backend-go/internal/store/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memRegistry struct {
	mu    sync.Mutex
	items map[string]string
}

func (m *memRegistry) Register(_ context.Context, sessionID, userID string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[sessionID] = userID
	return nil
}

func (m *memRegistry) Lookup(_ context.Context, sessionID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.items[sessionID]
	if !ok {
		return "", services.ErrSessionNotFound
	}
	return userID, nil
}

func (m *memRegistry) Revoke(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, sessionID)
	return nil
}

type allowAll struct{}

func (allowAll) Allow(context.Context, string) (bool, error) { return true, nil }

// keyedLimiter admits a fixed number of calls per key.
type keyedLimiter struct {
	mu    sync.Mutex
	limit int
	seen  map[string]int
}

func newKeyedLimiter(limit int) *keyedLimiter {
	return &keyedLimiter{limit: limit, seen: map[string]int{}}
}

func (l *keyedLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen[key]++
	return l.seen[key] <= l.limit, nil
}

type testEnv struct {
	identities *mocks.MockIdentities
	members    *mocks.MockMembers
	messages   *mocks.MockMessages
	content    *mocks.MockContent
	stats      *mocks.MockStats
	registry   *memRegistry
	tokens     services.TokenService
	handler    http.Handler
}

var testNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

type frozenClock struct{}

func (frozenClock) Now() time.Time { return testNow }

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, config.Config{}, allowAll{})
}

func newTestEnvWith(t *testing.T, cfg config.Config, limiter services.RateLimiter) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		identities: mocks.NewMockIdentities(ctrl),
		members:    mocks.NewMockMembers(ctrl),
		messages:   mocks.NewMockMessages(ctrl),
		content:    mocks.NewMockContent(ctrl),
		stats:      mocks.NewMockStats(ctrl),
		registry:   &memRegistry{items: map[string]string{}},
		tokens: services.TokenService{
			Secret:     []byte("http-test"),
			Issuer:     "clubportal-test",
			AccessTTL:  time.Hour,
			RefreshTTL: 2 * time.Hour,
		},
	}
	hub := services.NewDashboardHub()
	server := NewServer(cfg, Deps{
		Sessions:   services.NewSessionStore(env.identities, env.members, env.tokens, env.registry, nil, nil),
		Profiles:   services.NewProfileService(env.members, env.identities),
		Moderation: services.NewModeration(env.members, env.messages, env.stats, hub, nil, nil, frozenClock{}, 5),
		Content:    services.NewContentService(env.content),
		Help:       services.NewHelpDesk(env.messages, limiter, nil, frozenClock{}),
		Dashboard:  services.NewDashboardStats(env.stats, frozenClock{}, ""),
		Hub:        hub,
		Visits:     env.stats,
		Clock:      frozenClock{},
	})
	env.handler = server.Router()
	return env
}

// signIn registers a live session for m and returns its access token. The
// member lookup done by the session middleware is expected once per request.
func (env *testEnv) signIn(t *testing.T, m *models.Member) string {
	sessionID := m.ID + "-session"
	env.registry.items[sessionID] = m.ID
	pair, err := env.tokens.IssuePair(m.ID, m.Email, sessionID, time.Now().UTC())
	require.NoError(t, err)
	env.members.EXPECT().GetMember(gomock.Any(), m.ID).Return(m, nil).AnyTimes()
	return pair.AccessToken
}

func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func testMember(id, role, status string) *models.Member {
	return &models.Member{ID: id, FullName: "Test " + id, Email: id + "@club.test", Role: role, Status: status}
}

func newRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

func serve(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}
