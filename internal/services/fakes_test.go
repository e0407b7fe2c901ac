package services

import (
	"context"
	"sync"
	"time"

	"clubportal-backend-go/internal/models"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memSessions struct {
	mu    sync.Mutex
	items map[string]string
	err   error
}

func newMemSessions() *memSessions {
	return &memSessions{items: map[string]string{}}
}

func (m *memSessions) Register(_ context.Context, sessionID, userID string, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[sessionID] = userID
	return nil
}

func (m *memSessions) Lookup(_ context.Context, sessionID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.items[sessionID]
	if !ok {
		return "", ErrSessionNotFound
	}
	return userID, nil
}

func (m *memSessions) Revoke(_ context.Context, sessionID string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, sessionID)
	return nil
}

type recordingPublisher struct {
	events []LifecycleEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event LifecycleEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	out := []string{}
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type recordingNotifier struct {
	approved []string
	err      error
}

func (n *recordingNotifier) MemberApproved(_ context.Context, member models.Member) error {
	n.approved = append(n.approved, member.Email)
	return n.err
}

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

func testTokens() TokenService {
	return TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "clubportal-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func member(id, role, status string) *models.Member {
	return &models.Member{ID: id, FullName: "Abebe Kebede", Email: id + "@club.test", Role: role, Status: status}
}
