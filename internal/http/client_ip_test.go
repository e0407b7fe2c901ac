package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"clubportal-backend-go/internal/config"
	"clubportal-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHelpLimitIgnoresForwardedHeaderFromUntrustedPeer(t *testing.T) {
	limiter := newKeyedLimiter(1)
	env := newTestEnvWith(t, config.Config{}, limiter)
	env.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	codes := []int{}
	for _, forwarded := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3", "10.9.8.7, 198.51.100.4"} {
		raw, err := json.Marshal(HelpMessageRequest{Subject: "Worried", Message: "About a friend"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/public/help/messages", bytes.NewReader(raw))
		req.RemoteAddr = "203.0.113.50:41000"
		req.Header.Set("X-Forwarded-For", forwarded)
		codes = append(codes, serve(env, req).Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
	assert.Equal(t, map[string]int{"help:203.0.113.50": 4}, limiter.seen)
}

func TestClientIP(t *testing.T) {
	server := NewServer(config.Config{TrustedProxies: []string{"10.0.0.0/8", "192.0.2.1", "not-an-ip"}}, Deps{})
	cases := []struct {
		name      string
		remote    string
		forwarded string
		want      string
	}{
		{name: "untrusted peer", remote: "203.0.113.50:41000", forwarded: "198.51.100.1", want: "203.0.113.50"},
		{name: "trusted peer single hop", remote: "192.0.2.1:443", forwarded: "198.51.100.1", want: "198.51.100.1"},
		{name: "spoofed left hop skipped", remote: "10.0.0.2:443", forwarded: "1.2.3.4, 198.51.100.7, 10.0.0.9", want: "198.51.100.7"},
		{name: "garbage hop falls back to peer", remote: "10.0.0.2:443", forwarded: "198.51.100.7, nonsense", want: "10.0.0.2"},
		{name: "trusted peer without header", remote: "10.0.0.2:443", want: "10.0.0.2"},
		{name: "remote without port", remote: "203.0.113.50", want: "203.0.113.50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			assert.Equal(t, tc.want, server.clientIP(req))
		})
	}
}

func TestTrimStringKeepsRunesWhole(t *testing.T) {
	value := strings.Repeat("a", 9) + "é" + "bbb"
	out := trimString(value, 10)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, strings.Repeat("a", 9), out)

	assert.Equal(t, "héllo", trimString("  héllo  ", 10))
	assert.Equal(t, "日本", trimString("日本語", 7))
}

func TestTrackVisitTruncatesMultibytePath(t *testing.T) {
	env := newTestEnv(t)
	path := "/" + strings.Repeat("ü", 200)
	env.stats.EXPECT().RecordVisit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, visit models.SiteVisit) error {
		require.NotNil(t, visit.Path)
		assert.True(t, utf8.ValidString(*visit.Path))
		assert.LessOrEqual(t, len(*visit.Path), 255)
		return nil
	})

	rec := env.do(t, http.MethodPost, "/api/public/visits", "", VisitRequest{Path: &path})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateProfileRejectsNull(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, testMember("s1", models.RoleStudent, models.StatusActive))

	rec := env.do(t, http.MethodPut, "/api/me/profile", token, map[string]interface{}{"phone": nil})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Field phone must be a string", decode[ErrorResponse](t, rec).Message)
}
