package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/store/mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHelpSubmitStoresAnonymousMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := mocks.NewMockMessages(ctrl)
	limiter := &stubLimiter{allow: true}
	events := &recordingPublisher{}
	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	desk := NewHelpDesk(messages, limiter, events, fixedClock{now: now})

	subject := gofakeit.Sentence(4)
	body := gofakeit.Paragraph(1, 3, 10, " ")
	messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *models.AnonymousMessage) error {
		assert.Equal(t, subject, msg.Subject)
		assert.Equal(t, body, msg.Message)
		assert.False(t, msg.IsReplied)
		assert.Equal(t, now, msg.CreatedAt)
		return nil
	})

	msg, err := desk.Submit(context.Background(), "10.0.0.7", HelpInput{Subject: " " + subject + " ", Message: body})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, []string{"help:10.0.0.7"}, limiter.keys)
	assert.Equal(t, []string{EventMessageSubmitted}, events.types())
}

func TestHelpSubmitValidation(t *testing.T) {
	desk := NewHelpDesk(mocks.NewMockMessages(gomock.NewController(t)), nil, nil, nil)

	cases := map[string]HelpInput{
		"Subject is required": {Subject: "  ", Message: "hello"},
		"Message is required": {Subject: "hi", Message: ""},
		"Subject is too long": {Subject: strings.Repeat("s", 201), Message: "hello"},
		"Message is too long": {Subject: "hi", Message: strings.Repeat("m", 5001)},
	}
	for want, in := range cases {
		t.Run(want, func(t *testing.T) {
			_, err := desk.Submit(context.Background(), "ip", in)
			assert.Equal(t, ErrBadRequest(want), err)
		})
	}
}

func TestHelpSubmitRateLimited(t *testing.T) {
	desk := NewHelpDesk(mocks.NewMockMessages(gomock.NewController(t)), &stubLimiter{allow: false}, nil, nil)

	_, err := desk.Submit(context.Background(), "ip", HelpInput{Subject: "hi", Message: "hello"})
	assert.Equal(t, ErrRateLimited, err)
}

func TestHelpSubmitLimiterOutageFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := mocks.NewMockMessages(ctrl)
	messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
	desk := NewHelpDesk(messages, &stubLimiter{allow: true, err: errors.New("redis down")}, nil, nil)

	_, err := desk.Submit(context.Background(), "ip", HelpInput{Subject: "hi", Message: "hello"})
	assert.NoError(t, err)
}

func TestHelpSubmitBackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := mocks.NewMockMessages(ctrl)
	messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(errors.New("down"))
	desk := NewHelpDesk(messages, nil, nil, nil)

	_, err := desk.Submit(context.Background(), "", HelpInput{Subject: "hi", Message: "hello"})
	assert.Equal(t, ErrBackendUnavailable, err)
}
