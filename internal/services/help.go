package services

import (
	"context"
	"log"
	"strings"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type HelpInput struct {
	Subject string `validate:"required,max=200"`
	Message string `validate:"required,max=5000"`
}

// HelpDesk stores anonymous help requests. Nothing identifying the sender
// is written with the message.
type HelpDesk struct {
	messages store.Messages
	limiter  RateLimiter
	events   Publisher
	clock    Clock
	validate *validator.Validate
}

func NewHelpDesk(messages store.Messages, limiter RateLimiter, events Publisher, clock Clock) *HelpDesk {
	if events == nil {
		events = NopPublisher{}
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &HelpDesk{
		messages: messages,
		limiter:  limiter,
		events:   events,
		clock:    clock,
		validate: validator.New(),
	}
}

func (h *HelpDesk) Submit(ctx context.Context, clientKey string, in HelpInput) (*models.AnonymousMessage, error) {
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	if err := h.validate.Struct(in); err != nil {
		return nil, ErrBadRequest(validationMessage(err))
	}
	if h.limiter != nil && clientKey != "" {
		allowed, err := h.limiter.Allow(ctx, "help:"+clientKey)
		if err != nil {
			log.Printf("help rate limit: %v", err)
		}
		if !allowed {
			return nil, ErrRateLimited
		}
	}
	msg := &models.AnonymousMessage{
		ID:        uuid.NewString(),
		Subject:   in.Subject,
		Message:   in.Message,
		IsReplied: false,
		CreatedAt: h.clock.Now(),
	}
	if err := h.messages.CreateMessage(ctx, msg); err != nil {
		log.Printf("help message: %v", err)
		return nil, ErrBackendUnavailable
	}
	publish(ctx, h.events, EventMessageSubmitted, msg.ID, msg.CreatedAt)
	return msg, nil
}
