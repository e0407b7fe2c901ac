package services

import (
	"context"
	"errors"
	"log"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/store"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 50
)

// ClampLimit applies the dashboard page bounds to a requested limit.
func ClampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

type TransitionResult struct {
	Changed bool                   `json:"changed"`
	Member  *models.Member         `json:"member,omitempty"`
	Stats   models.DashboardCounts `json:"stats"`
}

type Moderation struct {
	members  store.Members
	messages store.Messages
	stats    store.Stats
	hub      *DashboardHub
	events   Publisher
	notifier Notifier
	clock    Clock
	pageSize int
}

func NewModeration(members store.Members, messages store.Messages, stats store.Stats, hub *DashboardHub, events Publisher, notifier Notifier, clock Clock, pageSize int) *Moderation {
	if events == nil {
		events = NopPublisher{}
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if clock == nil {
		clock = RealClock{}
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Moderation{
		members:  members,
		messages: messages,
		stats:    stats,
		hub:      hub,
		events:   events,
		notifier: notifier,
		clock:    clock,
		pageSize: pageSize,
	}
}

// ListPending returns pending members, newest first, capped to a page.
func (m *Moderation) ListPending(ctx context.Context, limit int) ([]models.Member, error) {
	members, err := m.members.ListMembersByStatus(ctx, models.StatusPending, ClampLimit(limit, m.pageSize))
	if err != nil {
		log.Printf("list pending: %v", err)
		return nil, ErrBackendUnavailable
	}
	return members, nil
}

func (m *Moderation) Approve(ctx context.Context, id string) (TransitionResult, error) {
	return m.transition(ctx, id, models.StatusActive)
}

func (m *Moderation) Reject(ctx context.Context, id string) (TransitionResult, error) {
	return m.transition(ctx, id, models.StatusRejected)
}

func (m *Moderation) transition(ctx context.Context, id, status string) (TransitionResult, error) {
	changed, err := m.members.SetMemberStatus(ctx, id, status)
	if errors.Is(err, store.ErrNotFound) {
		return TransitionResult{}, ErrNotFound("Member not found")
	}
	if err != nil {
		log.Printf("set status %s -> %s: %v", id, status, err)
		return TransitionResult{}, ErrBackendUnavailable
	}
	member, err := m.members.GetMember(ctx, id)
	if err != nil {
		log.Printf("reload member %s: %v", id, err)
		member = nil
	}
	if changed {
		now := m.clock.Now()
		if status == models.StatusActive {
			publish(ctx, m.events, EventMemberApproved, id, now)
			if member != nil {
				if err := m.notifier.MemberApproved(ctx, *member); err != nil {
					log.Printf("approval mail %s: %v", id, err)
				}
			}
		} else {
			publish(ctx, m.events, EventMemberRejected, id, now)
		}
	}
	stats, err := m.refreshStats(ctx)
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{Changed: changed, Member: member, Stats: stats}, nil
}

func (m *Moderation) ListUnrepliedMessages(ctx context.Context, limit int) ([]models.AnonymousMessage, error) {
	messages, err := m.messages.ListUnrepliedMessages(ctx, ClampLimit(limit, m.pageSize))
	if err != nil {
		log.Printf("list unreplied: %v", err)
		return nil, ErrBackendUnavailable
	}
	return messages, nil
}

type ReplyResult struct {
	Changed bool                   `json:"changed"`
	Stats   models.DashboardCounts `json:"stats"`
}

func (m *Moderation) MarkReplied(ctx context.Context, id string) (ReplyResult, error) {
	changed, err := m.messages.MarkMessageReplied(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ReplyResult{}, ErrNotFound("Message not found")
	}
	if err != nil {
		log.Printf("mark replied %s: %v", id, err)
		return ReplyResult{}, ErrBackendUnavailable
	}
	if changed {
		publish(ctx, m.events, EventMessageReplied, id, m.clock.Now())
	}
	stats, err := m.refreshStats(ctx)
	if err != nil {
		return ReplyResult{}, err
	}
	return ReplyResult{Changed: changed, Stats: stats}, nil
}

func (m *Moderation) Stats(ctx context.Context) (models.DashboardCounts, error) {
	counts, err := m.stats.Counts(ctx)
	if err != nil {
		log.Printf("dashboard counts: %v", err)
		return models.DashboardCounts{}, ErrBackendUnavailable
	}
	return counts, nil
}

// refreshStats re-reads the counters after a mutation and pushes them to
// connected dashboards.
func (m *Moderation) refreshStats(ctx context.Context) (models.DashboardCounts, error) {
	counts, err := m.Stats(ctx)
	if err != nil {
		return counts, err
	}
	if m.hub != nil {
		m.hub.Broadcast(models.DashboardSample{DashboardCounts: counts, CapturedAt: m.clock.Now()})
	}
	return counts, nil
}

type Dashboard struct {
	Stats          models.DashboardCounts    `json:"stats"`
	PendingMembers []models.Member           `json:"pendingMembers"`
	RecentMessages []models.AnonymousMessage `json:"recentMessages"`
}

func (m *Moderation) Dashboard(ctx context.Context) (Dashboard, error) {
	stats, err := m.Stats(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	pending, err := m.ListPending(ctx, m.pageSize)
	if err != nil {
		return Dashboard{}, err
	}
	messages, err := m.ListUnrepliedMessages(ctx, m.pageSize)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{Stats: stats, PendingMembers: pending, RecentMessages: messages}, nil
}
