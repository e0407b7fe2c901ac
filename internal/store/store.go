// Package store persists the portal's collections in PostgreSQL.
package store

import (
	"context"
	"time"

	"clubportal-backend-go/internal/models"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination=mocks/store.go -package=mocks clubportal-backend-go/internal/store Identities,Members,Messages,Content,Stats

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Identities interface {
	// CreateWithMember writes the identity and its member record in one transaction.
	CreateWithMember(ctx context.Context, identity *models.Identity, member *models.Member) error
	GetIdentity(ctx context.Context, id string) (*models.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error)
	UpdateDisplayName(ctx context.Context, id, name string) error
}

type Members interface {
	GetMember(ctx context.Context, id string) (*models.Member, error)
	UpdateMemberProfile(ctx context.Context, id string, fields models.ProfileFields) error
	ListMembersByStatus(ctx context.Context, status string, limit int) ([]models.Member, error)
	// SetMemberStatus reports whether the stored status changed.
	SetMemberStatus(ctx context.Context, id, status string) (bool, error)
}

type Messages interface {
	CreateMessage(ctx context.Context, msg *models.AnonymousMessage) error
	ListUnrepliedMessages(ctx context.Context, limit int) ([]models.AnonymousMessage, error)
	MarkMessageReplied(ctx context.Context, id string) (bool, error)
}

type EventQuery struct {
	Upcoming bool
	Now      time.Time
	Limit    int
}

type Content interface {
	ListEventsByDate(ctx context.Context, q EventQuery) ([]models.Event, error)
	// ListRecentEvents orders by creation time; limit <= 0 returns every row.
	ListRecentEvents(ctx context.Context, limit int) ([]models.Event, error)
	ListPosts(ctx context.Context, category string, limit int) ([]models.Post, error)
	ListResources(ctx context.Context) ([]models.Resource, error)
}

type Stats interface {
	Counts(ctx context.Context) (models.DashboardCounts, error)
	SaveSample(ctx context.Context, sample models.DashboardSample) error
	LatestSamples(ctx context.Context, limit int) ([]models.DashboardSample, error)
	RecordVisit(ctx context.Context, visit models.SiteVisit) error
}
