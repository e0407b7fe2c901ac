package services

import (
	"context"
	"log"
	"strings"
	"time"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/store"
)

const (
	ModeUpcoming = "upcoming"
	ModePast     = "past"

	CategoryAll = "all"

	homeItems = 3
)

var PostCategories = []string{"Drug Awareness", "Health", "News", "Prevention", "Recovery"}

const (
	NoticeSignIn  = "Please log in to access premium resources and downloads."
	NoticePending = "Your account is pending approval. Premium resources will be available once approved."
)

type EventList struct {
	Mode     string         `json:"mode"`
	Items    []models.Event `json:"items"`
	Degraded bool           `json:"degraded"`
}

type PostView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Excerpt   string    `json:"excerpt"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"createdAt"`
}

type ResourceList struct {
	Public   []StaticResource  `json:"public"`
	External []ExternalLink    `json:"external"`
	Members  []models.Resource `json:"members"`
	Notice   string            `json:"notice,omitempty"`
}

type HomeView struct {
	Events []models.Event `json:"events"`
	Posts  []PostView     `json:"posts"`
}

type ContentService struct {
	content store.Content
}

func NewContentService(content store.Content) *ContentService {
	return &ContentService{content: content}
}

func ValidEventMode(mode string) bool {
	return mode == ModeUpcoming || mode == ModePast
}

// ListEvents lists events on one side of now. When the ordered query fails it
// falls back to creation order and reports the list as degraded; the date
// split still holds either way.
func (c *ContentService) ListEvents(ctx context.Context, mode string, now time.Time) (EventList, error) {
	if mode == "" {
		mode = ModeUpcoming
	}
	if !ValidEventMode(mode) {
		return EventList{}, ErrBadRequest("Unknown event mode")
	}
	upcoming := mode == ModeUpcoming
	list := EventList{Mode: mode, Items: []models.Event{}}
	events, err := c.content.ListEventsByDate(ctx, store.EventQuery{Upcoming: upcoming, Now: now})
	if err != nil {
		log.Printf("events %s query failed, falling back: %v", mode, err)
		list.Degraded = true
		events, err = c.content.ListRecentEvents(ctx, 0)
		if err != nil {
			log.Printf("events fallback failed: %v", err)
			return list, nil
		}
	}
	for _, ev := range events {
		if ev.Date.Before(now) != upcoming {
			list.Items = append(list.Items, ev)
		}
	}
	return list, nil
}

// NormalizeCategory returns "" for the unfiltered listing.
func NormalizeCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return "", nil
	}
	for _, known := range PostCategories {
		if category == known {
			return known, nil
		}
	}
	return "", ErrBadRequest("Unknown category")
}

func (c *ContentService) ListPosts(ctx context.Context, category string) ([]PostView, error) {
	category, err := NormalizeCategory(category)
	if err != nil {
		return nil, err
	}
	posts, err := c.content.ListPosts(ctx, category, 0)
	if err != nil {
		log.Printf("posts %q: %v", category, err)
		return []PostView{}, nil
	}
	return postViews(posts), nil
}

func postViews(posts []models.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, PostView{
			ID:        p.ID,
			Title:     p.Title,
			Category:  p.Category,
			Excerpt:   Excerpt(p.Content),
			HTML:      renderMarkdown(p.Content),
			CreatedAt: p.CreatedAt,
		})
	}
	return views
}

// ListResources always carries the public catalogue. Stored resources are
// only included for an active member.
func (c *ContentService) ListResources(ctx context.Context, session *Session) ResourceList {
	list := ResourceList{
		Public:   append([]StaticResource(nil), publicResources...),
		External: append([]ExternalLink(nil), externalLinks...),
		Members:  []models.Resource{},
	}
	switch {
	case !session.Authenticated():
		list.Notice = NoticeSignIn
		return list
	case !session.Profile.IsActive():
		list.Notice = NoticePending
		return list
	}
	members, err := c.MemberResources(ctx)
	if err == nil {
		list.Members = members
	}
	return list
}

func (c *ContentService) MemberResources(ctx context.Context) ([]models.Resource, error) {
	resources, err := c.content.ListResources(ctx)
	if err != nil {
		log.Printf("resources: %v", err)
		return nil, ErrBackendUnavailable
	}
	return resources, nil
}

func (c *ContentService) Home(ctx context.Context) HomeView {
	view := HomeView{Events: []models.Event{}, Posts: []PostView{}}
	if events, err := c.content.ListRecentEvents(ctx, homeItems); err != nil {
		log.Printf("home events: %v", err)
	} else {
		view.Events = events
	}
	if posts, err := c.content.ListPosts(ctx, "", homeItems); err != nil {
		log.Printf("home posts: %v", err)
	} else {
		view.Posts = postViews(posts)
	}
	return view
}
