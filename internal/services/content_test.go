package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/store"
	"clubportal-backend-go/internal/store/mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var contentNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func event(id string, date time.Time) models.Event {
	return models.Event{ID: id, Title: gofakeit.Sentence(3), Date: date, Location: "Main Hall", CreatedAt: date.Add(-48 * time.Hour)}
}

func TestListEventsUpcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContent(ctrl)
	svc := NewContentService(content)

	returned := []models.Event{
		event("now", contentNow),
		event("soon", contentNow.Add(time.Hour)),
		event("stale", contentNow.Add(-time.Minute)),
	}
	content.EXPECT().ListEventsByDate(gomock.Any(), store.EventQuery{Upcoming: true, Now: contentNow}).Return(returned, nil)

	list, err := svc.ListEvents(context.Background(), "", contentNow)
	require.NoError(t, err)
	assert.Equal(t, ModeUpcoming, list.Mode)
	assert.False(t, list.Degraded)
	ids := []string{}
	for _, ev := range list.Items {
		ids = append(ids, ev.ID)
	}
	assert.Equal(t, []string{"now", "soon"}, ids)
}

func TestListEventsPast(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContent(ctrl)
	svc := NewContentService(content)

	content.EXPECT().ListEventsByDate(gomock.Any(), store.EventQuery{Upcoming: false, Now: contentNow}).Return([]models.Event{
		event("yesterday", contentNow.Add(-24*time.Hour)),
		event("exact", contentNow),
	}, nil)

	list, err := svc.ListEvents(context.Background(), ModePast, contentNow)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "yesterday", list.Items[0].ID)
}

func TestListEventsFallsBackWhenQueryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContent(ctrl)
	svc := NewContentService(content)

	content.EXPECT().ListEventsByDate(gomock.Any(), gomock.Any()).Return(nil, errors.New("missing index"))
	content.EXPECT().ListRecentEvents(gomock.Any(), 0).Return([]models.Event{
		event("past", contentNow.Add(-time.Hour)),
		event("future", contentNow.Add(72*time.Hour)),
	}, nil)

	list, err := svc.ListEvents(context.Background(), ModeUpcoming, contentNow)
	require.NoError(t, err)
	assert.True(t, list.Degraded)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "future", list.Items[0].ID)
}

func TestListEventsEmptyWhenFallbackFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContent(ctrl)
	svc := NewContentService(content)

	content.EXPECT().ListEventsByDate(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))
	content.EXPECT().ListRecentEvents(gomock.Any(), 0).Return(nil, errors.New("still down"))

	list, err := svc.ListEvents(context.Background(), ModePast, contentNow)
	require.NoError(t, err)
	assert.True(t, list.Degraded)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
}

func TestListEventsUnknownMode(t *testing.T) {
	svc := NewContentService(mocks.NewMockContent(gomock.NewController(t)))
	_, err := svc.ListEvents(context.Background(), "someday", contentNow)
	assert.Equal(t, ErrBadRequest("Unknown event mode"), err)
}

func TestNormalizeCategory(t *testing.T) {
	for _, in := range []string{"", "all", "ALL", "  all "} {
		got, err := NormalizeCategory(in)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	}
	got, err := NormalizeCategory(" Health ")
	require.NoError(t, err)
	assert.Equal(t, "Health", got)

	_, err = NormalizeCategory("Sports")
	assert.Equal(t, ErrBadRequest("Unknown category"), err)
}

func TestListPostsAllIsUnionOfCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContent(ctrl)
	svc := NewContentService(content)

	all := []models.Post{}
	byCategory := map[string][]models.Post{}
	for i, category := range PostCategories {
		post := models.Post{
			ID:        gofakeit.UUID(),
			Title:     gofakeit.Sentence(4),
			Content:   gofakeit.Paragraph(1, 2, 8, " "),
			Category:  category,
			CreatedAt: contentNow.Add(-time.Duration(i) * time.Hour),
		}
		all = append(all, post)
		byCategory[category] = []models.Post{post}
	}
	content.EXPECT().ListPosts(gomock.Any(), "", 0).Return(all, nil)
	for category, posts := range byCategory {
		content.EXPECT().ListPosts(gomock.Any(), category, 0).Return(posts, nil)
	}

	everything, err := svc.ListPosts(context.Background(), CategoryAll)
	require.NoError(t, err)
	union := 0
	for _, category := range PostCategories {
		views, err := svc.ListPosts(context.Background(), category)
		require.NoError(t, err)
		for _, v := range views {
			assert.Equal(t, category, v.Category)
		}
		union += len(views)
	}
	assert.Len(t, everything, union)
}

func TestListPostsBackendFailureIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContent(ctrl)
	content.EXPECT().ListPosts(gomock.Any(), "News", 0).Return(nil, errors.New("down"))

	views, err := NewContentService(content).ListPosts(context.Background(), "News")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestPostViewRendering(t *testing.T) {
	views := postViews([]models.Post{{
		ID:      "p1",
		Title:   "Staying safe",
		Content: "**Bold** tip <script>alert(1)</script>",
	}})
	require.Len(t, views, 1)
	assert.Contains(t, views[0].HTML, "<strong>Bold</strong>")
	assert.NotContains(t, views[0].HTML, "<script>")
	assert.Equal(t, "**Bold** tip <script>alert(1)</script>", views[0].Excerpt)
}

func TestExcerpt(t *testing.T) {
	short := "A short note."
	assert.Equal(t, short, Excerpt(short))

	long := strings.Repeat("ab", 100)
	got := Excerpt(long)
	assert.Equal(t, long[:150]+"...", got)

	runes := strings.Repeat("ሀ", 151)
	assert.Equal(t, strings.Repeat("ሀ", 150)+"...", Excerpt(runes))
}

func TestListResources(t *testing.T) {
	stored := []models.Resource{{ID: "r1", Title: "Peer Educator Manual"}}

	t.Run("anonymous sees notice", func(t *testing.T) {
		svc := NewContentService(mocks.NewMockContent(gomock.NewController(t)))
		list := svc.ListResources(context.Background(), nil)
		assert.Equal(t, NoticeSignIn, list.Notice)
		assert.Len(t, list.Public, 4)
		assert.Len(t, list.External, 4)
		assert.Empty(t, list.Members)
	})

	t.Run("pending member sees pending notice", func(t *testing.T) {
		svc := NewContentService(mocks.NewMockContent(gomock.NewController(t)))
		session := &Session{UserID: "u", Profile: member("u", models.RoleStudent, models.StatusPending), Settled: true}
		list := svc.ListResources(context.Background(), session)
		assert.Equal(t, NoticePending, list.Notice)
		assert.Empty(t, list.Members)
	})

	t.Run("active member sees stored resources", func(t *testing.T) {
		content := mocks.NewMockContent(gomock.NewController(t))
		content.EXPECT().ListResources(gomock.Any()).Return(stored, nil)
		session := &Session{UserID: "u", Profile: member("u", models.RoleStudent, models.StatusActive), Settled: true}

		list := NewContentService(content).ListResources(context.Background(), session)
		assert.Empty(t, list.Notice)
		assert.Equal(t, stored, list.Members)
	})
}

func TestHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContent(ctrl)
	events := []models.Event{event("e1", contentNow)}
	content.EXPECT().ListRecentEvents(gomock.Any(), 3).Return(events, nil)
	content.EXPECT().ListPosts(gomock.Any(), "", 3).Return(nil, errors.New("down"))

	home := NewContentService(content).Home(context.Background())
	assert.Equal(t, events, home.Events)
	assert.Empty(t, home.Posts)
}

func TestEmergencyContactsIsCopy(t *testing.T) {
	contacts := EmergencyContacts()
	require.NotEmpty(t, contacts)
	contacts[0].Phone = "000"
	assert.NotEqual(t, "000", EmergencyContacts()[0].Phone)
}
