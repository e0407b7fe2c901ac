package store

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"clubportal-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Postgres implements every store interface over one connection pool.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return errors.Wrap(err, op)
}

func (p *Postgres) CreateWithMember(ctx context.Context, identity *models.Identity, member *models.Member) error {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "identities.CreateWithMember.Begin")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO identities (id, email, password_hash, display_name, created_at)
VALUES ($1,$2,$3,$4,$5)
`, identity.ID, identity.Email, identity.PasswordHash, identity.DisplayName, identity.CreatedAt); err != nil {
		return translate(err, "identities.CreateWithMember.InsertIdentity")
	}
	if _, err := tx.NamedExecContext(ctx, `
INSERT INTO members (id, full_name, email, phone, university_id, college, department, year_of_study, role, status, created_at, updated_at)
VALUES (:id, :full_name, :email, :phone, :university_id, :college, :department, :year_of_study, :role, :status, :created_at, :updated_at)
`, member); err != nil {
		return translate(err, "identities.CreateWithMember.InsertMember")
	}
	return errors.Wrap(tx.Commit(), "identities.CreateWithMember.Commit")
}

func (p *Postgres) GetIdentity(ctx context.Context, id string) (*models.Identity, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	identity := new(models.Identity)
	err := p.db.GetContext(ctx, identity, `SELECT id, email, password_hash, display_name, created_at FROM identities WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err, "identities.GetIdentity")
	}
	return identity, nil
}

func (p *Postgres) GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error) {
	identity := new(models.Identity)
	err := p.db.GetContext(ctx, identity, `
SELECT id, email, password_hash, display_name, created_at
FROM identities
WHERE lower(email) = $1
`, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, translate(err, "identities.GetIdentityByEmail")
	}
	return identity, nil
}

func (p *Postgres) UpdateDisplayName(ctx context.Context, id, name string) error {
	_, err := p.db.ExecContext(ctx, `UPDATE identities SET display_name = $2 WHERE id = $1`, id, name)
	return translate(err, "identities.UpdateDisplayName")
}

const memberColumns = `id, full_name, email, phone, university_id, college, department, year_of_study, role, status, created_at, updated_at`

func (p *Postgres) GetMember(ctx context.Context, id string) (*models.Member, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	member := new(models.Member)
	if err := p.db.GetContext(ctx, member, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id); err != nil {
		return nil, translate(err, "members.GetMember")
	}
	return member, nil
}

// UpdateMemberProfile only ever touches the member-editable columns.
func (p *Postgres) UpdateMemberProfile(ctx context.Context, id string, fields models.ProfileFields) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	res, err := p.db.ExecContext(ctx, `
UPDATE members
SET full_name = COALESCE($2, full_name),
    phone = COALESCE($3, phone),
    department = COALESCE($4, department),
    year_of_study = COALESCE($5, year_of_study),
    updated_at = $6
WHERE id = $1
`, id, fields.FullName, fields.Phone, fields.Department, fields.YearOfStudy, time.Now().UTC())
	if err != nil {
		return translate(err, "members.UpdateMemberProfile")
	}
	return requireRow(res, "members.UpdateMemberProfile")
}

func (p *Postgres) ListMembersByStatus(ctx context.Context, status string, limit int) ([]models.Member, error) {
	members := []models.Member{}
	err := p.db.SelectContext(ctx, &members, `
SELECT `+memberColumns+`
FROM members
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2
`, status, limit)
	if err != nil {
		return nil, translate(err, "members.ListMembersByStatus")
	}
	return members, nil
}

func (p *Postgres) SetMemberStatus(ctx context.Context, id, status string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, ErrNotFound
	}
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.Wrap(err, "members.SetMemberStatus.Begin")
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	if err := tx.GetContext(ctx, &current, `SELECT status FROM members WHERE id = $1 FOR UPDATE`, id); err != nil {
		return false, translate(err, "members.SetMemberStatus.Select")
	}
	if current == status {
		return false, nil
	}
	if _, err := tx.ExecContext(ctx, `UPDATE members SET status = $2, updated_at = $3 WHERE id = $1`, id, status, time.Now().UTC()); err != nil {
		return false, translate(err, "members.SetMemberStatus.Update")
	}
	if err := tx.Commit(); err != nil {
		return false, errors.Wrap(err, "members.SetMemberStatus.Commit")
	}
	return true, nil
}

func (p *Postgres) CreateMessage(ctx context.Context, msg *models.AnonymousMessage) error {
	_, err := p.db.ExecContext(ctx, `
INSERT INTO anonymous_messages (id, subject, message, is_replied, created_at)
VALUES ($1,$2,$3,$4,$5)
`, msg.ID, msg.Subject, msg.Message, msg.IsReplied, msg.CreatedAt)
	return translate(err, "messages.CreateMessage")
}

func (p *Postgres) ListUnrepliedMessages(ctx context.Context, limit int) ([]models.AnonymousMessage, error) {
	messages := []models.AnonymousMessage{}
	err := p.db.SelectContext(ctx, &messages, `
SELECT id, subject, message, is_replied, created_at
FROM anonymous_messages
WHERE is_replied = FALSE
ORDER BY created_at DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, translate(err, "messages.ListUnrepliedMessages")
	}
	return messages, nil
}

func (p *Postgres) MarkMessageReplied(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, ErrNotFound
	}
	var replied bool
	if err := p.db.GetContext(ctx, &replied, `SELECT is_replied FROM anonymous_messages WHERE id = $1`, id); err != nil {
		return false, translate(err, "messages.MarkMessageReplied.Select")
	}
	if replied {
		return false, nil
	}
	res, err := p.db.ExecContext(ctx, `UPDATE anonymous_messages SET is_replied = TRUE WHERE id = $1 AND is_replied = FALSE`, id)
	if err != nil {
		return false, translate(err, "messages.MarkMessageReplied.Update")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "messages.MarkMessageReplied.RowsAffected")
	}
	return affected > 0, nil
}

const eventColumns = `id, title, description, date, location, image_url, created_at`

func (p *Postgres) ListEventsByDate(ctx context.Context, q EventQuery) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE date >= $1 ORDER BY date ASC`
	if !q.Upcoming {
		query = `SELECT ` + eventColumns + ` FROM events WHERE date < $1 ORDER BY date DESC`
	}
	args := []interface{}{q.Now}
	if q.Limit > 0 {
		query += " LIMIT $2"
		args = append(args, q.Limit)
	}
	events := []models.Event{}
	if err := p.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, translate(err, "content.ListEventsByDate")
	}
	return events, nil
}

func (p *Postgres) ListRecentEvents(ctx context.Context, limit int) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}
	events := []models.Event{}
	if err := p.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, translate(err, "content.ListRecentEvents")
	}
	return events, nil
}

// ListPosts returns every category when category is empty.
func (p *Postgres) ListPosts(ctx context.Context, category string, limit int) ([]models.Post, error) {
	args := []interface{}{}
	query := `SELECT id, title, content, category, created_at FROM posts`
	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC, id"
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	posts := []models.Post{}
	if err := p.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, translate(err, "content.ListPosts")
	}
	return posts, nil
}

func (p *Postgres) ListResources(ctx context.Context) ([]models.Resource, error) {
	resources := []models.Resource{}
	err := p.db.SelectContext(ctx, &resources, `SELECT id, title, description, file_name, url, created_at FROM resources ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err, "content.ListResources")
	}
	return resources, nil
}

func (p *Postgres) Counts(ctx context.Context) (models.DashboardCounts, error) {
	var counts models.DashboardCounts
	err := p.db.GetContext(ctx, &counts, `
SELECT
  (SELECT count(*) FROM members) AS total_users,
  (SELECT count(*) FROM members WHERE status = 'pending') AS pending_users,
  (SELECT count(*) FROM events) AS total_events,
  (SELECT count(*) FROM posts) AS total_posts,
  (SELECT count(*) FROM anonymous_messages) AS anonymous_messages,
  (SELECT count(*) FROM anonymous_messages WHERE is_replied = FALSE) AS unread_messages,
  (SELECT count(*) FROM site_visits) AS total_visits
`)
	if err != nil {
		return models.DashboardCounts{}, translate(err, "stats.Counts")
	}
	return counts, nil
}

func (p *Postgres) SaveSample(ctx context.Context, sample models.DashboardSample) error {
	_, err := p.db.ExecContext(ctx, `
INSERT INTO dashboard_samples (
  id, captured_at, total_users, pending_users, total_events, total_posts, anonymous_messages,
  unread_messages, total_visits, system_memory_total_bytes, system_memory_used_bytes,
  disk_total_bytes, disk_used_bytes, process_cpu_load, system_cpu_load
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
`, uuid.NewString(), sample.CapturedAt, sample.TotalUsers, sample.PendingUsers, sample.TotalEvents, sample.TotalPosts,
		sample.AnonymousMessages, sample.UnreadMessages, sample.TotalVisits, sample.SystemMemoryTotal, sample.SystemMemoryUsed,
		sample.DiskTotalBytes, sample.DiskUsedBytes, sample.ProcessCpuLoad, sample.SystemCpuLoad)
	return translate(err, "stats.SaveSample")
}

// LatestSamples returns the newest samples in chronological order.
func (p *Postgres) LatestSamples(ctx context.Context, limit int) ([]models.DashboardSample, error) {
	rows := []models.DashboardSample{}
	if err := p.db.SelectContext(ctx, &rows, `
SELECT captured_at, total_users, pending_users, total_events, total_posts, anonymous_messages,
       unread_messages, total_visits, system_memory_total_bytes, system_memory_used_bytes,
       disk_total_bytes, disk_used_bytes, process_cpu_load, system_cpu_load
FROM dashboard_samples
ORDER BY captured_at DESC
LIMIT $1
`, limit); err != nil {
		return nil, translate(err, "stats.LatestSamples")
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

func (p *Postgres) RecordVisit(ctx context.Context, visit models.SiteVisit) error {
	_, err := p.db.ExecContext(ctx, `
INSERT INTO site_visits (id, ip_address, user_agent, path, referrer, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
`, visit.ID, visit.IPAddress, visit.UserAgent, visit.Path, visit.Referrer, visit.CreatedAt)
	return translate(err, "stats.RecordVisit")
}

func requireRow(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
