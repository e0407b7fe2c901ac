package models

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"

	StatusPending  = "pending"
	StatusActive   = "active"
	StatusRejected = "rejected"
)

// ValidStatus reports whether status is one of the membership states.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusActive, StatusRejected:
		return true
	}
	return false
}

type Identity struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	DisplayName  string    `db:"display_name" json:"displayName"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Member is the profile record tied to exactly one identity.
type Member struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	UniversityID string    `db:"university_id" json:"universityId"`
	College      string    `db:"college" json:"college"`
	Department   string    `db:"department" json:"department"`
	YearOfStudy  string    `db:"year_of_study" json:"yearOfStudy"`
	Role         string    `db:"role" json:"role"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

func (m *Member) IsActive() bool {
	return m != nil && m.Status == StatusActive
}

func (m *Member) IsAdmin() bool {
	return m != nil && m.Role == RoleAdmin
}

// ProfileFields are the only member fields a member may change.
type ProfileFields struct {
	FullName    *string
	Phone       *string
	Department  *string
	YearOfStudy *string
}

type AnonymousMessage struct {
	ID        string    `db:"id" json:"id"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	IsReplied bool      `db:"is_replied" json:"isReplied"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Event struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Date        time.Time `db:"date" json:"date"`
	Location    string    `db:"location" json:"location"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type Post struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Resource struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	FileName    *string   `db:"file_name" json:"fileName,omitempty"`
	URL         *string   `db:"url" json:"url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type SiteVisit struct {
	ID        string    `db:"id" json:"id"`
	IPAddress *string   `db:"ip_address" json:"ipAddress"`
	UserAgent *string   `db:"user_agent" json:"userAgent"`
	Path      *string   `db:"path" json:"path"`
	Referrer  *string   `db:"referrer" json:"referrer"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type DashboardCounts struct {
	TotalUsers        int `db:"total_users" json:"totalUsers"`
	PendingUsers      int `db:"pending_users" json:"pendingUsers"`
	TotalEvents       int `db:"total_events" json:"totalEvents"`
	TotalPosts        int `db:"total_posts" json:"totalPosts"`
	AnonymousMessages int `db:"anonymous_messages" json:"anonymousMessages"`
	UnreadMessages    int `db:"unread_messages" json:"unreadMessages"`
	TotalVisits       int `db:"total_visits" json:"totalVisits"`
}

type DashboardSample struct {
	DashboardCounts
	CapturedAt        time.Time `db:"captured_at" json:"capturedAt"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes" json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes" json:"systemMemoryUsedBytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes" json:"diskTotalBytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes" json:"diskUsedBytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load" json:"processCpuLoad"`
	SystemCpuLoad     float64   `db:"system_cpu_load" json:"systemCpuLoad"`
}
