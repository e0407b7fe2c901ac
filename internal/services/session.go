package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const minPasswordLength = 6

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// Session is the per-request view of who is signed in. Settled is false
// until the member record lookup has finished.
type Session struct {
	UserID    string
	Email     string
	SessionID string
	Profile   *models.Member
	Settled   bool
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}

type RegisterInput struct {
	Email        string `validate:"required,email,max=254"`
	Password     string `validate:"required"`
	FullName     string `validate:"required,max=120"`
	Phone        string `validate:"max=32"`
	UniversityID string `validate:"max=64"`
	College      string `validate:"max=120"`
	Department   string `validate:"max=120"`
	YearOfStudy  string `validate:"max=16"`
}

type SessionStore struct {
	identities store.Identities
	members    store.Members
	tokens     TokenService
	sessions   SessionRegistry
	events     Publisher
	clock      Clock
	validate   *validator.Validate
}

func NewSessionStore(identities store.Identities, members store.Members, tokens TokenService, sessions SessionRegistry, events Publisher, clock Clock) *SessionStore {
	if events == nil {
		events = NopPublisher{}
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &SessionStore{
		identities: identities,
		members:    members,
		tokens:     tokens,
		sessions:   sessions,
		events:     events,
		clock:      clock,
		validate:   validator.New(),
	}
}

// Register creates the identity and its pending student record atomically
// and signs the new member in.
func (s *SessionStore) Register(ctx context.Context, in RegisterInput) (*models.Member, TokenPair, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	if len(in.Password) < minPasswordLength {
		return nil, TokenPair{}, ErrWeakCredential
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, TokenPair{}, ErrBadRequest(validationMessage(err))
	}
	hash, err := s.tokens.HashPassword(in.Password)
	if err != nil {
		return nil, TokenPair{}, WrapError(err, "hash password")
	}
	now := s.clock.Now()
	identity := &models.Identity{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: hash,
		DisplayName:  in.FullName,
		CreatedAt:    now,
	}
	member := &models.Member{
		ID:           identity.ID,
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        strings.TrimSpace(in.Phone),
		UniversityID: strings.TrimSpace(in.UniversityID),
		College:      strings.TrimSpace(in.College),
		Department:   strings.TrimSpace(in.Department),
		YearOfStudy:  strings.TrimSpace(in.YearOfStudy),
		Role:         models.RoleStudent,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.identities.CreateWithMember(ctx, identity, member); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, TokenPair{}, ErrDuplicateEmail
		}
		log.Printf("register %s: %v", in.Email, err)
		return nil, TokenPair{}, ErrBackendUnavailable
	}
	publish(ctx, s.events, EventMemberRegistered, member.ID, now)

	pair, err := s.startSession(ctx, identity)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return member, pair, nil
}

func (s *SessionStore) SignIn(ctx context.Context, email, password string) (*models.Identity, TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, TokenPair{}, ErrInvalidCredential
	}
	identity, err := s.identities.GetIdentityByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, TokenPair{}, ErrInvalidCredential
	}
	if err != nil {
		log.Printf("sign in %s: %v", email, err)
		return nil, TokenPair{}, ErrBackendUnavailable
	}
	if !s.tokens.VerifyPassword(password, identity.PasswordHash) {
		return nil, TokenPair{}, ErrInvalidCredential
	}
	pair, err := s.startSession(ctx, identity)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return identity, pair, nil
}

func (s *SessionStore) startSession(ctx context.Context, identity *models.Identity) (TokenPair, error) {
	sessionID := uuid.NewString()
	if err := s.sessions.Register(ctx, sessionID, identity.ID, s.tokens.RefreshTTL); err != nil {
		log.Printf("session register %s: %v", identity.ID, err)
		return TokenPair{}, ErrBackendUnavailable
	}
	pair, err := s.tokens.IssuePair(identity.ID, identity.Email, sessionID, s.clock.Now())
	if err != nil {
		return TokenPair{}, WrapError(err, "issue tokens")
	}
	return pair, nil
}

func (s *SessionStore) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		log.Printf("session revoke %s: %v", sessionID, err)
		return ErrBackendUnavailable
	}
	return nil
}

func (s *SessionStore) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.ParseToken(refreshToken, TokenRefresh)
	if err != nil {
		return TokenPair{}, ErrSessionExpired
	}
	if err := s.checkLive(ctx, claims); err != nil {
		return TokenPair{}, err
	}
	identity, err := s.identities.GetIdentity(ctx, claims.Subject)
	if err != nil {
		return TokenPair{}, ErrSessionExpired
	}
	if err := s.sessions.Register(ctx, claims.SessionID, identity.ID, s.tokens.RefreshTTL); err != nil {
		return TokenPair{}, ErrBackendUnavailable
	}
	return s.tokens.IssuePair(identity.ID, identity.Email, claims.SessionID, s.clock.Now())
}

func (s *SessionStore) checkLive(ctx context.Context, claims *Claims) error {
	userID, err := s.sessions.Lookup(ctx, claims.SessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return ErrSessionExpired
	}
	if err != nil {
		log.Printf("session lookup %s: %v", claims.SessionID, err)
		return ErrBackendUnavailable
	}
	if userID != claims.Subject {
		return ErrSessionExpired
	}
	return nil
}

// Resolve turns an access token into a settled session. A member record
// that cannot be loaded leaves Profile nil, which the guard treats as pending.
func (s *SessionStore) Resolve(ctx context.Context, accessToken string) (*Session, error) {
	claims, err := s.tokens.ParseToken(accessToken, TokenAccess)
	if err != nil {
		return nil, ErrSessionExpired
	}
	if err := s.checkLive(ctx, claims); err != nil {
		return nil, err
	}
	session := &Session{UserID: claims.Subject, Email: claims.Email, SessionID: claims.SessionID}
	member, err := s.members.GetMember(ctx, claims.Subject)
	switch {
	case err == nil:
		session.Profile = member
	case errors.Is(err, store.ErrNotFound):
		log.Printf("member record missing for identity %s", claims.Subject)
	default:
		log.Printf("load member %s: %v", claims.Subject, err)
	}
	session.Settled = true
	return session, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0]
		switch field.Tag() {
		case "required":
			return field.Field() + " is required"
		case "email":
			return "Email is invalid"
		case "max":
			return field.Field() + " is too long"
		}
		return field.Field() + " is invalid"
	}
	return "Invalid payload"
}
