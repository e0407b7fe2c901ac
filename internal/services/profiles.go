package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"clubportal-backend-go/internal/models"
	"clubportal-backend-go/internal/store"
)

// editableProfileFields maps request keys to the member-editable columns.
var editableProfileFields = map[string]bool{
	"fullName":    true,
	"phone":       true,
	"department":  true,
	"yearOfStudy": true,
}

// CheckProfileKeys rejects any key outside the member-editable set, so role,
// status and identity-bound fields can never be changed through a profile update.
func CheckProfileKeys(keys []string) error {
	rejected := []string{}
	for _, key := range keys {
		if !editableProfileFields[key] {
			rejected = append(rejected, key)
		}
	}
	if len(rejected) == 0 {
		return nil
	}
	sort.Strings(rejected)
	return ErrBadRequest("Fields cannot be changed: " + strings.Join(rejected, ", "))
}

type ProfileService struct {
	members    store.Members
	identities store.Identities
}

func NewProfileService(members store.Members, identities store.Identities) *ProfileService {
	return &ProfileService{members: members, identities: identities}
}

func (p *ProfileService) Load(ctx context.Context, id string) (*models.Member, error) {
	member, err := p.members.GetMember(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound("Profile not found")
	}
	if err != nil {
		log.Printf("profile load %s: %v", id, err)
		return nil, ErrBackendUnavailable
	}
	return member, nil
}

func (p *ProfileService) Update(ctx context.Context, id string, fields models.ProfileFields) (*models.Member, error) {
	fields.FullName = trimmed(fields.FullName)
	fields.Phone = trimmed(fields.Phone)
	fields.Department = trimmed(fields.Department)
	fields.YearOfStudy = trimmed(fields.YearOfStudy)
	if fields.FullName != nil && *fields.FullName == "" {
		return nil, ErrBadRequest("Full name is required")
	}
	if err := p.members.UpdateMemberProfile(ctx, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound("Profile not found")
		}
		log.Printf("profile update %s: %v", id, err)
		return nil, ErrBackendUnavailable
	}
	if fields.FullName != nil {
		if err := p.identities.UpdateDisplayName(ctx, id, *fields.FullName); err != nil {
			log.Printf("display name %s: %v", id, err)
		}
	}
	return p.Load(ctx, id)
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}
