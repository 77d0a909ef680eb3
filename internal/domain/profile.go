package domain

import (
	"context"
	"time"
)

// Profile type constants
const (
	ProfileTypeIndividual  = "individual"
	ProfileTypeStudent     = "student"
	ProfileTypeInstitution = "institution"
)

type Profile struct {
	ID             string    `json:"id"` // Supabase UUID
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Headline       *string   `json:"headline"`
	Bio            *string   `json:"bio"`
	Location       *string   `json:"location"`
	AvatarURL      *string   `json:"avatar_url"`
	BannerURL      *string   `json:"banner_url"`
	Website        *string   `json:"website"`
	Phone          *string   `json:"phone"`
	Specialization []string  `json:"specialization"`
	IsPremium      bool      `json:"is_premium"`
	ProfileViews   int64     `json:"profile_views"`
	ProfileType    string    `json:"profile_type"` // individual / student / institution
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PlaceholderProfile synthesizes a non-persisted default profile for a
// missing record or an unreachable store. The requested ID is preserved.
func PlaceholderProfile(id string) *Profile {
	now := time.Now()
	return &Profile{
		ID:             id,
		FullName:       "Healthcare Professional",
		Specialization: []string{},
		ProfileType:    ProfileTypeIndividual,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ProfileView is a record of one profile viewing another. Writing the log row
// does not bump the profile_views counter; that is maintained elsewhere.
type ProfileView struct {
	ViewerID  string    `json:"viewer_id"`
	ProfileID string    `json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]Profile, error)
	Update(ctx context.Context, profile *Profile) error
	// EnsureExists inserts a minimal row unless one already exists, then
	// returns the stored row. Never overwrites an existing record.
	EnsureExists(ctx context.Context, id, email, fullName string) (*Profile, error)
	// FetchSuggested returns candidate profiles excluding the requester,
	// capped at limit. Order is store-determined.
	FetchSuggested(ctx context.Context, excludeID string, limit int) ([]Profile, error)
	RecordView(ctx context.Context, viewerID, profileID string) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, id string) (*Profile, error)
	EnsureProfileExists(ctx context.Context, id, email, fullName string) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error
	RecordProfileView(ctx context.Context, viewerID, profileID string) error
	GetSuggestedConnections(ctx context.Context, userID string, limit int) ([]Profile, error)
}
