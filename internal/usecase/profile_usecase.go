package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"
	"go-medlink-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	guard       domain.StoreGuard
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, guard domain.StoreGuard, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		guard:       guard,
		validate:    validate,
	}
}

// GetProfile returns the stored profile, or a synthesized placeholder when
// the record is missing or the store is unreachable. The placeholder keeps
// the requested ID and is never persisted.
func (u *profileUsecase) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	if id == "" {
		return nil, apperror.BadRequest("Profile ID is required")
	}
	if !u.guard.Ready(ctx) {
		return domain.PlaceholderProfile(id), nil
	}

	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || absorb(u.guard, "GetProfile", err) {
			return domain.PlaceholderProfile(id), nil
		}
		return nil, err
	}
	return profile, nil
}

// EnsureProfileExists looks the profile up and inserts a minimal record
// seeded from email/name if absent. Idempotent: a repeat call observes the
// first call's write and does not overwrite it.
func (u *profileUsecase) EnsureProfileExists(ctx context.Context, id, email, fullName string) (*domain.Profile, error) {
	if id == "" {
		return nil, apperror.BadRequest("Profile ID is required")
	}
	if !u.guard.Ready(ctx) {
		return domain.PlaceholderProfile(id), nil
	}

	if fullName == "" {
		// Seed a display name from the email local part
		if at := strings.Index(email, "@"); at > 0 {
			fullName = email[:at]
		} else {
			fullName = "Healthcare Professional"
		}
	}

	profile, err := u.profileRepo.EnsureExists(ctx, id, email, fullName)
	if err != nil {
		if absorb(u.guard, "EnsureProfileExists", err) {
			return domain.PlaceholderProfile(id), nil
		}
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	if err := u.validate.Struct(profileUpdateRules{
		FullName: profile.FullName,
		Headline: deref(profile.Headline),
		Bio:      deref(profile.Bio),
		Website:  deref(profile.Website),
		Phone:    deref(profile.Phone),
	}); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if profile.ProfileType == "" {
		profile.ProfileType = domain.ProfileTypeIndividual
	}
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	profile.UpdatedAt = time.Now()
	err := u.profileRepo.Update(ctx, profile)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Profile not found")
	}
	return err
}

// RecordProfileView writes a view log row. Self-views are excluded: when the
// viewer is the profile owner, nothing is written and no error is returned.
// The profile_views counter is not incremented here.
func (u *profileUsecase) RecordProfileView(ctx context.Context, viewerID, profileID string) error {
	if viewerID == "" || profileID == "" || viewerID == profileID {
		return nil
	}
	if !u.guard.Ready(ctx) {
		return nil
	}

	err := u.profileRepo.RecordView(ctx, viewerID, profileID)
	if absorb(u.guard, "RecordProfileView", err) {
		return nil
	}
	return err
}

// GetSuggestedConnections returns candidate profiles excluding the
// requester. No ranking: order is store-determined.
func (u *profileUsecase) GetSuggestedConnections(ctx context.Context, userID string, limit int) ([]domain.Profile, error) {
	if limit < 1 {
		limit = 5
	}
	if !u.guard.Ready(ctx) {
		return []domain.Profile{}, nil
	}

	profiles, err := u.profileRepo.FetchSuggested(ctx, userID, limit)
	if err != nil {
		if absorb(u.guard, "GetSuggestedConnections", err) {
			return []domain.Profile{}, nil
		}
		return nil, err
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles, nil
}

type profileUpdateRules struct {
	FullName string `validate:"required,min=2,max=100,valid_name,no_emoji"`
	Headline string `validate:"max=200,no_emoji"`
	Bio      string `validate:"max=2000"`
	Website  string `validate:"omitempty,url"`
	Phone    string `validate:"valid_phone"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
