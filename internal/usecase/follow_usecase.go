package usecase

import (
	"context"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"
)

type followUsecase struct {
	followRepo domain.FollowRepository
	guard      domain.StoreGuard
}

func NewFollowUsecase(followRepo domain.FollowRepository, guard domain.StoreGuard) domain.FollowUsecase {
	return &followUsecase{
		followRepo: followRepo,
		guard:      guard,
	}
}

func (u *followUsecase) FollowUser(ctx context.Context, followerID, followingID, followerType, followingType string) error {
	if followerID == "" || followingID == "" {
		return apperror.BadRequest("Both parties are required")
	}
	if followerID == followingID {
		return apperror.BadRequest("Cannot follow yourself")
	}
	if followerType == "" {
		followerType = domain.ProfileTypeIndividual
	}
	if followingType == "" {
		followingType = domain.ProfileTypeIndividual
	}
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	return u.followRepo.Create(ctx, &domain.Follow{
		FollowerID:    followerID,
		FollowingID:   followingID,
		FollowerType:  followerType,
		FollowingType: followingType,
		CreatedAt:     time.Now(),
	})
}

func (u *followUsecase) UnfollowUser(ctx context.Context, followerID, followingID string) error {
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}
	return u.followRepo.Delete(ctx, followerID, followingID)
}

// IsFollowing checks row existence; there is no status enum on follows.
func (u *followUsecase) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	if followerID == "" || followingID == "" {
		return false, nil
	}
	if !u.guard.Ready(ctx) {
		return false, nil
	}

	following, err := u.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		if absorb(u.guard, "IsFollowing", err) {
			return false, nil
		}
		return false, err
	}
	return following, nil
}

func (u *followUsecase) GetFollowerCount(ctx context.Context, profileID string) (int64, error) {
	if !u.guard.Ready(ctx) {
		return 0, nil
	}

	count, err := u.followRepo.CountFollowers(ctx, profileID)
	if err != nil {
		if absorb(u.guard, "GetFollowerCount", err) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

// GetSuggestedInstitutions excludes the requester and targets they already
// follow. No scoring: order is store-determined.
func (u *followUsecase) GetSuggestedInstitutions(ctx context.Context, userID string, limit int) ([]domain.Profile, error) {
	if limit < 1 {
		limit = 5
	}
	if !u.guard.Ready(ctx) {
		return []domain.Profile{}, nil
	}

	profiles, err := u.followRepo.FetchSuggestedInstitutions(ctx, userID, limit)
	if err != nil {
		if absorb(u.guard, "GetSuggestedInstitutions", err) {
			return []domain.Profile{}, nil
		}
		return nil, err
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles, nil
}
