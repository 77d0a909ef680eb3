package domain

import (
	"context"
	"time"
)

// Follow is a directed relation with no status field: presence of the row
// is the truth value.
type Follow struct {
	FollowerID    string    `json:"follower_id"`
	FollowingID   string    `json:"following_id"`
	FollowerType  string    `json:"follower_type"`  // profile type of the follower
	FollowingType string    `json:"following_type"` // profile type of the followed
	CreatedAt     time.Time `json:"created_at"`
}

type FollowRepository interface {
	Create(ctx context.Context, follow *Follow) error
	Delete(ctx context.Context, followerID, followingID string) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	CountFollowers(ctx context.Context, profileID string) (int64, error)
	// FetchSuggestedInstitutions returns institution profiles the user does
	// not already follow, excluding the user, capped at limit.
	FetchSuggestedInstitutions(ctx context.Context, userID string, limit int) ([]Profile, error)
}

type FollowUsecase interface {
	FollowUser(ctx context.Context, followerID, followingID, followerType, followingType string) error
	UnfollowUser(ctx context.Context, followerID, followingID string) error
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	GetFollowerCount(ctx context.Context, profileID string) (int64, error)
	GetSuggestedInstitutions(ctx context.Context, userID string, limit int) ([]Profile, error)
}
