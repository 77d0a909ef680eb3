package postgres

import (
	"context"

	"go-medlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func NewFollowRepository(db *pgxpool.Pool) domain.FollowRepository {
	return &followRepo{db: db}
}

func (r *followRepo) Create(ctx context.Context, follow *domain.Follow) error {
	query := `INSERT INTO follows (follower_id, following_id, follower_type, following_type, created_at)
              VALUES ($1, $2, $3, $4, $5)
              ON CONFLICT (follower_id, following_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query,
		follow.FollowerID, follow.FollowingID, follow.FollowerType,
		follow.FollowingType, follow.CreatedAt,
	)
	return classify(err)
}

func (r *followRepo) Delete(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`
	_, err := r.db.Exec(ctx, query, followerID, followingID)
	return classify(err)
}

// Exists is the truth value: the follow relation has no status column.
func (r *followRepo) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`,
		followerID, followingID).Scan(&exists)
	if err != nil {
		return false, classify(err)
	}
	return exists, nil
}

func (r *followRepo) CountFollowers(ctx context.Context, profileID string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM follows WHERE following_id = $1`, profileID).Scan(&total)
	if err != nil {
		return 0, classify(err)
	}
	return total, nil
}

// FetchSuggestedInstitutions returns institution profiles the user does not
// already follow, excluding the user. Order is store-determined.
func (r *followRepo) FetchSuggestedInstitutions(ctx context.Context, userID string, limit int) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles
              WHERE profile_type = $1
                AND id != $2
                AND id NOT IN (SELECT following_id FROM follows WHERE follower_id = $2)
              LIMIT $3`
	rows, err := r.db.Query(ctx, query, domain.ProfileTypeInstitution, userID, limit)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, classify(err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, classify(rows.Err())
}
