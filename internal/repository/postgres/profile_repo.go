package postgres

import (
	"context"
	"time"

	"go-medlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, email, full_name, headline, bio, location, avatar_url, banner_url, website, phone, specialization, is_premium, profile_views, profile_type, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (*domain.Profile, error) {
	var p domain.Profile
	var specialization []string
	err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &p.Headline, &p.Bio, &p.Location,
		&p.AvatarURL, &p.BannerURL, &p.Website, &p.Phone,
		pq.Array(&specialization), &p.IsPremium, &p.ProfileViews,
		&p.ProfileType, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Specialization = specialization
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (` + profileColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.Email, profile.FullName, profile.Headline, profile.Bio,
		profile.Location, profile.AvatarURL, profile.BannerURL, profile.Website,
		profile.Phone, pq.Array(profile.Specialization), profile.IsPremium,
		profile.ProfileViews, profile.ProfileType, profile.CreatedAt, profile.UpdatedAt,
	)
	return classify(err)
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classify(err)
	}
	return p, nil
}

func (r *profileRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, pq.Array(ids))
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

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET
		full_name = $2,
		headline = $3,
		bio = $4,
		location = $5,
		avatar_url = $6,
		banner_url = $7,
		website = $8,
		phone = $9,
		specialization = $10,
		profile_type = $11,
		updated_at = $12
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.FullName, profile.Headline, profile.Bio, profile.Location,
		profile.AvatarURL, profile.BannerURL, profile.Website, profile.Phone,
		pq.Array(profile.Specialization), profile.ProfileType, profile.UpdatedAt,
	)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureExists inserts a minimal row unless the profile already exists, then
// returns the stored row. ON CONFLICT DO NOTHING keeps the call idempotent:
// a second call observes the first's write and never overwrites it.
func (r *profileRepo) EnsureExists(ctx context.Context, id, email, fullName string) (*domain.Profile, error) {
	now := time.Now()
	insert := `INSERT INTO profiles (id, email, full_name, specialization, profile_type, created_at, updated_at)
               VALUES ($1, $2, $3, $4, $5, $6, $6)
               ON CONFLICT (id) DO NOTHING`
	_, err := r.db.Exec(ctx, insert, id, email, fullName,
		pq.Array([]string{}), domain.ProfileTypeIndividual, now)
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByID(ctx, id)
}

func (r *profileRepo) FetchSuggested(ctx context.Context, excludeID string, limit int) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id != $1 LIMIT $2`
	rows, err := r.db.Query(ctx, query, excludeID, limit)
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

// RecordView writes the view log row. It does not bump the profile_views
// counter; that is maintained outside this layer's write path.
func (r *profileRepo) RecordView(ctx context.Context, viewerID, profileID string) error {
	query := `INSERT INTO profile_views (viewer_id, profile_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, viewerID, profileID, time.Now())
	return classify(err)
}
