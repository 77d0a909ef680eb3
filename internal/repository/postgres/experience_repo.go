package postgres

import (
	"context"

	"go-medlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceColumns = `id, profile_id, title, company, location, start_date, end_date, current, description, specialization, created_at, updated_at`

func (r *experienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	query := `INSERT INTO experiences (` + experienceColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		exp.ID, exp.ProfileID, exp.Title, exp.Company, exp.Location,
		exp.StartDate, exp.EndDate, exp.Current, exp.Description,
		exp.Specialization, exp.CreatedAt, exp.UpdatedAt,
	)
	return classify(err)
}

func (r *experienceRepo) FetchByProfile(ctx context.Context, profileID string) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences
              WHERE profile_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var exps []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(
			&e.ID, &e.ProfileID, &e.Title, &e.Company, &e.Location,
			&e.StartDate, &e.EndDate, &e.Current, &e.Description,
			&e.Specialization, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, classify(err)
		}
		exps = append(exps, e)
	}
	return exps, classify(rows.Err())
}

func (r *experienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	query := `UPDATE experiences SET
		title = $3,
		company = $4,
		location = $5,
		start_date = $6,
		end_date = $7,
		current = $8,
		description = $9,
		specialization = $10,
		updated_at = $11
	WHERE id = $1 AND profile_id = $2`
	result, err := r.db.Exec(ctx, query,
		exp.ID, exp.ProfileID, exp.Title, exp.Company, exp.Location,
		exp.StartDate, exp.EndDate, exp.Current, exp.Description,
		exp.Specialization, exp.UpdatedAt,
	)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id, profileID string) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM experiences WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

const educationColumns = `id, profile_id, degree, school, field, start_date, end_date, current, created_at, updated_at`

func (r *educationRepo) Create(ctx context.Context, edu *domain.Education) error {
	query := `INSERT INTO education (` + educationColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		edu.ID, edu.ProfileID, edu.Degree, edu.School, edu.Field,
		edu.StartDate, edu.EndDate, edu.Current, edu.CreatedAt, edu.UpdatedAt,
	)
	return classify(err)
}

func (r *educationRepo) FetchByProfile(ctx context.Context, profileID string) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education
              WHERE profile_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var edus []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(
			&e.ID, &e.ProfileID, &e.Degree, &e.School, &e.Field,
			&e.StartDate, &e.EndDate, &e.Current, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, classify(err)
		}
		edus = append(edus, e)
	}
	return edus, classify(rows.Err())
}

func (r *educationRepo) Update(ctx context.Context, edu *domain.Education) error {
	query := `UPDATE education SET
		degree = $3,
		school = $4,
		field = $5,
		start_date = $6,
		end_date = $7,
		current = $8,
		updated_at = $9
	WHERE id = $1 AND profile_id = $2`
	result, err := r.db.Exec(ctx, query,
		edu.ID, edu.ProfileID, edu.Degree, edu.School, edu.Field,
		edu.StartDate, edu.EndDate, edu.Current, edu.UpdatedAt,
	)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, id, profileID string) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM education WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
