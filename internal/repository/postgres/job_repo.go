package postgres

import (
	"context"

	"go-medlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (institution_id, title, description, location, job_type, salary, requirements, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.InstitutionID, job.Title, job.Description, job.Location,
		job.JobType, job.Salary, job.Requirements, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	return classify(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, institution_id, title, description, location, job_type, salary, requirements, created_at, updated_at
              FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.InstitutionID, &job.Title, &job.Description, &job.Location,
		&job.JobType, &job.Salary, &job.Requirements, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, classify(err)
	}
	return &job, nil
}

// GetByIDWithCompany retrieves a job with the posting institution's details.
func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `
		SELECT
			j.id, j.institution_id, j.title, j.description, j.location,
			j.job_type, j.salary, j.requirements, j.created_at, j.updated_at,
			COALESCE(i.name, 'Unknown Institution') as company_name,
			i.logo_url,
			i.website
		FROM jobs j
		LEFT JOIN institutions i ON j.institution_id = i.id
		WHERE j.id = $1`

	var job domain.JobWithCompany
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.InstitutionID, &job.Title, &job.Description, &job.Location,
		&job.JobType, &job.Salary, &job.Requirements, &job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.CompanyLogoURL, &job.CompanyWebsite,
	)
	if err != nil {
		return nil, classify(err)
	}
	return &job, nil
}

func (r *jobRepo) FetchWithCompany(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	query := `
		SELECT
			j.id, j.institution_id, j.title, j.description, j.location,
			j.job_type, j.salary, j.requirements, j.created_at, j.updated_at,
			COALESCE(i.name, 'Unknown Institution') as company_name,
			i.logo_url,
			i.website
		FROM jobs j
		LEFT JOIN institutions i ON j.institution_id = i.id
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, classify(err)
	}
	defer rows.Close()

	var jobs []domain.JobWithCompany
	for rows.Next() {
		var job domain.JobWithCompany
		if err := rows.Scan(
			&job.ID, &job.InstitutionID, &job.Title, &job.Description, &job.Location,
			&job.JobType, &job.Salary, &job.Requirements, &job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.CompanyLogoURL, &job.CompanyWebsite,
		); err != nil {
			return nil, 0, classify(err)
		}
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, classify(err)
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchByInstitution(ctx context.Context, institutionID string) ([]domain.Job, error) {
	query := `SELECT id, institution_id, title, description, location, job_type, salary, requirements, created_at, updated_at
              FROM jobs WHERE institution_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, institutionID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.InstitutionID, &job.Title, &job.Description, &job.Location,
			&job.JobType, &job.Salary, &job.Requirements, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, classify(err)
		}
		jobs = append(jobs, job)
	}
	return jobs, classify(rows.Err())
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		location = $4,
		job_type = $5,
		salary = $6,
		requirements = $7,
		updated_at = $8
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location,
		job.JobType, job.Salary, job.Requirements, job.UpdatedAt,
	)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) CreateApplication(ctx context.Context, app *domain.JobApplication) error {
	query := `INSERT INTO job_applications (job_id, applicant_id, cover_letter, resume_url, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		app.JobID, app.ApplicantID, app.CoverLetter, app.ResumeURL,
		app.Status, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	return classify(err)
}

func (r *jobRepo) ApplicationExists(ctx context.Context, jobID int64, applicantID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID).Scan(&exists)
	if err != nil {
		return false, classify(err)
	}
	return exists, nil
}

func (r *jobRepo) FetchApplicationsByUser(ctx context.Context, applicantID string) ([]domain.JobApplication, error) {
	query := `SELECT id, job_id, applicant_id, cover_letter, resume_url, status, created_at, updated_at
              FROM job_applications WHERE applicant_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter,
			&app.ResumeURL, &app.Status, &app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, classify(err)
		}
		apps = append(apps, app)
	}
	return apps, classify(rows.Err())
}
