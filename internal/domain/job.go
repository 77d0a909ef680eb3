package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	JobApplicationStatusApplied  = "applied"
	JobApplicationStatusReviewed = "reviewed"
	JobApplicationStatusAccepted = "accepted"
	JobApplicationStatusRejected = "rejected"
)

type Job struct {
	ID            int64     `json:"id"`
	InstitutionID string    `json:"institution_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      *string   `json:"location"`
	JobType       *string   `json:"job_type"` // full_time / part_time / locum / residency
	Salary        *string   `json:"salary"`
	Requirements  *string   `json:"requirements"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// JobWithCompany extends Job with the posting institution's details.
type JobWithCompany struct {
	Job
	CompanyName    string  `json:"company_name"`
	CompanyLogoURL *string `json:"company_logo_url"`
	CompanyWebsite *string `json:"company_website"`
}

// JobApplication is a candidate's application to a job.
type JobApplication struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	Status      string    `json:"status"` // applied → reviewed → accepted / rejected
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	FetchWithCompany(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByInstitution(ctx context.Context, institutionID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error

	CreateApplication(ctx context.Context, app *JobApplication) error
	ApplicationExists(ctx context.Context, jobID int64, applicantID string) (bool, error)
	FetchApplicationsByUser(ctx context.Context, applicantID string) ([]JobApplication, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*JobWithCompany, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]JobWithCompany, int64, error)
	ListJobsByInstitution(ctx context.Context, institutionID string) ([]Job, error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	DeleteJob(ctx context.Context, userID string, id int64) error
	ApplyToJob(ctx context.Context, applicantID string, jobID int64, coverLetter, resumeURL string) (*JobApplication, error)
	GetMyApplications(ctx context.Context, applicantID string) ([]JobApplication, error)
}
