package usecase

import (
	"context"
	"errors"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	institutionRepo domain.InstitutionRepository
	guard           domain.StoreGuard
}

func NewJobUsecase(jobRepo domain.JobRepository, institutionRepo domain.InstitutionRepository, guard domain.StoreGuard) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		institutionRepo: institutionRepo,
		guard:           guard,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	// Only a profile with an institution record may post jobs
	inst, err := u.institutionRepo.GetByProfileID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Institution profile not found. Create one before posting jobs.")
		}
		return err
	}
	job.InstitutionID = inst.ID

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	if !u.guard.Ready(ctx) {
		return nil, nil
	}

	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || absorb(u.guard, "GetJobDetails", err) {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if !u.guard.Ready(ctx) {
		return []domain.JobWithCompany{}, 0, nil
	}

	jobs, total, err := u.jobRepo.FetchWithCompany(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		if absorb(u.guard, "ListJobs", err) {
			return []domain.JobWithCompany{}, 0, nil
		}
		return nil, 0, err
	}
	if jobs == nil {
		jobs = []domain.JobWithCompany{}
	}
	return jobs, total, nil
}

func (u *jobUsecase) ListJobsByInstitution(ctx context.Context, institutionID string) ([]domain.Job, error) {
	if !u.guard.Ready(ctx) {
		return []domain.Job{}, nil
	}

	jobs, err := u.jobRepo.FetchByInstitution(ctx, institutionID)
	if err != nil {
		if absorb(u.guard, "ListJobsByInstitution", err) {
			return []domain.Job{}, nil
		}
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	if err := u.authorizeJobOwner(ctx, userID, job.ID); err != nil {
		return err
	}

	job.UpdatedAt = time.Now()
	err := u.jobRepo.Update(ctx, job)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	return err
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	if err := u.authorizeJobOwner(ctx, userID, id); err != nil {
		return err
	}

	err := u.jobRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	return err
}

// authorizeJobOwner verifies the job belongs to the caller's institution.
func (u *jobUsecase) authorizeJobOwner(ctx context.Context, userID string, jobID int64) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	inst, err := u.institutionRepo.GetByProfileID(ctx, userID)
	if err != nil || inst.ID != job.InstitutionID {
		return apperror.Forbidden("You can only manage your own institution's jobs")
	}
	return nil
}

func (u *jobUsecase) ApplyToJob(ctx context.Context, applicantID string, jobID int64, coverLetter, resumeURL string) (*domain.JobApplication, error) {
	if applicantID == "" {
		return nil, apperror.BadRequest("Applicant is required")
	}
	if !u.guard.Ready(ctx) {
		return nil, apperror.Unavailable(nil)
	}

	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	exists, err := u.jobRepo.ApplicationExists(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	now := time.Now()
	app := &domain.JobApplication{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: toPtr(coverLetter),
		ResumeURL:   toPtr(resumeURL),
		Status:      domain.JobApplicationStatusApplied,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.jobRepo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *jobUsecase) GetMyApplications(ctx context.Context, applicantID string) ([]domain.JobApplication, error) {
	if !u.guard.Ready(ctx) {
		return []domain.JobApplication{}, nil
	}

	apps, err := u.jobRepo.FetchApplicationsByUser(ctx, applicantID)
	if err != nil {
		if absorb(u.guard, "GetMyApplications", err) {
			return []domain.JobApplication{}, nil
		}
		return nil, err
	}
	if apps == nil {
		apps = []domain.JobApplication{}
	}
	return apps, nil
}
