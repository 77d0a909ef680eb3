package usecase

import (
	"context"
	"errors"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/google/uuid"
)

type careerUsecase struct {
	experienceRepo domain.ExperienceRepository
	educationRepo  domain.EducationRepository
	guard          domain.StoreGuard
}

func NewCareerUsecase(experienceRepo domain.ExperienceRepository, educationRepo domain.EducationRepository, guard domain.StoreGuard) domain.CareerUsecase {
	return &careerUsecase{
		experienceRepo: experienceRepo,
		educationRepo:  educationRepo,
		guard:          guard,
	}
}

func (u *careerUsecase) AddExperience(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	if exp.ProfileID == "" {
		return nil, apperror.BadRequest("Profile is required")
	}
	if exp.Title == "" || exp.Company == "" {
		return nil, apperror.BadRequest("Title and company are required")
	}
	if err := validateDates(exp.StartDate, exp.EndDate, exp.Current); err != nil {
		return nil, err
	}
	if !u.guard.Ready(ctx) {
		return nil, apperror.Unavailable(nil)
	}

	now := time.Now()
	exp.ID = uuid.NewString()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	if err := u.experienceRepo.Create(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *careerUsecase) GetExperiences(ctx context.Context, profileID string) ([]domain.Experience, error) {
	if !u.guard.Ready(ctx) {
		return []domain.Experience{}, nil
	}

	exps, err := u.experienceRepo.FetchByProfile(ctx, profileID)
	if err != nil {
		if absorb(u.guard, "GetExperiences", err) {
			return []domain.Experience{}, nil
		}
		return nil, err
	}
	if exps == nil {
		exps = []domain.Experience{}
	}
	return exps, nil
}

func (u *careerUsecase) UpdateExperience(ctx context.Context, exp *domain.Experience) error {
	if exp.Title == "" || exp.Company == "" {
		return apperror.BadRequest("Title and company are required")
	}
	if err := validateDates(exp.StartDate, exp.EndDate, exp.Current); err != nil {
		return err
	}
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	exp.UpdatedAt = time.Now()
	err := u.experienceRepo.Update(ctx, exp)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Experience not found")
	}
	return err
}

func (u *careerUsecase) DeleteExperience(ctx context.Context, id, profileID string) error {
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}
	err := u.experienceRepo.Delete(ctx, id, profileID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Experience not found")
	}
	return err
}

func (u *careerUsecase) AddEducation(ctx context.Context, edu *domain.Education) (*domain.Education, error) {
	if edu.ProfileID == "" {
		return nil, apperror.BadRequest("Profile is required")
	}
	if edu.Degree == "" || edu.School == "" {
		return nil, apperror.BadRequest("Degree and school are required")
	}
	if err := validateDates(edu.StartDate, edu.EndDate, edu.Current); err != nil {
		return nil, err
	}
	if !u.guard.Ready(ctx) {
		return nil, apperror.Unavailable(nil)
	}

	now := time.Now()
	edu.ID = uuid.NewString()
	edu.CreatedAt = now
	edu.UpdatedAt = now

	if err := u.educationRepo.Create(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (u *careerUsecase) GetEducation(ctx context.Context, profileID string) ([]domain.Education, error) {
	if !u.guard.Ready(ctx) {
		return []domain.Education{}, nil
	}

	edus, err := u.educationRepo.FetchByProfile(ctx, profileID)
	if err != nil {
		if absorb(u.guard, "GetEducation", err) {
			return []domain.Education{}, nil
		}
		return nil, err
	}
	if edus == nil {
		edus = []domain.Education{}
	}
	return edus, nil
}

func (u *careerUsecase) UpdateEducation(ctx context.Context, edu *domain.Education) error {
	if edu.Degree == "" || edu.School == "" {
		return apperror.BadRequest("Degree and school are required")
	}
	if err := validateDates(edu.StartDate, edu.EndDate, edu.Current); err != nil {
		return err
	}
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	edu.UpdatedAt = time.Now()
	err := u.educationRepo.Update(ctx, edu)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Education not found")
	}
	return err
}

func (u *careerUsecase) DeleteEducation(ctx context.Context, id, profileID string) error {
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}
	err := u.educationRepo.Delete(ctx, id, profileID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Education not found")
	}
	return err
}

func validateDates(start time.Time, end *time.Time, current bool) error {
	if start.IsZero() {
		return apperror.BadRequest("Start date is required")
	}
	if current && end != nil {
		return apperror.BadRequest("Current entries cannot have an end date")
	}
	if end != nil && end.Before(start) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	return nil
}
