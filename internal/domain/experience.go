package domain

import (
	"context"
	"time"
)

// Experience is a work history entry owned by a profile.
type Experience struct {
	ID             string     `json:"id"`
	ProfileID      string     `json:"profile_id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       *string    `json:"location"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Current        bool       `json:"current"`
	Description    *string    `json:"description"`
	Specialization *string    `json:"specialization"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Education is a study history entry owned by a profile.
type Education struct {
	ID        string     `json:"id"`
	ProfileID string     `json:"profile_id"`
	Degree    string     `json:"degree"`
	School    string     `json:"school"`
	Field     *string    `json:"field"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Current   bool       `json:"current"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ExperienceRepository interface {
	Create(ctx context.Context, exp *Experience) error
	// FetchByProfile returns entries ordered by start_date descending.
	FetchByProfile(ctx context.Context, profileID string) ([]Experience, error)
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id, profileID string) error
}

type EducationRepository interface {
	Create(ctx context.Context, edu *Education) error
	// FetchByProfile returns entries ordered by start_date descending.
	FetchByProfile(ctx context.Context, profileID string) ([]Education, error)
	Update(ctx context.Context, edu *Education) error
	Delete(ctx context.Context, id, profileID string) error
}

// CareerUsecase groups experience and education maintenance.
type CareerUsecase interface {
	AddExperience(ctx context.Context, exp *Experience) (*Experience, error)
	GetExperiences(ctx context.Context, profileID string) ([]Experience, error)
	UpdateExperience(ctx context.Context, exp *Experience) error
	DeleteExperience(ctx context.Context, id, profileID string) error

	AddEducation(ctx context.Context, edu *Education) (*Education, error)
	GetEducation(ctx context.Context, profileID string) ([]Education, error)
	UpdateEducation(ctx context.Context, edu *Education) error
	DeleteEducation(ctx context.Context, id, profileID string) error
}
