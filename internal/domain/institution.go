package domain

import (
	"context"
	"time"
)

// Institution is the organization record behind an institution-type profile.
type Institution struct {
	ID            string    `json:"id"`
	ProfileID     string    `json:"profile_id"`
	Name          string    `json:"name"`
	Type          *string   `json:"type"` // hospital / clinic / university / ...
	Location      *string   `json:"location"`
	Website       *string   `json:"website"`
	Description   *string   `json:"description"`
	LogoURL       *string   `json:"logo_url"`
	EmployeeCount *string   `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type InstitutionRepository interface {
	GetByID(ctx context.Context, id string) (*Institution, error)
	GetByProfileID(ctx context.Context, profileID string) (*Institution, error)
	Fetch(ctx context.Context, limit, offset int) ([]Institution, error)
	Upsert(ctx context.Context, inst *Institution) error
}

type InstitutionUsecase interface {
	GetInstitution(ctx context.Context, id string) (*Institution, error)
	GetInstitutionByProfile(ctx context.Context, profileID string) (*Institution, error)
	ListInstitutions(ctx context.Context, page, pageSize int) ([]Institution, error)
	UpsertInstitution(ctx context.Context, inst *Institution) error
}
