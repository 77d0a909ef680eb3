package usecase

import (
	"context"
	"errors"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/google/uuid"
)

type institutionUsecase struct {
	institutionRepo domain.InstitutionRepository
	guard           domain.StoreGuard
}

func NewInstitutionUsecase(institutionRepo domain.InstitutionRepository, guard domain.StoreGuard) domain.InstitutionUsecase {
	return &institutionUsecase{
		institutionRepo: institutionRepo,
		guard:           guard,
	}
}

// GetInstitution returns nil without error when the record is missing or
// the store is unreachable: absence and degradation look the same here.
func (u *institutionUsecase) GetInstitution(ctx context.Context, id string) (*domain.Institution, error) {
	if !u.guard.Ready(ctx) {
		return nil, nil
	}

	inst, err := u.institutionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || absorb(u.guard, "GetInstitution", err) {
			return nil, nil
		}
		return nil, err
	}
	return inst, nil
}

func (u *institutionUsecase) GetInstitutionByProfile(ctx context.Context, profileID string) (*domain.Institution, error) {
	if !u.guard.Ready(ctx) {
		return nil, nil
	}

	inst, err := u.institutionRepo.GetByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || absorb(u.guard, "GetInstitutionByProfile", err) {
			return nil, nil
		}
		return nil, err
	}
	return inst, nil
}

func (u *institutionUsecase) ListInstitutions(ctx context.Context, page, pageSize int) ([]domain.Institution, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if !u.guard.Ready(ctx) {
		return []domain.Institution{}, nil
	}

	insts, err := u.institutionRepo.Fetch(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		if absorb(u.guard, "ListInstitutions", err) {
			return []domain.Institution{}, nil
		}
		return nil, err
	}
	if insts == nil {
		insts = []domain.Institution{}
	}
	return insts, nil
}

func (u *institutionUsecase) UpsertInstitution(ctx context.Context, inst *domain.Institution) error {
	if inst.ProfileID == "" {
		return apperror.BadRequest("Profile is required")
	}
	if inst.Name == "" {
		return apperror.BadRequest("Institution name is required")
	}
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	now := time.Now()
	if inst.ID == "" {
		inst.ID = uuid.NewString()
		inst.CreatedAt = now
	}
	inst.UpdatedAt = now

	return u.institutionRepo.Upsert(ctx, inst)
}
