package usecase_test

import (
	"context"
	"testing"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/internal/usecase"
	"go-medlink-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetInstitution(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return nil without error when missing", func(t *testing.T) {
		mockInsts := new(MockInstitutionRepo)
		uc := usecase.NewInstitutionUsecase(mockInsts, &stubGuard{ready: true})

		mockInsts.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		inst, err := uc.GetInstitution(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, inst)
	})

	t.Run("Should return nil while store is unready", func(t *testing.T) {
		mockInsts := new(MockInstitutionRepo)
		uc := usecase.NewInstitutionUsecase(mockInsts, &stubGuard{ready: false})

		inst, err := uc.GetInstitution(ctx, "inst-1")
		assert.NoError(t, err)
		assert.Nil(t, inst)
		mockInsts.AssertNotCalled(t, "GetByID")
	})
}

func TestUpsertInstitution(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require a name", func(t *testing.T) {
		mockInsts := new(MockInstitutionRepo)
		uc := usecase.NewInstitutionUsecase(mockInsts, &stubGuard{ready: true})

		err := uc.UpsertInstitution(ctx, &domain.Institution{ProfileID: "user-1"})
		assert.Error(t, err)
		mockInsts.AssertNotCalled(t, "Upsert")
	})

	t.Run("Should generate an ID for a new record only", func(t *testing.T) {
		mockInsts := new(MockInstitutionRepo)
		uc := usecase.NewInstitutionUsecase(mockInsts, &stubGuard{ready: true})

		mockInsts.On("Upsert", ctx, mock.AnythingOfType("*domain.Institution")).Return(nil)

		fresh := &domain.Institution{ProfileID: "user-1", Name: "General Hospital"}
		assert.NoError(t, uc.UpsertInstitution(ctx, fresh))
		assert.NotEmpty(t, fresh.ID)

		existing := &domain.Institution{ID: "inst-1", ProfileID: "user-1", Name: "General Hospital"}
		assert.NoError(t, uc.UpsertInstitution(ctx, existing))
		assert.Equal(t, "inst-1", existing.ID)
	})

	t.Run("Should refuse writes while store is unready", func(t *testing.T) {
		uc := usecase.NewInstitutionUsecase(new(MockInstitutionRepo), &stubGuard{ready: false})

		err := uc.UpsertInstitution(ctx, &domain.Institution{ProfileID: "user-1", Name: "X"})
		assert.Equal(t, apperror.KindUnavailable, apperror.KindOf(err))
	})
}
