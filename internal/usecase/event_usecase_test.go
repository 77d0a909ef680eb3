package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/internal/usecase"
	"go-medlink-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a past event date", func(t *testing.T) {
		mockEvents := new(MockEventRepo)
		uc := usecase.NewEventUsecase(mockEvents, &stubGuard{ready: true})

		err := uc.CreateEvent(ctx, "user-1", &domain.Event{
			Title:     "Cardiology Summit",
			EventDate: time.Now().AddDate(0, 0, -1),
		})
		assert.Error(t, err)
		mockEvents.AssertNotCalled(t, "Create")
	})

	t.Run("Should stamp the organizer from the caller", func(t *testing.T) {
		mockEvents := new(MockEventRepo)
		uc := usecase.NewEventUsecase(mockEvents, &stubGuard{ready: true})

		mockEvents.On("Create", ctx, mock.AnythingOfType("*domain.Event")).Return(nil).Run(func(args mock.Arguments) {
			e := args.Get(1).(*domain.Event)
			assert.Equal(t, "user-1", e.OrganizerID)
		})

		err := uc.CreateEvent(ctx, "user-1", &domain.Event{
			Title:     "Cardiology Summit",
			EventDate: time.Now().AddDate(0, 1, 0),
		})
		assert.NoError(t, err)
	})
}

func TestEventRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject registering for a missing event", func(t *testing.T) {
		mockEvents := new(MockEventRepo)
		uc := usecase.NewEventUsecase(mockEvents, &stubGuard{ready: true})

		mockEvents.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)

		err := uc.RegisterForEvent(ctx, 9, "user-1")
		assert.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("Should register for an existing event", func(t *testing.T) {
		mockEvents := new(MockEventRepo)
		uc := usecase.NewEventUsecase(mockEvents, &stubGuard{ready: true})

		mockEvents.On("GetByID", ctx, int64(9)).Return(&domain.Event{ID: 9}, nil)
		mockEvents.On("Register", ctx, int64(9), "user-1").Return(nil)

		err := uc.RegisterForEvent(ctx, 9, "user-1")
		assert.NoError(t, err)
		mockEvents.AssertExpectations(t)
	})

	t.Run("Should report unregistered while store is unready", func(t *testing.T) {
		uc := usecase.NewEventUsecase(new(MockEventRepo), &stubGuard{ready: false})

		registered, err := uc.IsRegistered(ctx, 9, "user-1")
		assert.NoError(t, err)
		assert.False(t, registered)
	})
}

func TestListUpcomingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return empty list while store is unready", func(t *testing.T) {
		uc := usecase.NewEventUsecase(new(MockEventRepo), &stubGuard{ready: false})

		events, total, err := uc.ListUpcomingEvents(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, events)
	})

	t.Run("Should pass pagination through to the repository", func(t *testing.T) {
		mockEvents := new(MockEventRepo)
		uc := usecase.NewEventUsecase(mockEvents, &stubGuard{ready: true})

		mockEvents.On("FetchUpcoming", ctx, 10, 10).Return([]domain.EventWithOrganizer{}, int64(25), nil)

		_, total, err := uc.ListUpcomingEvents(ctx, 2, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(25), total)
		mockEvents.AssertExpectations(t)
	})
}
