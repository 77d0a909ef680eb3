package usecase

import (
	"context"
	"errors"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"
)

type eventUsecase struct {
	eventRepo domain.EventRepository
	guard     domain.StoreGuard
}

func NewEventUsecase(eventRepo domain.EventRepository, guard domain.StoreGuard) domain.EventUsecase {
	return &eventUsecase{
		eventRepo: eventRepo,
		guard:     guard,
	}
}

func (u *eventUsecase) CreateEvent(ctx context.Context, organizerID string, event *domain.Event) error {
	if event.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if event.EventDate.IsZero() {
		return apperror.BadRequest("Event date is required")
	}
	if event.EventDate.Before(time.Now()) {
		return apperror.BadRequest("Event date must be in the future")
	}
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	now := time.Now()
	event.OrganizerID = organizerID
	event.CreatedAt = now
	event.UpdatedAt = now

	return u.eventRepo.Create(ctx, event)
}

func (u *eventUsecase) GetEventDetails(ctx context.Context, id int64) (*domain.EventWithOrganizer, error) {
	if !u.guard.Ready(ctx) {
		return nil, nil
	}

	event, err := u.eventRepo.GetByIDWithOrganizer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || absorb(u.guard, "GetEventDetails", err) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) ListUpcomingEvents(ctx context.Context, page, pageSize int) ([]domain.EventWithOrganizer, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if !u.guard.Ready(ctx) {
		return []domain.EventWithOrganizer{}, 0, nil
	}

	events, total, err := u.eventRepo.FetchUpcoming(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		if absorb(u.guard, "ListUpcomingEvents", err) {
			return []domain.EventWithOrganizer{}, 0, nil
		}
		return nil, 0, err
	}
	if events == nil {
		events = []domain.EventWithOrganizer{}
	}
	return events, total, nil
}

// RegisterForEvent is idempotent: registering twice is a no-op.
func (u *eventUsecase) RegisterForEvent(ctx context.Context, eventID int64, profileID string) error {
	if profileID == "" {
		return apperror.BadRequest("Profile is required")
	}
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	if _, err := u.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Event not found")
		}
		return err
	}
	return u.eventRepo.Register(ctx, eventID, profileID)
}

func (u *eventUsecase) IsRegistered(ctx context.Context, eventID int64, profileID string) (bool, error) {
	if !u.guard.Ready(ctx) {
		return false, nil
	}

	registered, err := u.eventRepo.IsRegistered(ctx, eventID, profileID)
	if err != nil {
		if absorb(u.guard, "IsRegistered", err) {
			return false, nil
		}
		return false, err
	}
	return registered, nil
}
