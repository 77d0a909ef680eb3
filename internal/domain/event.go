package domain

import (
	"context"
	"time"
)

type Event struct {
	ID          int64     `json:"id"`
	OrganizerID string    `json:"organizer_id"` // organizing profile
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	EventType   *string   `json:"event_type"` // conference / webinar / workshop
	Location    *string   `json:"location"`
	EventDate   time.Time `json:"event_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventWithOrganizer extends Event with the organizer's profile summary.
type EventWithOrganizer struct {
	Event
	OrganizerName      string  `json:"organizer_name"`
	OrganizerAvatarURL *string `json:"organizer_avatar_url"`
}

type EventAttendee struct {
	EventID   int64     `json:"event_id"`
	ProfileID string    `json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	GetByIDWithOrganizer(ctx context.Context, id int64) (*EventWithOrganizer, error)
	FetchUpcoming(ctx context.Context, limit, offset int) ([]EventWithOrganizer, int64, error)
	Register(ctx context.Context, eventID int64, profileID string) error
	IsRegistered(ctx context.Context, eventID int64, profileID string) (bool, error)
}

type EventUsecase interface {
	CreateEvent(ctx context.Context, organizerID string, event *Event) error
	GetEventDetails(ctx context.Context, id int64) (*EventWithOrganizer, error)
	ListUpcomingEvents(ctx context.Context, page, pageSize int) ([]EventWithOrganizer, int64, error)
	RegisterForEvent(ctx context.Context, eventID int64, profileID string) error
	IsRegistered(ctx context.Context, eventID int64, profileID string) (bool, error)
}
