package postgres

import (
	"context"
	"time"

	"go-medlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type eventRepo struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) domain.EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *domain.Event) error {
	query := `INSERT INTO events (organizer_id, title, description, event_type, location, event_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		event.OrganizerID, event.Title, event.Description, event.EventType,
		event.Location, event.EventDate, event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID)
	return classify(err)
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT id, organizer_id, title, description, event_type, location, event_date, created_at, updated_at
              FROM events WHERE id = $1`
	var e domain.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.EventType,
		&e.Location, &e.EventDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, classify(err)
	}
	return &e, nil
}

// GetByIDWithOrganizer retrieves an event with the organizer profile joined.
func (r *eventRepo) GetByIDWithOrganizer(ctx context.Context, id int64) (*domain.EventWithOrganizer, error) {
	query := `
		SELECT
			e.id, e.organizer_id, e.title, e.description, e.event_type,
			e.location, e.event_date, e.created_at, e.updated_at,
			COALESCE(p.full_name, 'Unknown User') as organizer_name,
			p.avatar_url
		FROM events e
		LEFT JOIN profiles p ON e.organizer_id = p.id
		WHERE e.id = $1`

	var e domain.EventWithOrganizer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.EventType,
		&e.Location, &e.EventDate, &e.CreatedAt, &e.UpdatedAt,
		&e.OrganizerName, &e.OrganizerAvatarURL,
	)
	if err != nil {
		return nil, classify(err)
	}
	return &e, nil
}

func (r *eventRepo) FetchUpcoming(ctx context.Context, limit, offset int) ([]domain.EventWithOrganizer, int64, error) {
	query := `
		SELECT
			e.id, e.organizer_id, e.title, e.description, e.event_type,
			e.location, e.event_date, e.created_at, e.updated_at,
			COALESCE(p.full_name, 'Unknown User') as organizer_name,
			p.avatar_url
		FROM events e
		LEFT JOIN profiles p ON e.organizer_id = p.id
		WHERE e.event_date >= NOW()
		ORDER BY e.event_date ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, classify(err)
	}
	defer rows.Close()

	var events []domain.EventWithOrganizer
	for rows.Next() {
		var e domain.EventWithOrganizer
		if err := rows.Scan(
			&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.EventType,
			&e.Location, &e.EventDate, &e.CreatedAt, &e.UpdatedAt,
			&e.OrganizerName, &e.OrganizerAvatarURL,
		); err != nil {
			return nil, 0, classify(err)
		}
		events = append(events, e)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE event_date >= NOW()`).Scan(&total); err != nil {
		return nil, 0, classify(err)
	}

	return events, total, nil
}

func (r *eventRepo) Register(ctx context.Context, eventID int64, profileID string) error {
	query := `INSERT INTO event_attendees (event_id, profile_id, created_at)
              VALUES ($1, $2, $3)
              ON CONFLICT (event_id, profile_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, eventID, profileID, time.Now())
	return classify(err)
}

func (r *eventRepo) IsRegistered(ctx context.Context, eventID int64, profileID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_attendees WHERE event_id = $1 AND profile_id = $2)`,
		eventID, profileID).Scan(&exists)
	if err != nil {
		return false, classify(err)
	}
	return exists, nil
}
