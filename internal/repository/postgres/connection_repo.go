package postgres

import (
	"context"
	"time"

	"go-medlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type connectionRepo struct {
	db *pgxpool.Pool
}

func NewConnectionRepository(db *pgxpool.Pool) domain.ConnectionRepository {
	return &connectionRepo{db: db}
}

const connectionColumns = `id, requester_id, recipient_id, status, created_at, updated_at`

func (r *connectionRepo) Create(ctx context.Context, conn *domain.Connection) error {
	query := `INSERT INTO connections (` + connectionColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		conn.ID, conn.RequesterID, conn.RecipientID, conn.Status,
		conn.CreatedAt, conn.UpdatedAt,
	)
	return classify(err)
}

func (r *connectionRepo) GetByID(ctx context.Context, id string) (*domain.Connection, error) {
	query := `SELECT ` + connectionColumns + ` FROM connections WHERE id = $1`
	var c domain.Connection
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

// GetBetween matches the unordered {userID, targetID} pair: either party may
// have been the requester.
func (r *connectionRepo) GetBetween(ctx context.Context, userID, targetID string) (*domain.Connection, error) {
	query := `SELECT ` + connectionColumns + ` FROM connections
              WHERE (requester_id = $1 AND recipient_id = $2)
                 OR (requester_id = $2 AND recipient_id = $1)`
	var c domain.Connection
	err := r.db.QueryRow(ctx, query, userID, targetID).Scan(
		&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

func (r *connectionRepo) FetchAcceptedFor(ctx context.Context, userID string) ([]domain.Connection, error) {
	query := `SELECT ` + connectionColumns + ` FROM connections
              WHERE (requester_id = $1 OR recipient_id = $1) AND status = $2
              ORDER BY updated_at DESC`
	return r.fetch(ctx, query, userID, domain.ConnectionStatusAccepted)
}

func (r *connectionRepo) FetchPendingFor(ctx context.Context, recipientID string) ([]domain.Connection, error) {
	query := `SELECT ` + connectionColumns + ` FROM connections
              WHERE recipient_id = $1 AND status = $2
              ORDER BY created_at DESC`
	return r.fetch(ctx, query, recipientID, domain.ConnectionStatusPending)
}

func (r *connectionRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Connection, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var conns []domain.Connection
	for rows.Next() {
		var c domain.Connection
		if err := rows.Scan(&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, classify(err)
		}
		conns = append(conns, c)
	}
	return conns, classify(rows.Err())
}

func (r *connectionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE connections SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Reopen flips a resolved pair back to pending. Either side of the original
// row may be the new initiator, so the direction columns are rewritten too.
func (r *connectionRepo) Reopen(ctx context.Context, id, requesterID, recipientID string) error {
	query := `UPDATE connections
              SET requester_id = $2, recipient_id = $3, status = $4, updated_at = $5
              WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		id, requesterID, recipientID, domain.ConnectionStatusPending, time.Now(),
	)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *connectionRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM connections WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
