package domain

import (
	"context"
	"time"
)

// Stored connection status constants
const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
	ConnectionStatusRejected = "rejected"
)

// Simplified three-state view exposed at the presentation boundary
const (
	ConnectionViewNone      = "none"
	ConnectionViewPending   = "pending"
	ConnectionViewConnected = "connected"
)

// Connection is a symmetric relation: either party may be the requester.
// Lookups must match the unordered {requester, recipient} pair.
type Connection struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	RecipientID string    `json:"recipient_id"`
	Status      string    `json:"status"` // pending / accepted / rejected
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SimplifiedStatus collapses the stored enum to the presentation view.
func (c *Connection) SimplifiedStatus() string {
	switch c.Status {
	case ConnectionStatusAccepted:
		return ConnectionViewConnected
	case ConnectionStatusPending:
		return ConnectionViewPending
	default:
		return ConnectionViewNone
	}
}

// ConnectionWithProfile attaches the peer's profile summary for list views.
type ConnectionWithProfile struct {
	Connection
	Peer AuthorSummary `json:"peer"`
}

type ConnectionRepository interface {
	Create(ctx context.Context, conn *Connection) error
	GetByID(ctx context.Context, id string) (*Connection, error)
	// GetBetween matches the unordered pair regardless of direction.
	GetBetween(ctx context.Context, userID, targetID string) (*Connection, error)
	FetchAcceptedFor(ctx context.Context, userID string) ([]Connection, error)
	FetchPendingFor(ctx context.Context, recipientID string) ([]Connection, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// Reopen returns a resolved pair to pending under a new direction.
	Reopen(ctx context.Context, id, requesterID, recipientID string) error
	Delete(ctx context.Context, id string) error
}

type ConnectionUsecase interface {
	SendConnectionRequest(ctx context.Context, requesterID, recipientID string) (*Connection, error)
	AcceptConnectionRequest(ctx context.Context, userID, connectionID string) error
	RejectConnectionRequest(ctx context.Context, userID, connectionID string) error
	RemoveConnection(ctx context.Context, userID, targetID string) error
	GetConnectionStatus(ctx context.Context, userID, targetID string) (string, error)
	GetConnections(ctx context.Context, userID string) ([]ConnectionWithProfile, error)
	GetPendingRequests(ctx context.Context, userID string) ([]ConnectionWithProfile, error)
}
