package usecase

import (
	"context"
	"errors"
	"time"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/google/uuid"
)

type connectionUsecase struct {
	connectionRepo domain.ConnectionRepository
	profileRepo    domain.ProfileRepository
	guard          domain.StoreGuard
}

func NewConnectionUsecase(connectionRepo domain.ConnectionRepository, profileRepo domain.ProfileRepository, guard domain.StoreGuard) domain.ConnectionUsecase {
	return &connectionUsecase{
		connectionRepo: connectionRepo,
		profileRepo:    profileRepo,
		guard:          guard,
	}
}

func (u *connectionUsecase) SendConnectionRequest(ctx context.Context, requesterID, recipientID string) (*domain.Connection, error) {
	if requesterID == "" || recipientID == "" {
		return nil, apperror.BadRequest("Both parties are required")
	}
	if requesterID == recipientID {
		return nil, apperror.BadRequest("Cannot connect with yourself")
	}
	if !u.guard.Ready(ctx) {
		return nil, apperror.Unavailable(nil)
	}

	existing, err := u.connectionRepo.GetBetween(ctx, requesterID, recipientID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case domain.ConnectionStatusAccepted:
			return nil, apperror.Conflict("Already connected")
		case domain.ConnectionStatusPending:
			return nil, apperror.Conflict("Connection request already pending")
		default:
			// A previously rejected pair may try again. The stored direction
			// is rewritten so the new initiator is the requester and only the
			// other party can respond.
			if err := u.connectionRepo.Reopen(ctx, existing.ID, requesterID, recipientID); err != nil {
				return nil, err
			}
			existing.RequesterID = requesterID
			existing.RecipientID = recipientID
			existing.Status = domain.ConnectionStatusPending
			return existing, nil
		}
	}

	now := time.Now()
	conn := &domain.Connection{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      domain.ConnectionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.connectionRepo.Create(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func (u *connectionUsecase) AcceptConnectionRequest(ctx context.Context, userID, connectionID string) error {
	return u.resolveRequest(ctx, userID, connectionID, domain.ConnectionStatusAccepted)
}

func (u *connectionUsecase) RejectConnectionRequest(ctx context.Context, userID, connectionID string) error {
	return u.resolveRequest(ctx, userID, connectionID, domain.ConnectionStatusRejected)
}

// resolveRequest transitions a pending request. Only the recipient may act.
func (u *connectionUsecase) resolveRequest(ctx context.Context, userID, connectionID, status string) error {
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	conn, err := u.connectionRepo.GetByID(ctx, connectionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Connection request not found")
		}
		return err
	}
	if conn.RecipientID != userID {
		return apperror.Forbidden("Only the recipient can respond to a connection request")
	}
	if conn.Status != domain.ConnectionStatusPending {
		return apperror.BadRequest("Connection request is no longer pending")
	}
	return u.connectionRepo.UpdateStatus(ctx, connectionID, status)
}

func (u *connectionUsecase) RemoveConnection(ctx context.Context, userID, targetID string) error {
	if !u.guard.Ready(ctx) {
		return apperror.Unavailable(nil)
	}

	conn, err := u.connectionRepo.GetBetween(ctx, userID, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Connection not found")
		}
		return err
	}
	return u.connectionRepo.Delete(ctx, conn.ID)
}

// GetConnectionStatus returns the simplified three-state view. The result is
// direction-independent: status(a, b) == status(b, a).
func (u *connectionUsecase) GetConnectionStatus(ctx context.Context, userID, targetID string) (string, error) {
	if userID == "" || targetID == "" || userID == targetID {
		return domain.ConnectionViewNone, nil
	}
	if !u.guard.Ready(ctx) {
		return domain.ConnectionViewNone, nil
	}

	conn, err := u.connectionRepo.GetBetween(ctx, userID, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || absorb(u.guard, "GetConnectionStatus", err) {
			return domain.ConnectionViewNone, nil
		}
		return domain.ConnectionViewNone, err
	}
	return conn.SimplifiedStatus(), nil
}

func (u *connectionUsecase) GetConnections(ctx context.Context, userID string) ([]domain.ConnectionWithProfile, error) {
	if !u.guard.Ready(ctx) {
		return []domain.ConnectionWithProfile{}, nil
	}

	conns, err := u.connectionRepo.FetchAcceptedFor(ctx, userID)
	if err != nil {
		if absorb(u.guard, "GetConnections", err) {
			return []domain.ConnectionWithProfile{}, nil
		}
		return nil, err
	}
	// The peer is whichever side is not the caller
	return u.attachPeers(ctx, userID, conns), nil
}

func (u *connectionUsecase) GetPendingRequests(ctx context.Context, userID string) ([]domain.ConnectionWithProfile, error) {
	if !u.guard.Ready(ctx) {
		return []domain.ConnectionWithProfile{}, nil
	}

	conns, err := u.connectionRepo.FetchPendingFor(ctx, userID)
	if err != nil {
		if absorb(u.guard, "GetPendingRequests", err) {
			return []domain.ConnectionWithProfile{}, nil
		}
		return nil, err
	}
	return u.attachPeers(ctx, userID, conns), nil
}

func (u *connectionUsecase) attachPeers(ctx context.Context, userID string, conns []domain.Connection) []domain.ConnectionWithProfile {
	shaped := make([]domain.ConnectionWithProfile, len(conns))
	for i, c := range conns {
		shaped[i] = domain.ConnectionWithProfile{Connection: c}
	}

	peerOf := func(c *domain.ConnectionWithProfile) string {
		if c.RequesterID == userID {
			return c.RecipientID
		}
		return c.RequesterID
	}

	ids := distinctKeys(shaped, peerOf)
	byID := make(map[string]domain.AuthorSummary, len(ids))
	profiles, err := u.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		absorb(u.guard, "attachPeers", err)
	} else {
		for _, p := range profiles {
			byID[p.ID] = domain.AuthorSummary{
				ID:        p.ID,
				FullName:  p.FullName,
				Headline:  p.Headline,
				AvatarURL: p.AvatarURL,
			}
		}
	}

	attachByKey(shaped, peerOf, byID, domain.UnknownAuthor,
		func(c *domain.ConnectionWithProfile, a domain.AuthorSummary) { c.Peer = a })
	return shaped
}
