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

func TestSendConnectionRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject self-connection", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		_, err := uc.SendConnectionRequest(ctx, "user-1", "user-1")
		assert.Error(t, err)
		mockConns.AssertNotCalled(t, "Create")
	})

	t.Run("Should create a pending request for a new pair", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(nil, domain.ErrNotFound)
		mockConns.On("Create", ctx, mock.AnythingOfType("*domain.Connection")).Return(nil)

		conn, err := uc.SendConnectionRequest(ctx, "user-1", "user-2")
		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionStatusPending, conn.Status)
		assert.Equal(t, "user-1", conn.RequesterID)
		assert.Equal(t, "user-2", conn.RecipientID)
	})

	t.Run("Should conflict when already connected", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(&domain.Connection{
			ID: "c1", Status: domain.ConnectionStatusAccepted,
		}, nil)

		_, err := uc.SendConnectionRequest(ctx, "user-1", "user-2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Already connected")
	})

	t.Run("Should conflict on a duplicate pending request", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(&domain.Connection{
			ID: "c1", Status: domain.ConnectionStatusPending,
		}, nil)

		_, err := uc.SendConnectionRequest(ctx, "user-1", "user-2")
		assert.Error(t, err)
		mockConns.AssertNotCalled(t, "Create")
	})

	t.Run("Should reopen a previously rejected pair as pending", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(&domain.Connection{
			ID: "c1", RequesterID: "user-1", RecipientID: "user-2", Status: domain.ConnectionStatusRejected,
		}, nil)
		mockConns.On("Reopen", ctx, "c1", "user-1", "user-2").Return(nil)

		conn, err := uc.SendConnectionRequest(ctx, "user-1", "user-2")
		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionStatusPending, conn.Status)
		mockConns.AssertNotCalled(t, "Create")
	})

	t.Run("Should rewrite the direction when the former recipient re-initiates", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		// user-1 rejected user-2's request earlier; now user-1 reaches out.
		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(&domain.Connection{
			ID: "c1", RequesterID: "user-2", RecipientID: "user-1", Status: domain.ConnectionStatusRejected,
		}, nil)
		mockConns.On("Reopen", ctx, "c1", "user-1", "user-2").Return(nil)

		conn, err := uc.SendConnectionRequest(ctx, "user-1", "user-2")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", conn.RequesterID)
		assert.Equal(t, "user-2", conn.RecipientID)
		assert.Equal(t, domain.ConnectionStatusPending, conn.Status)
		mockConns.AssertExpectations(t)

		// Only user-2 may respond to the reopened request.
		mockConns.On("GetByID", ctx, "c1").Return(&domain.Connection{
			ID: "c1", RequesterID: "user-1", RecipientID: "user-2", Status: domain.ConnectionStatusPending,
		}, nil)
		assert.Error(t, uc.AcceptConnectionRequest(ctx, "user-1", "c1"))
		mockConns.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestResolveConnectionRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Should only let the recipient accept", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetByID", ctx, "c1").Return(&domain.Connection{
			ID: "c1", RequesterID: "user-1", RecipientID: "user-2", Status: domain.ConnectionStatusPending,
		}, nil)

		err := uc.AcceptConnectionRequest(ctx, "user-1", "c1")
		assert.Error(t, err)
		mockConns.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should accept a pending request as the recipient", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetByID", ctx, "c1").Return(&domain.Connection{
			ID: "c1", RequesterID: "user-1", RecipientID: "user-2", Status: domain.ConnectionStatusPending,
		}, nil)
		mockConns.On("UpdateStatus", ctx, "c1", domain.ConnectionStatusAccepted).Return(nil)

		err := uc.AcceptConnectionRequest(ctx, "user-2", "c1")
		assert.NoError(t, err)
		mockConns.AssertExpectations(t)
	})

	t.Run("Should refuse to resolve a non-pending request", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetByID", ctx, "c1").Return(&domain.Connection{
			ID: "c1", RequesterID: "user-1", RecipientID: "user-2", Status: domain.ConnectionStatusAccepted,
		}, nil)

		err := uc.RejectConnectionRequest(ctx, "user-2", "c1")
		assert.Error(t, err)
	})
}

func TestGetConnectionStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be direction independent", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		conn := &domain.Connection{ID: "c1", RequesterID: "user-1", RecipientID: "user-2", Status: domain.ConnectionStatusAccepted}
		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(conn, nil)
		mockConns.On("GetBetween", ctx, "user-2", "user-1").Return(conn, nil)

		s1, err := uc.GetConnectionStatus(ctx, "user-1", "user-2")
		assert.NoError(t, err)
		s2, err := uc.GetConnectionStatus(ctx, "user-2", "user-1")
		assert.NoError(t, err)
		assert.Equal(t, s1, s2)
		assert.Equal(t, domain.ConnectionViewConnected, s1)
	})

	t.Run("Should collapse rejected to none", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(&domain.Connection{
			ID: "c1", Status: domain.ConnectionStatusRejected,
		}, nil)

		status, err := uc.GetConnectionStatus(ctx, "user-1", "user-2")
		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionViewNone, status)
	})

	t.Run("Should report none when no row exists", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(nil, domain.ErrNotFound)

		status, err := uc.GetConnectionStatus(ctx, "user-1", "user-2")
		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionViewNone, status)
	})

	t.Run("Should report none while store is unready", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: false})

		status, err := uc.GetConnectionStatus(ctx, "user-1", "user-2")
		assert.NoError(t, err)
		assert.Equal(t, domain.ConnectionViewNone, status)
		mockConns.AssertNotCalled(t, "GetBetween")
	})
}

func TestConnectionLists(t *testing.T) {
	ctx := context.Background()

	t.Run("Should attach the peer rather than the caller", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewConnectionUsecase(mockConns, mockProfiles, &stubGuard{ready: true})

		mockConns.On("FetchAcceptedFor", ctx, "user-1").Return([]domain.Connection{
			{ID: "c1", RequesterID: "user-1", RecipientID: "user-2", Status: domain.ConnectionStatusAccepted},
			{ID: "c2", RequesterID: "user-3", RecipientID: "user-1", Status: domain.ConnectionStatusAccepted},
		}, nil)
		mockProfiles.On("GetByIDs", ctx, []string{"user-2", "user-3"}).Return([]domain.Profile{
			{ID: "user-2", FullName: "Dr. B"},
			{ID: "user-3", FullName: "Dr. C"},
		}, nil)

		conns, err := uc.GetConnections(ctx, "user-1")
		assert.NoError(t, err)
		assert.Len(t, conns, 2)
		assert.Equal(t, "Dr. B", conns[0].Peer.FullName)
		assert.Equal(t, "Dr. C", conns[1].Peer.FullName)
	})

	t.Run("Should return empty lists while store is unready", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: false})

		conns, err := uc.GetConnections(ctx, "user-1")
		assert.NoError(t, err)
		assert.Empty(t, conns)

		pending, err := uc.GetPendingRequests(ctx, "user-1")
		assert.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestRemoveConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete the matched pair row", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(&domain.Connection{ID: "c1"}, nil)
		mockConns.On("Delete", ctx, "c1").Return(nil)

		err := uc.RemoveConnection(ctx, "user-1", "user-2")
		assert.NoError(t, err)
		mockConns.AssertExpectations(t)
	})

	t.Run("Should report not found when no pair row exists", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewConnectionUsecase(mockConns, new(MockProfileRepo), &stubGuard{ready: true})

		mockConns.On("GetBetween", ctx, "user-1", "user-2").Return(nil, domain.ErrNotFound)

		err := uc.RemoveConnection(ctx, "user-1", "user-2")
		assert.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})
}
