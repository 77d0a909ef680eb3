package usecase

import (
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"
	"go-medlink-backend/pkg/logger"
)

// absorb decides whether a store error should be absorbed into a degraded
// default. Transient and unavailable failures are logged, reported to the
// readiness guard, and absorbed; everything else (not-found, permanent
// misconfiguration) is left for the operation to handle.
//
// This is the single place the degradation policy lives, so individual
// operations do not reinvent it.
func absorb(guard domain.StoreGuard, op string, err error) bool {
	if err == nil {
		return false
	}
	if !apperror.Degradable(err) {
		return false
	}
	guard.MarkFailure(err)
	if logger.Log != nil {
		logger.Log.Warn("store failure, returning degraded default", "op", op, "error", err)
	}
	return true
}
