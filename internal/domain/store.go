package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// StoreGuard exposes the cached reachability state of the backing store.
// Usecases consult it before issuing remote calls and report failures back
// so the cached state can be refreshed.
type StoreGuard interface {
	Ready(ctx context.Context) bool
	MarkFailure(err error)
}
