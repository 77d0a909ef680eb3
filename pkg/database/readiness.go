package database

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Readiness caches whether the backing store is reachable and its schema
// initialized. The probe is a minimal read against the profiles table: any
// error (missing table, network, permission) counts as "not ready"; success,
// including zero rows, counts as "ready".
//
// The state is computed once at startup and refreshed only when a failure has
// been reported or the store was last seen unready, so operations do not pay
// for a probe round-trip on every call.
type Readiness struct {
	pool *pgxpool.Pool
	log  *slog.Logger

	mu          sync.Mutex
	ready       bool
	lastProbe   time.Time
	probePeriod time.Duration
}

func NewReadiness(pool *pgxpool.Pool, log *slog.Logger) *Readiness {
	return &Readiness{
		pool:        pool,
		log:         log,
		probePeriod: 10 * time.Second,
	}
}

// Ready reports the cached readiness state, re-probing at most once per
// probePeriod while the store is unready. The probe runs outside the lock:
// the caller that claims the probe window pays the round-trip, concurrent
// callers get the cached state immediately.
func (r *Readiness) Ready(ctx context.Context) bool {
	r.mu.Lock()
	if r.ready {
		r.mu.Unlock()
		return true
	}
	if time.Since(r.lastProbe) < r.probePeriod {
		r.mu.Unlock()
		return false
	}
	r.lastProbe = time.Now()
	r.mu.Unlock()

	return r.probe(ctx)
}

// MarkFailure records a remote failure so the next Ready call re-probes
// instead of trusting the cached state.
func (r *Readiness) MarkFailure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready {
		r.log.Warn("store marked unready after failure", "error", err)
	}
	r.ready = false
	r.lastProbe = time.Time{}
}

// Probe forces an immediate reachability check. Called once at startup.
func (r *Readiness) Probe(ctx context.Context) bool {
	return r.probe(ctx)
}

func (r *Readiness) probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var one int
	err := r.pool.QueryRow(probeCtx, `SELECT 1 FROM profiles LIMIT 1`).Scan(&one)
	// Zero rows is still a reachable, initialized store
	ready := err == nil || errors.Is(err, pgx.ErrNoRows)
	if !ready {
		r.log.Warn("store readiness probe failed", "error", err)
	}

	r.mu.Lock()
	r.lastProbe = time.Now()
	r.ready = ready
	r.mu.Unlock()
	return ready
}
