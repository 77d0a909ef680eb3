package database_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"go-medlink-backend/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

// silentListener accepts connections and never answers, so a probe against it
// blocks until the probe timeout fires.
func silentListener(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() {
		var conns []net.Conn
		defer func() {
			for _, c := range conns {
				c.Close()
			}
		}()
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			conns = append(conns, c)
		}
	}()
	return ln
}

func TestReadiness(t *testing.T) {
	ln := silentListener(t)
	defer ln.Close()

	pool, err := pgxpool.New(context.Background(),
		fmt.Sprintf("postgres://probe:probe@%s/medlink?sslmode=disable", ln.Addr()))
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	r := database.NewReadiness(pool, slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("Should serve the cached state while a probe is in flight", func(t *testing.T) {
		started := make(chan struct{})
		done := make(chan struct{})
		go func() {
			close(started)
			r.Ready(context.Background())
			close(done)
		}()
		<-started
		time.Sleep(200 * time.Millisecond)

		// The first caller claimed the probe window and is stuck on the
		// silent store. This call must not queue behind it.
		begin := time.Now()
		assert.False(t, r.Ready(context.Background()))
		assert.Less(t, time.Since(begin).Seconds(), 1.0)

		<-done
	})

	t.Run("Should not re-probe within the probe window", func(t *testing.T) {
		// lastProbe was just refreshed by the previous probe, so this
		// returns the cached answer without touching the store.
		begin := time.Now()
		assert.False(t, r.Ready(context.Background()))
		assert.Less(t, time.Since(begin).Seconds(), 1.0)
	})
}
