// Package flexsignal runs cleanup hooks on SIGINT/SIGTERM, grounded on
// pkg/signals/handler.go's Manager. The catalog-backed Supports() check,
// double-tap Ctrl-C handling, SIGHUP reload chain, and per-signal handler
// registration are dropped: flexacc's batch command has exactly one thing
// to do on shutdown — flush whatever manifest/bundle state it already
// built — so a LIFO cleanup list is all that's needed (see DESIGN.md).
package flexsignal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// CleanupFunc runs during graceful shutdown.
type CleanupFunc func(ctx context.Context) error

// Manager runs registered cleanup hooks, in LIFO order, when SIGINT or
// SIGTERM arrives.
type Manager struct {
	mu    sync.Mutex
	hooks []CleanupFunc
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// OnShutdown registers a cleanup hook, run before any hooks registered
// earlier (LIFO order).
func (m *Manager) OnShutdown(fn CleanupFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, fn)
}

// Listen blocks until SIGINT or SIGTERM, then runs the registered hooks
// in reverse registration order within grace, returning the first hook
// error encountered (if any) after running the rest. It also returns
// when ctx is cancelled, running hooks the same way.
func (m *Manager) Listen(ctx context.Context, grace time.Duration) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	return m.runHooks(shutdownCtx)
}

func (m *Manager) runHooks(ctx context.Context) error {
	m.mu.Lock()
	hooks := make([]CleanupFunc, len(m.hooks))
	copy(hooks, m.hooks)
	m.mu.Unlock()

	var firstErr error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("shutdown hook failed: %w", err)
		}
	}
	return firstErr
}
