package flexsignal

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RunsHooksOnContextCancel(t *testing.T) {
	m := NewManager()

	var mu sync.Mutex
	var order []int
	m.OnShutdown(func(ctx context.Context) error {
		mu.Lock()
		order = append(order, 1)
		mu.Unlock()
		return nil
	})
	m.OnShutdown(func(ctx context.Context) error {
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Listen(ctx, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, order)
}

func TestManager_ReturnsFirstHookError(t *testing.T) {
	m := NewManager()
	m.OnShutdown(func(ctx context.Context) error { return assert.AnError })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Listen(ctx, time.Second)
	assert.Error(t, err)
}
