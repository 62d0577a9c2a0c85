package asset

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReadier becomes ready after a number of checks
type countingReadier struct {
	checks  atomic.Int32
	readyAt int32
}

func (c *countingReadier) Ready() bool {
	return c.checks.Add(1) >= c.readyAt
}

func TestWaitReadyPolls(t *testing.T) {
	a := &countingReadier{readyAt: 1}
	b := &countingReadier{readyAt: 4}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, WaitReady(ctx, time.Millisecond, a, b))
	assert.Equal(t, int32(4), b.checks.Load(), "first check is immediate, then one per interval")
}

func TestWaitReadyNoItems(t *testing.T) {
	assert.NoError(t, WaitReady(context.Background(), time.Hour))
}

func TestWaitReadyCancelled(t *testing.T) {
	never := &countingReadier{readyAt: 1 << 30}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := WaitReady(ctx, 5*time.Millisecond, never)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, never.checks.Load(), int32(1))
}
