package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsFunctionAndReturnsError(t *testing.T) {
	p := NewPool(2)

	wantErr := errors.New("derivation failed")
	err := p.Do(context.Background(), func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)

	err = p.Do(context.Background(), func() error { return nil })
	assert.NoError(t, err)
}

func TestPool_CapsConcurrency(t *testing.T) {
	const size = 3
	p := NewPool(size)

	var (
		running int32
		peak    int32
		wg      sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func() error {
				n := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(size))
}

func TestPool_ContextCancelledWhileWaiting(t *testing.T) {
	p := NewPool(1)

	release := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() error {
			<-release
			return nil
		})
	}()

	// Wait until the single slot is taken.
	require.Eventually(t, func() bool {
		return len(p.slots) == 1
	}, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Do(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
}

func TestNewPool_MinimumSizeOne(t *testing.T) {
	p := NewPool(0)
	require.NoError(t, p.Do(context.Background(), func() error { return nil }))
}
