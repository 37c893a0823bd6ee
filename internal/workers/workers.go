// Package workers provides a bounded pool for CPU-heavy work.
//
// Key derivation is the only CPU-bound operation in this client, and Argon2id
// holds its full memory cost (typically 64 MiB) for the duration of each run.
// Every derivation goes through a Pool so the number of simultaneously
// resident derivations stays capped even if many unlock attempts race.
package workers

import "context"

// Pool limits how many submitted functions run at the same time. The zero
// value is not usable; construct with NewPool.
type Pool struct {
	slots chan struct{}
}

// NewPool returns a Pool that runs at most size functions concurrently.
// A size below one is treated as one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Do runs fn on the calling goroutine once a slot is free. It returns fn's
// error, or the context error if ctx is done before a slot becomes available.
// The slot is released even if fn panics.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.slots }()

	return fn()
}
