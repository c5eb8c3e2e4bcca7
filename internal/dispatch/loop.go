// Package dispatch provides the serial executor that owns all store
// mutation and window reconciliation. Asynchronous work (icon fetches,
// debounce timers, file watcher events) posts its completion here, so the
// store only ever observes a total order of mutations.
package dispatch

import (
	"context"
	"sync"
)

// Executor runs functions. The store and window layers accept an Executor
// so tests can run work inline.
type Executor interface {
	Post(fn func())
}

// Direct runs posted functions inline on the caller's goroutine.
type Direct struct{}

// Post runs fn immediately.
func (Direct) Post(fn func()) { fn() }

// Loop is a serial run loop. Post never blocks; Run drains the queue on a
// single goroutine until the context is done, then drains the residue so no
// posted work is lost on shutdown.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	closed  bool
	running bool
}

// NewLoop returns a loop ready to accept posts. Run must be called for
// posted work to execute.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues fn. Posting to a closed loop is a no-op.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes posted functions in order until ctx is done, then drains
// whatever remains in the queue and returns. Run must be called at most
// once.
func (l *Loop) Run(ctx context.Context) {
	l.mu.Lock()
	l.running = true
	l.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			l.drain()
			l.mu.Lock()
			l.running = false
			l.mu.Unlock()
			return
		case <-l.wake:
			l.drain()
		}
	}
}

// Close rejects further posts and, when Run is not active, drains any
// queued work inline. Idempotent.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	running := l.running
	l.mu.Unlock()

	if !running {
		l.drain()
	}
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
	}
}
