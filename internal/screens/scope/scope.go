// Package scope runs a screen's asynchronous units of work.
//
// A Scope owns a cancellable context shared by every unit it launches. Close
// cancels that context and waits for the units to return; after Close a state
// holder must not publish any write, which it checks with Done before each
// mutation. Updates is a coalescing notification channel: a receiver is told
// that something changed and then reads a fresh snapshot.
package scope

import (
	"context"
	"sync"
)

// Scope tracks the goroutines of one screen state holder.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool

	updates chan struct{}
}

// New returns a Scope derived from parent.
func New(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel, updates: make(chan struct{}, 1)}
}

// Go runs fn on its own goroutine with the scope context. Calls after Close
// are ignored.
func (s *Scope) Go(fn func(ctx context.Context)) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Done reports whether the scope has been closed.
func (s *Scope) Done() bool { return s.ctx.Err() != nil }

// Context returns the scope context.
func (s *Scope) Context() context.Context { return s.ctx }

// Notify signals a state change without blocking; pending signals coalesce.
func (s *Scope) Notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// Updates delivers change signals.
func (s *Scope) Updates() <-chan struct{} { return s.updates }

// Wait blocks until every launched unit has returned.
func (s *Scope) Wait() { s.wg.Wait() }

// Close cancels outstanding units and waits for them.
func (s *Scope) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
