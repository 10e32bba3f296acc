package navigation

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduled is a callback scheduled to run after a delay. It can be cancelled
// until it starts running.
type Scheduled struct {
	timer     *time.Timer
	done      chan struct{}
	once      sync.Once
	cancelled atomic.Bool
}

// Schedule runs fn after d in its own goroutine. A nil fn only marks completion.
func Schedule(d time.Duration, fn func()) *Scheduled {
	s := &Scheduled{done: make(chan struct{})}
	s.timer = time.AfterFunc(d, func() {
		if fn != nil {
			fn()
		}
		s.finish()
	})
	return s
}

// Cancel stops the callback if it has not started yet and reports whether it did.
// Done is closed either way once the callback can no longer run.
func (s *Scheduled) Cancel() bool {
	if !s.timer.Stop() {
		return false
	}
	s.cancelled.Store(true)
	s.finish()
	return true
}

// Done is closed when the callback has run or was cancelled.
func (s *Scheduled) Done() <-chan struct{} {
	return s.done
}

// Cancelled reports whether Cancel stopped the callback.
func (s *Scheduled) Cancelled() bool {
	return s.cancelled.Load()
}

func (s *Scheduled) finish() {
	s.once.Do(func() { close(s.done) })
}
