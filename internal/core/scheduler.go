package core

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type scheduledTask struct {
	timer clockwork.Timer
}

// ReplyScheduler runs one-shot delayed tasks. Each task can be cancelled
// individually; Shutdown cancels whatever is still pending.
type ReplyScheduler struct {
	clock clockwork.Clock

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*scheduledTask
	closed  bool
}

func NewReplyScheduler(clock clockwork.Clock) *ReplyScheduler {
	return &ReplyScheduler{clock: clock, pending: make(map[uint64]*scheduledTask)}
}

// Schedule runs task once after delay. The returned function cancels the
// task and reports whether it was still pending.
func (s *ReplyScheduler) Schedule(delay time.Duration, task func()) (cancel func() bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return func() bool { return false }
	}
	s.nextID++
	id := s.nextID
	entry := &scheduledTask{}
	s.pending[id] = entry
	s.mu.Unlock()

	// The timer is created outside the lock; the callback and Shutdown both
	// go through the pending map, so whoever removes the entry first wins.
	timer := s.clock.AfterFunc(delay, func() {
		if s.take(id) {
			task()
		}
	})

	s.mu.Lock()
	if _, ok := s.pending[id]; ok {
		entry.timer = timer
	} else if s.closed {
		timer.Stop()
	}
	s.mu.Unlock()

	return func() bool {
		if !s.take(id) {
			return false
		}
		timer.Stop()
		return true
	}
}

// Pending returns the number of tasks that have neither fired nor been cancelled.
func (s *ReplyScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Shutdown cancels every pending task and refuses new ones. It returns the
// number of tasks cancelled.
func (s *ReplyScheduler) Shutdown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	n := len(s.pending)
	for id, entry := range s.pending {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		delete(s.pending, id)
	}
	return n
}

func (s *ReplyScheduler) take(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	return true
}
