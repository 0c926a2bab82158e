// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a Scheduler whose clock only moves when Advance is
// called. Callbacks due within an Advance run inline, in deadline order,
// on the goroutine calling Advance. Timers registered by those callbacks
// fire in the same Advance when they fall inside the window.
type ManualScheduler struct {
	mu      sync.Mutex
	cond    *sync.Cond
	now     time.Time
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s        *ManualScheduler
	deadline time.Time
	seq      int
	fn       func()
}

// NewManualScheduler returns a ManualScheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	s := &ManualScheduler{now: start}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTimer{s: s, deadline: s.now.Add(d), seq: s.seq, fn: f}
	s.pending = append(s.pending, t)
	s.cond.Broadcast()

	return t
}

func (s *ManualScheduler) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	s.AfterFunc(d, func() {
		ch <- s.Now()
	})
	return ch
}

// Advance moves the clock forward by d and fires every timer that became
// due, including timers registered by the fired callbacks.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)

	for {
		next := s.popDue(target)
		if next == nil {
			break
		}
		s.now = next.deadline
		s.mu.Unlock()

		next.fn()

		s.mu.Lock()
	}

	s.now = target
	s.mu.Unlock()
}

// Pending returns the number of timers that have not fired yet.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// BlockUntil waits until at least n timers are pending. It lets a test
// synchronize with a goroutine that is about to wait on the scheduler.
func (s *ManualScheduler) BlockUntil(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.pending) < n {
		s.cond.Wait()
	}
}

// popDue removes and returns the earliest timer due at or before target.
// Must be called with mu held.
func (s *ManualScheduler) popDue(target time.Time) *manualTimer {
	if len(s.pending) == 0 {
		return nil
	}

	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].deadline.Equal(s.pending[j].deadline) {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].deadline.Before(s.pending[j].deadline)
	})

	first := s.pending[0]
	if first.deadline.After(target) {
		return nil
	}

	s.pending = s.pending[1:]
	return first
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			return true
		}
	}
	return false
}
