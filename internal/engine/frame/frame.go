// Package frame schedules per-frame callbacks and cross-goroutine work for a
// single-threaded render loop.
package frame

import "sync"

// ID identifies a pending frame request.
type ID uint64

// Callback runs once on the next tick with the elapsed seconds since the
// previous tick.
type Callback func(dt float64)

// Scheduler collects frame callbacks and posted functions. Tick must be called
// from the render thread; every other method is safe from any goroutine.
type Scheduler struct {
	mu      sync.Mutex
	nextID  ID
	pending []request
	posted  []func()
}

type request struct {
	id ID
	cb Callback
}

// RequestFrame schedules cb for the next Tick.
func (s *Scheduler) RequestFrame(cb Callback) ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.pending = append(s.pending, request{id: s.nextID, cb: cb})
	return s.nextID
}

// CancelFrame removes a request that has not run yet.
func (s *Scheduler) CancelFrame(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.pending {
		if r.id == id {
			s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
			return
		}
	}
}

// Post queues fn to run at the start of the next Tick.
func (s *Scheduler) Post(fn func()) {
	s.mu.Lock()
	s.posted = append(s.posted, fn)
	s.mu.Unlock()
}

// Pending returns the number of frame requests waiting for a tick.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Tick runs posted functions, then the frame callbacks that were pending when
// the tick started, and returns how many frame callbacks ran. Callbacks
// requested during the tick run on the next one.
func (s *Scheduler) Tick(dt float64) int {
	s.mu.Lock()
	posted := s.posted
	s.posted = nil
	s.mu.Unlock()
	for _, fn := range posted {
		fn()
	}

	s.mu.Lock()
	frames := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, r := range frames {
		r.cb(dt)
	}
	return len(frames)
}
