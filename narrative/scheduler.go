// Package narrative holds the engine-free state machines that drive the
// three phases of the mockumentary. Nothing here knows about ebiten: the host
// advances each machine by the frame delta and reads its state back.
package narrative

import (
	"time"
)

// Timer is a pending task of a Scheduler.
type Timer struct {
	at      time.Duration
	seq     int
	every   time.Duration
	fn      func() bool
	stopped bool
}

// Stop cancels the timer. Stopping a nil or fired timer is a no-op.
func (t *Timer) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Scheduler is a virtual clock with one-shot and repeating timers.
// Timers run inside Advance in due order; timers due at the same instant run
// in the order they were scheduled.
type Scheduler struct {
	now   time.Duration
	seq   int
	tasks []*Timer
}

// Now returns the virtual time elapsed since creation.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.add(d, 0, func() bool {
		fn()
		return false
	})
}

// Every runs fn every d until it returns false or the timer is stopped.
func (s *Scheduler) Every(d time.Duration, fn func() bool) *Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, every time.Duration, fn func() bool) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{at: s.now + d, seq: s.seq, every: every, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt, running every timer that falls due.
// While a timer runs, Now reports its due time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		i := s.next(target)
		if i < 0 {
			break
		}
		t := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.now = t.at

		again := t.fn()
		if again && t.every > 0 && !t.stopped {
			s.seq++
			t.at += t.every
			t.seq = s.seq
			s.tasks = append(s.tasks, t)
		}
	}
	s.now = target
}

func (s *Scheduler) next(target time.Duration) int {
	best := -1
	for i := 0; i < len(s.tasks); i++ {
		t := s.tasks[i]
		if t.stopped {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			i--
			continue
		}
		if t.at > target {
			continue
		}
		if best < 0 || t.at < s.tasks[best].at || (t.at == s.tasks[best].at && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	return best
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Stop cancels every timer.
func (s *Scheduler) Stop() {
	for _, t := range s.tasks {
		t.stopped = true
	}
	s.tasks = nil
}
