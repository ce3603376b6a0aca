// Package autoplay advances a carousel on a fixed period, pausing while
// the visitor interacts with it.
package autoplay

import "time"

// DefaultPeriod is the interval between automatic advances.
const DefaultPeriod = 4000 * time.Millisecond

// Phase is the state of an autoplay schedule.
type Phase int

const (
	Running Phase = iota
	Paused
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Schedule is the timing state machine behind Timer. It is driven by
// explicit instants so it never reads the wall clock itself.
//
// Each Running segment behaves like a freshly created interval timer: the
// first tick is one full period after the segment began. Time spent Paused
// produces no ticks, and a partially elapsed period is discarded on pause.
type Schedule struct {
	period time.Duration
	phase  Phase
	anchor time.Time
	fired  int64
}

// NewSchedule returns a Running schedule whose first segment starts at now.
func NewSchedule(period time.Duration, now time.Time) *Schedule {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Schedule{period: period, phase: Running, anchor: now}
}

// Period returns the tick interval.
func (s *Schedule) Period() time.Duration { return s.period }

// Phase returns the current phase.
func (s *Schedule) Phase() Phase { return s.phase }

// Advance returns how many ticks became due since the last call.
func (s *Schedule) Advance(now time.Time) int {
	if s.phase != Running {
		return 0
	}
	elapsed := now.Sub(s.anchor)
	if elapsed < 0 {
		return 0
	}
	total := int64(elapsed / s.period)
	due := total - s.fired
	if due <= 0 {
		return 0
	}
	s.fired = total
	return int(due)
}

// NextDue returns the instant of the next tick. ok is false unless Running.
func (s *Schedule) NextDue() (at time.Time, ok bool) {
	if s.phase != Running {
		return time.Time{}, false
	}
	return s.anchor.Add(time.Duration(s.fired+1) * s.period), true
}

// Pause settles any ticks due at now and stops producing more.
func (s *Schedule) Pause(now time.Time) int {
	due := s.Advance(now)
	if s.phase == Running {
		s.phase = Paused
	}
	return due
}

// Resume starts a new Running segment at now. It has no effect unless
// Paused.
func (s *Schedule) Resume(now time.Time) {
	if s.phase != Paused {
		return
	}
	s.phase = Running
	s.anchor = now
	s.fired = 0
}

// Stop moves the schedule to its terminal phase.
func (s *Schedule) Stop() {
	s.phase = Stopped
}
