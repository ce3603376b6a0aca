package scroller

import "time"

// Animator owns the continuously moving offset of a strip. It is driven by
// explicit frame steps and is not safe for concurrent use.
type Animator struct {
	strip     Strip
	cycle     time.Duration
	offset    float64
	velocity  float64
	direction Direction
	dragging  bool
	snaps     int
}

// NewAnimator starts at the strip's StartOffset. A non-positive cycle
// selects DefaultCycle.
func NewAnimator(strip Strip, cycle time.Duration) *Animator {
	if cycle <= 0 {
		cycle = DefaultCycle
	}
	return &Animator{
		strip:     strip,
		cycle:     cycle,
		offset:    strip.StartOffset(),
		direction: Neutral,
	}
}

// Offset returns the current offset in px.
func (a *Animator) Offset() float64 { return a.offset }

// Velocity returns the most recent velocity in px/s.
func (a *Animator) Velocity() float64 { return a.velocity }

// Direction returns the current scroll direction.
func (a *Animator) Direction() Direction { return a.direction }

// Dragging reports whether a drag gesture is in progress.
func (a *Animator) Dragging() bool { return a.dragging }

// Snaps returns how many snaps have been applied.
func (a *Animator) Snaps() int { return a.snaps }

// Speed is the automatic scroll speed in px/s; negative means leftwards.
// The automatic motion covers TotalWidth-SetWidth per cycle.
func (a *Animator) Speed() float64 {
	dist := a.strip.TotalWidth() - a.strip.SetWidth()
	return -dist / a.cycle.Seconds()
}

// Step advances the automatic motion by dt. It does nothing while dragging.
func (a *Animator) Step(dt time.Duration) {
	if a.dragging || dt <= 0 {
		return
	}
	v := a.Speed()
	a.move(v*dt.Seconds(), v)
	var n int
	a.offset, n = a.strip.Wrap(a.offset)
	a.snaps += n
}

// DragStart suspends the automatic motion.
func (a *Animator) DragStart() {
	a.dragging = true
}

// DragMove shifts the offset by dx px over dt, clamped to the strip bounds.
func (a *Animator) DragMove(dx float64, dt time.Duration) {
	if !a.dragging {
		return
	}
	var v float64
	if dt > 0 {
		v = dx / dt.Seconds()
	}
	a.move(dx, v)
	lo, hi := a.strip.Bounds()
	if a.offset < lo {
		a.offset = lo
	}
	if a.offset > hi {
		a.offset = hi
	}
}

// DragEnd resumes the automatic motion after re-centering the offset with
// the drag-end thresholds.
func (a *Animator) DragEnd() {
	if !a.dragging {
		return
	}
	a.dragging = false
	if next, ok := a.strip.SnapAfterDrag(a.offset); ok {
		a.offset = next
		a.snaps++
	}
	a.velocity = 0
	a.direction = NextDirection(a.direction, 0)
}

func (a *Animator) move(dx, v float64) {
	a.offset += dx
	a.velocity = v
	a.direction = NextDirection(a.direction, v)
}
