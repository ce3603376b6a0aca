// Package scroller implements the tech-tile strip that scrolls forever in
// both directions. The list is rendered Copies times side by side and the
// offset is silently moved by whole list widths whenever it drifts too far
// from the middle copy.
package scroller

import (
	"math"
	"time"
)

// Copies is how many times the list is repeated in the rendered strip.
const Copies = 5

// DefaultCycle is how long the automatic scroll takes to cross the strip.
const DefaultCycle = 60 * time.Second

// Strip describes the geometry of one rendered copy of the list.
type Strip struct {
	Count     int     `json:"count"`
	CardWidth float64 `json:"card_width"`
	Gap       float64 `json:"gap"`
}

// DefaultStrip returns the mobile tile geometry: 140px cards, 12px gaps.
func DefaultStrip(count int) Strip {
	return Strip{Count: count, CardWidth: 140, Gap: 12}
}

// Pitch is the distance from one card to the next.
func (s Strip) Pitch() float64 { return s.CardWidth + s.Gap }

// SetWidth is the width of one full copy of the list.
func (s Strip) SetWidth() float64 { return float64(s.Count) * s.Pitch() }

// TotalWidth is the width of all copies.
func (s Strip) TotalWidth() float64 { return Copies * s.SetWidth() }

// StartOffset places the viewport at the start of the third copy.
func (s Strip) StartOffset() float64 { return -2 * s.SetWidth() }

// Bounds are the drag constraints: [-4W, -W].
func (s Strip) Bounds() (min, max float64) {
	w := s.SetWidth()
	return -4 * w, -w
}

// Thresholds are the snap points of a strip in px. The browser receives
// them with the page config so it applies the same rules as Snap and
// SnapAfterDrag.
type Thresholds struct {
	SnapLow  float64 `json:"snap_low"`
	SnapHigh float64 `json:"snap_high"`
	DragLow  float64 `json:"drag_low"`
	DragHigh float64 `json:"drag_high"`
	Jump     float64 `json:"jump"`
}

// Thresholds returns the snap points for the strip's set width.
func (s Strip) Thresholds() Thresholds {
	w := s.SetWidth()
	return Thresholds{
		SnapLow:  -4 * w,
		SnapHigh: -w,
		DragLow:  -3.5 * w,
		DragHigh: -1.5 * w,
		Jump:     2 * w,
	}
}

// Snap applies the rules used while the strip animates on its own. Past the
// start of the fifth copy the offset moves forward two widths; before the
// second copy it moves back two widths.
func (s Strip) Snap(offset float64) (float64, bool) {
	t := s.Thresholds()
	return snap(offset, t.SnapLow, t.SnapHigh, t.Jump)
}

// SnapAfterDrag applies the looser thresholds used when a drag ends, so a
// card the visitor is looking at never pops.
func (s Strip) SnapAfterDrag(offset float64) (float64, bool) {
	t := s.Thresholds()
	return snap(offset, t.DragLow, t.DragHigh, t.Jump)
}

func snap(offset, low, high, jump float64) (float64, bool) {
	switch {
	case jump <= 0:
		return offset, false
	case offset <= low:
		return offset + jump, true
	case offset >= high:
		return offset - jump, true
	}
	return offset, false
}

// Wrap applies Snap until the offset settles inside the strip and reports
// how many snaps it took. A single frame can cover several list widths when
// the cycle is short or a frame is late.
func (s Strip) Wrap(offset float64) (float64, int) {
	n := 0
	for {
		next, ok := s.Snap(offset)
		if !ok || next == offset {
			return offset, n
		}
		offset = next
		n++
	}
}

// Phase returns offset modulo one list width, in [0, W). Content at two
// offsets with the same phase is identical.
func (s Strip) Phase(offset float64) float64 {
	w := s.SetWidth()
	if w <= 0 {
		return 0
	}
	m := math.Mod(offset, w)
	if m < 0 {
		m += w
	}
	return m
}

// Tiles repeats items Copies times in render order.
func Tiles[T any](items []T) []T {
	out := make([]T, 0, len(items)*Copies)
	for i := 0; i < Copies; i++ {
		out = append(out, items...)
	}
	return out
}

// Direction is the visual scroll direction, used to fade the edge overlays.
type Direction string

const (
	Neutral Direction = "neutral"
	Left    Direction = "left"
	Right   Direction = "right"
)

// NextDirection applies hysteresis to a velocity in px/s: above 10 the sign
// decides, below 2 the strip is neutral, in between the previous value
// stays.
func NextDirection(prev Direction, velocity float64) Direction {
	switch abs := math.Abs(velocity); {
	case abs > 10:
		if velocity > 0 {
			return Right
		}
		return Left
	case abs < 2:
		return Neutral
	}
	return prev
}
