// Package carousel maps an unbounded cursor onto a fixed list of items and
// builds the window of neighbours a depth-stacked carousel renders.
package carousel

import (
	"errors"
	"fmt"
	"math"
)

// InitialCursor is where every carousel starts. It is large enough that
// user navigation never drives the cursor negative in practice.
const InitialCursor = 20000

// DefaultOffsets is the symmetric window rendered around the active item.
var DefaultOffsets = []int{-2, -1, 0, 1, 2}

var (
	// ErrEmpty is returned when a carousel is created without items.
	ErrEmpty = errors.New("carousel: no items")
	// ErrOutOfRange is returned by Jump for an index outside [0, len).
	ErrOutOfRange = errors.New("carousel: index out of range")
)

// EffectiveIndex reduces cursor into [0, length) using true modulo, so
// negative cursors wrap the same way positive ones do. length must be > 0.
func EffectiveIndex(cursor, length int) int {
	return ((cursor % length) + length) % length
}

// Slot is one rendered position in the window.
type Slot[T any] struct {
	Offset int  `json:"offset"`
	Cursor int  `json:"cursor"`
	Index  int  `json:"index"`
	Item   T    `json:"item"`
	Active bool `json:"active"`
}

// Window returns one slot per offset, in offset order. With fewer items than
// offsets the same item appears in more than one slot.
func Window[T any](cursor int, items []T, offsets []int) []Slot[T] {
	slots := make([]Slot[T], 0, len(offsets))
	for _, off := range offsets {
		c := cursor + off
		idx := EffectiveIndex(c, len(items))
		slots = append(slots, Slot[T]{
			Offset: off,
			Cursor: c,
			Index:  idx,
			Item:   items[idx],
			Active: off == 0,
		})
	}
	return slots
}

// Pose holds the depth-stacking hints for a slot. It depends only on the
// slot's offset from the center.
type Pose struct {
	X       float64 `json:"x"`
	Scale   float64 `json:"scale"`
	Opacity float64 `json:"opacity"`
	ZIndex  int     `json:"z_index"`
	RotateY float64 `json:"rotate_y"`
}

// CardWidth is the horizontal spacing between neighbouring cards, in px.
const CardWidth = 360

// PoseFor computes the pose of the card at the given offset.
func PoseFor(offset int) Pose {
	abs := offset
	if abs < 0 {
		abs = -abs
	}
	p := Pose{
		X:       float64(offset * CardWidth),
		Scale:   0.85,
		Opacity: math.Max(0.3, 0.8-float64(abs)*0.2),
		ZIndex:  10 - abs,
		RotateY: float64(offset) * -5,
	}
	if offset == 0 {
		p.Scale = 1
		p.Opacity = 1
	}
	return p
}

// Carousel is a cursor over an immutable item list. It is not safe for
// concurrent use; callers serialize access.
type Carousel[T any] struct {
	items  []T
	cursor int
}

// New creates a carousel positioned at InitialCursor.
func New[T any](items []T) (*Carousel[T], error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	return &Carousel[T]{items: items, cursor: InitialCursor}, nil
}

// Len returns the number of items.
func (c *Carousel[T]) Len() int { return len(c.items) }

// Cursor returns the raw cursor.
func (c *Carousel[T]) Cursor() int { return c.cursor }

// Active returns the effective index of the centered item.
func (c *Carousel[T]) Active() int { return EffectiveIndex(c.cursor, len(c.items)) }

// ActiveItem returns the centered item.
func (c *Carousel[T]) ActiveItem() T { return c.items[c.Active()] }

// Next advances the cursor by one.
func (c *Carousel[T]) Next() { c.cursor++ }

// Prev moves the cursor back by one.
func (c *Carousel[T]) Prev() { c.cursor-- }

// Jump moves to the target index by applying the linear delta from the
// current effective index. The cursor is never reset, so the direction of
// travel stays continuous; the delta is not the shortest way around.
func (c *Carousel[T]) Jump(target int) error {
	if target < 0 || target >= len(c.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, target, len(c.items))
	}
	c.cursor += target - c.Active()
	return nil
}

// Select centers the card currently shown at offset.
func (c *Carousel[T]) Select(offset int) {
	c.cursor += offset
}

// Window returns the slots for the given offsets around the cursor.
func (c *Carousel[T]) Window(offsets []int) []Slot[T] {
	return Window(c.cursor, c.items, offsets)
}

// Dots reports which pagination dot is lit. Only the effective index is
// consulted.
func (c *Carousel[T]) Dots() []bool {
	dots := make([]bool, len(c.items))
	dots[c.Active()] = true
	return dots
}
