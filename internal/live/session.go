// Package live runs carousel sessions for connected browsers. Each session
// owns a carousel cursor and an autoplay timer; the browser only renders
// the state frames it receives.
package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manishpatil55/demo-product-page/internal/autoplay"
	"github.com/manishpatil55/demo-product-page/internal/carousel"
	"github.com/manishpatil55/demo-product-page/internal/content"
)

// Client message types.
const (
	MsgNext         = "next"
	MsgPrev         = "prev"
	MsgJump         = "jump"
	MsgSelect       = "select"
	MsgPointerEnter = "pointer_enter"
	MsgPointerLeave = "pointer_leave"
)

// Reasons attached to state frames that were not caused by a message.
const (
	ReasonInit = "init"
	ReasonTick = "tick"
)

var (
	// ErrClosed is returned by Handle after Close.
	ErrClosed = errors.New("live: session closed")
	// ErrMissingIndex is returned for a jump without an index.
	ErrMissingIndex = errors.New("live: jump requires an index")
	// ErrBadOffset is returned for a select outside the rendered window.
	ErrBadOffset = errors.New("live: offset outside the window")
)

// Message is sent by the browser.
type Message struct {
	Type   string `json:"type"`
	Index  *int   `json:"index,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// SlotView is one rendered card position.
type SlotView struct {
	Offset int           `json:"offset"`
	Cursor int           `json:"cursor"`
	Index  int           `json:"index"`
	Title  string        `json:"title"`
	Pose   carousel.Pose `json:"pose"`
}

// State is the frame pushed after every change.
type State struct {
	Type    string     `json:"type"`
	Session string     `json:"session"`
	Reason  string     `json:"reason"`
	Cursor  int        `json:"cursor"`
	Active  int        `json:"active"`
	Dots    []bool     `json:"dots"`
	Window  []SlotView `json:"window"`
	Phase   string     `json:"phase"`
}

// ErrorFrame reports a rejected message.
type ErrorFrame struct {
	Type    string `json:"type"`
	Session string `json:"session"`
	Error   string `json:"error"`
}

// Sender delivers a frame to the browser.
type Sender func(v interface{}) error

// SessionConfig configures a Session.
type SessionConfig struct {
	Interval    time.Duration
	StartPaused bool
	// Offering, when set, jumps the carousel to that index before the
	// first frame so the session matches the page the browser rendered.
	Offering *int
	Logger   *zap.Logger
}

// Session serializes user actions and autoplay ticks on one carousel.
type Session struct {
	ID     string
	logger *zap.Logger
	send   Sender
	timer  *autoplay.Timer

	// mu guards the carousel and the sender. Ticks take mu from the timer
	// goroutine, so PointerEnter, PointerLeave and Stop, which wait on that
	// goroutine, must not be called with mu held. Reading the timer phase
	// under mu is fine: the timer never holds its own lock during a tick.
	mu       sync.Mutex
	carousel *carousel.Carousel[content.Offering]
	closed   bool
}

// NewSession creates a session over items. Nothing is sent until Start.
func NewSession(items []content.Offering, cfg SessionConfig, send Sender) (*Session, error) {
	c, err := carousel.New(items)
	if err != nil {
		return nil, err
	}
	if cfg.Offering != nil {
		if err := c.Jump(*cfg.Offering); err != nil {
			return nil, err
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		ID:       uuid.New().String(),
		send:     send,
		carousel: c,
	}
	s.logger = logger.With(zap.String("session", s.ID))

	opts := []autoplay.Option{autoplay.WithLogger(s.logger)}
	if cfg.StartPaused {
		opts = append(opts, autoplay.StartPaused())
	}
	s.timer = autoplay.New(cfg.Interval, s.tick, opts...)
	return s, nil
}

// Start sends the initial state and starts autoplay.
func (s *Session) Start(ctx context.Context) error {
	if err := s.push(ReasonInit); err != nil {
		return err
	}
	return s.timer.Start(ctx)
}

// Handle applies one browser message and pushes the new state. Invalid
// messages return an error and leave the state unchanged.
func (s *Session) Handle(msg Message) error {
	switch msg.Type {
	case MsgPointerEnter:
		s.timer.PointerEnter()
		return s.push(msg.Type)
	case MsgPointerLeave:
		s.timer.PointerLeave()
		return s.push(msg.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	switch msg.Type {
	case MsgNext:
		s.carousel.Next()
	case MsgPrev:
		s.carousel.Prev()
	case MsgJump:
		if msg.Index == nil {
			return ErrMissingIndex
		}
		if err := s.carousel.Jump(*msg.Index); err != nil {
			return err
		}
	case MsgSelect:
		if !inWindow(msg.Offset) {
			return fmt.Errorf("%w: %d", ErrBadOffset, msg.Offset)
		}
		s.carousel.Select(msg.Offset)
	default:
		return errors.New("unknown message type: " + msg.Type)
	}
	return s.sendLocked(s.stateLocked(msg.Type))
}

// SendError reports err to the browser.
func (s *Session) SendError(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.send(ErrorFrame{Type: "error", Session: s.ID, Error: err.Error()})
}

// State returns the current state without sending it.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked("")
}

// Phase returns the autoplay phase.
func (s *Session) Phase() autoplay.Phase {
	return s.timer.Phase()
}

// Close stops autoplay. Nothing is sent after Close returns.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.timer.Stop()
}

func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.carousel.Next()
	if err := s.sendLocked(s.stateLocked(ReasonTick)); err != nil {
		s.logger.Debug("tick not delivered", zap.Error(err))
	}
}

func (s *Session) push(reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.sendLocked(s.stateLocked(reason))
}

func (s *Session) sendLocked(st State) error {
	return s.send(st)
}

func (s *Session) stateLocked(reason string) State {
	c := s.carousel
	st := State{
		Type:    "state",
		Session: s.ID,
		Reason:  reason,
		Cursor:  c.Cursor(),
		Active:  c.Active(),
		Dots:    c.Dots(),
		Phase:   s.timer.Phase().String(),
	}
	for _, slot := range c.Window(carousel.DefaultOffsets) {
		st.Window = append(st.Window, SlotView{
			Offset: slot.Offset,
			Cursor: slot.Cursor,
			Index:  slot.Index,
			Title:  slot.Item.Title,
			Pose:   carousel.PoseFor(slot.Offset),
		})
	}
	return st
}

func inWindow(offset int) bool {
	lo, hi := carousel.DefaultOffsets[0], carousel.DefaultOffsets[len(carousel.DefaultOffsets)-1]
	return offset >= lo && offset <= hi
}
