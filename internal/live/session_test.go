package live

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/manishpatil55/demo-product-page/internal/carousel"
	"github.com/manishpatil55/demo-product-page/internal/content"
)

// recorder collects the frames a session sends.
type recorder struct {
	mu     sync.Mutex
	frames []interface{}
}

func (r *recorder) send(v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, v)
	return nil
}

func (r *recorder) states() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []State
	for _, f := range r.frames {
		if st, ok := f.(State); ok {
			out = append(out, st)
		}
	}
	return out
}

func (r *recorder) last() interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

func (r *recorder) lastState(t *testing.T) State {
	t.Helper()
	st, ok := r.last().(State)
	require.True(t, ok, "last frame is %T", r.last())
	return st
}

func pausedSession(t *testing.T) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	sess, err := NewSession(content.Default().Offerings, SessionConfig{Interval: time.Hour, StartPaused: true}, rec.send)
	require.NoError(t, err)
	require.NoError(t, sess.Start(context.Background()))
	return sess, rec
}

func intp(n int) *int { return &n }

func TestSession_InitialState(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sess, rec := pausedSession(t)
	defer sess.Close()
	st := rec.lastState(t)

	assert.Equal(t, "state", st.Type)
	assert.Equal(t, ReasonInit, st.Reason)
	assert.Equal(t, sess.ID, st.Session)
	assert.Equal(t, carousel.InitialCursor, st.Cursor)
	assert.Equal(t, 0, st.Active)
	assert.Equal(t, []bool{true, false, false, false, false}, st.Dots)
	assert.Equal(t, "paused", st.Phase)

	require.Len(t, st.Window, 5)
	assert.Equal(t, -2, st.Window[0].Offset)
	assert.Equal(t, 3, st.Window[0].Index)
	assert.Equal(t, "Web Platform", st.Window[2].Title)
	assert.Equal(t, carousel.PoseFor(0), st.Window[2].Pose)
	assert.Equal(t, "User App", st.Window[3].Title)
}

func TestSession_Navigation(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sess, rec := pausedSession(t)
	defer sess.Close()

	require.NoError(t, sess.Handle(Message{Type: MsgNext}))
	st := rec.lastState(t)
	assert.Equal(t, MsgNext, st.Reason)
	assert.Equal(t, 1, st.Active)
	assert.Equal(t, "User App", st.Window[2].Title)

	require.NoError(t, sess.Handle(Message{Type: MsgPrev}))
	require.NoError(t, sess.Handle(Message{Type: MsgPrev}))
	st = rec.lastState(t)
	assert.Equal(t, carousel.InitialCursor-1, st.Cursor)
	assert.Equal(t, 4, st.Active)
	assert.Equal(t, "Analytics Suite", st.Window[2].Title)
}

func TestSession_JumpAndSelect(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sess, rec := pausedSession(t)
	defer sess.Close()

	require.NoError(t, sess.Handle(Message{Type: MsgJump, Index: intp(3)}))
	st := rec.lastState(t)
	assert.Equal(t, carousel.InitialCursor+3, st.Cursor)
	assert.Equal(t, 3, st.Active)

	require.NoError(t, sess.Handle(Message{Type: MsgSelect, Offset: -2}))
	st = rec.lastState(t)
	assert.Equal(t, carousel.InitialCursor+1, st.Cursor)
	assert.Equal(t, 1, st.Active)
	assert.Equal(t, MsgSelect, st.Reason)
}

func TestSession_RejectsInvalidMessages(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sess, rec := pausedSession(t)
	defer sess.Close()
	before := len(rec.states())

	err := sess.Handle(Message{Type: MsgJump, Index: intp(7)})
	assert.True(t, errors.Is(err, carousel.ErrOutOfRange), "got %v", err)

	err = sess.Handle(Message{Type: MsgJump})
	assert.ErrorIs(t, err, ErrMissingIndex)

	err = sess.Handle(Message{Type: MsgSelect, Offset: 3})
	assert.ErrorIs(t, err, ErrBadOffset)

	err = sess.Handle(Message{Type: "shuffle"})
	require.Error(t, err)
	assert.Equal(t, "unknown message type: shuffle", err.Error())

	assert.Len(t, rec.states(), before, "rejected messages must not push state")
	assert.Equal(t, carousel.InitialCursor, sess.State().Cursor)

	require.NoError(t, sess.SendError(err))
	frame, ok := rec.last().(ErrorFrame)
	require.True(t, ok)
	assert.Equal(t, "error", frame.Type)
	assert.Equal(t, sess.ID, frame.Session)
}

func TestSession_PointerPausesAutoplay(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	rec := &recorder{}
	sess, err := NewSession(content.Default().Offerings, SessionConfig{Interval: time.Hour}, rec.send)
	require.NoError(t, err)
	require.NoError(t, sess.Start(context.Background()))
	defer sess.Close()

	assert.Equal(t, "running", rec.lastState(t).Phase)

	require.NoError(t, sess.Handle(Message{Type: MsgPointerEnter}))
	st := rec.lastState(t)
	assert.Equal(t, MsgPointerEnter, st.Reason)
	assert.Equal(t, "paused", st.Phase)

	require.NoError(t, sess.Handle(Message{Type: MsgPointerLeave}))
	assert.Equal(t, "running", rec.lastState(t).Phase)
}

func TestSession_AutoplayAdvances(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	rec := &recorder{}
	sess, err := NewSession(content.Default().Offerings, SessionConfig{Interval: 10 * time.Millisecond}, rec.send)
	require.NoError(t, err)
	require.NoError(t, sess.Start(context.Background()))

	require.Eventually(t, func() bool {
		for _, st := range rec.states() {
			if st.Reason == ReasonTick {
				return true
			}
		}
		return false
	}, 2*time.Second, 5*time.Millisecond)
	sess.Close()

	for _, st := range rec.states() {
		if st.Reason == ReasonTick {
			assert.Greater(t, st.Cursor, carousel.InitialCursor)
		}
	}
}

func TestSession_ConcurrentUseDuringTicks(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	rec := &recorder{}
	sess, err := NewSession(content.Default().Offerings, SessionConfig{Interval: time.Millisecond}, rec.send)
	require.NoError(t, err)
	require.NoError(t, sess.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < 200; i++ {
					switch (w + i) % 4 {
					case 0:
						_ = sess.Handle(Message{Type: MsgPointerEnter})
					case 1:
						_ = sess.Handle(Message{Type: MsgPointerLeave})
					case 2:
						_ = sess.Handle(Message{Type: MsgNext})
					default:
						_ = sess.State()
					}
				}
			}(w)
		}
		wg.Wait()
		sess.Close()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("session deadlocked while autoplay was ticking")
	}
	assert.Equal(t, "stopped", sess.Phase().String())
}

func TestSession_NothingSentAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	rec := &recorder{}
	sess, err := NewSession(content.Default().Offerings, SessionConfig{Interval: time.Millisecond}, rec.send)
	require.NoError(t, err)
	require.NoError(t, sess.Start(context.Background()))
	time.Sleep(5 * time.Millisecond)
	sess.Close()

	n := len(rec.states())
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, rec.states(), n)
	assert.ErrorIs(t, sess.Handle(Message{Type: MsgNext}), ErrClosed)
	assert.Equal(t, "stopped", sess.Phase().String())
}

func TestNewSession_NoItems(t *testing.T) {
	_, err := NewSession(nil, SessionConfig{}, func(interface{}) error { return nil })
	assert.Error(t, err)
}

func TestNewSession_StartsAtOffering(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	rec := &recorder{}
	sess, err := NewSession(content.Default().Offerings, SessionConfig{Interval: time.Hour, StartPaused: true, Offering: intp(2)}, rec.send)
	require.NoError(t, err)
	require.NoError(t, sess.Start(context.Background()))
	defer sess.Close()

	st := rec.lastState(t)
	assert.Equal(t, carousel.InitialCursor+2, st.Cursor)
	assert.Equal(t, "Admin Panel", st.Window[2].Title)

	_, err = NewSession(content.Default().Offerings, SessionConfig{Offering: intp(5)}, rec.send)
	assert.ErrorIs(t, err, carousel.ErrOutOfRange)
}
