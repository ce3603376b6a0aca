package autoplay

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrStarted is returned when Start is called more than once.
var ErrStarted = errors.New("autoplay: timer already started")

type command int

const (
	cmdPause command = iota
	cmdResume
)

type request struct {
	cmd command
	ack chan struct{}
}

// Timer calls onTick once per period while Running. All callbacks run on
// the timer's own goroutine, one at a time. onTick must not call Stop.
type Timer struct {
	period time.Duration
	onTick func()
	now    func() time.Time
	logger *zap.Logger

	cmds chan request
	done chan struct{}

	mu          sync.Mutex
	sched       *Schedule
	started     bool
	stopped     bool
	startPaused bool
	cancel      context.CancelFunc
	ticks       int64
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the wall clock used to measure elapsed time.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithLogger sets the logger used for phase changes.
func WithLogger(l *zap.Logger) Option {
	return func(t *Timer) { t.logger = l }
}

// StartPaused makes the timer begin in the Paused phase.
func StartPaused() Option {
	return func(t *Timer) { t.startPaused = true }
}

// New creates a timer. A non-positive period selects DefaultPeriod.
func New(period time.Duration, onTick func(), opts ...Option) *Timer {
	if period <= 0 {
		period = DefaultPeriod
	}
	t := &Timer{
		period: period,
		onTick: onTick,
		now:    time.Now,
		logger: zap.NewNop(),
		cmds:   make(chan request),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start launches the timer goroutine. It stops when ctx is cancelled or
// Stop is called.
func (t *Timer) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.stopped {
		return ErrStarted
	}
	t.started = true
	t.sched = NewSchedule(t.period, t.now())
	if t.startPaused {
		t.sched.Pause(t.now())
	}
	ctx, t.cancel = context.WithCancel(ctx)
	go t.loop(ctx)
	return nil
}

// PointerEnter pauses the timer. It returns once the pause has been applied.
func (t *Timer) PointerEnter() { t.send(cmdPause) }

// PointerLeave resumes a paused timer. The next tick is one full period
// later.
func (t *Timer) PointerLeave() { t.send(cmdResume) }

// Stop cancels the timer and waits for its goroutine to exit. No onTick
// call happens after Stop returns. Stop is idempotent.
func (t *Timer) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	if !t.started {
		t.mu.Unlock()
		close(t.done)
		return
	}
	t.cancel()
	t.mu.Unlock()
	<-t.done
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return Stopped
	}
	if t.sched == nil {
		if t.startPaused {
			return Paused
		}
		return Running
	}
	return t.sched.Phase()
}

// Ticks returns how many times onTick has been called.
func (t *Timer) Ticks() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

func (t *Timer) send(c command) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	if !t.started {
		t.startPaused = c == cmdPause
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	req := request{cmd: c, ack: make(chan struct{})}
	select {
	case t.cmds <- req:
	case <-t.done:
		return
	}
	select {
	case <-req.ack:
	case <-t.done:
	}
}

func (t *Timer) loop(ctx context.Context) {
	defer close(t.done)

	for {
		t.mu.Lock()
		at, ok := t.sched.NextDue()
		t.mu.Unlock()

		var wait <-chan time.Time
		var tm *time.Timer
		if ok {
			d := at.Sub(t.now())
			if d < 0 {
				d = 0
			}
			tm = time.NewTimer(d)
			wait = tm.C
		}

		select {
		case <-ctx.Done():
			stopTimer(tm)
			t.mu.Lock()
			t.sched.Stop()
			t.mu.Unlock()
			return
		case req := <-t.cmds:
			stopTimer(tm)
			t.apply(req.cmd)
			close(req.ack)
		case <-wait:
			t.mu.Lock()
			due := t.sched.Advance(t.now())
			t.mu.Unlock()
			t.fire(due)
		}
	}
}

func (t *Timer) apply(c command) {
	t.mu.Lock()
	var due int
	switch c {
	case cmdPause:
		due = t.sched.Pause(t.now())
	case cmdResume:
		t.sched.Resume(t.now())
	}
	phase := t.sched.Phase()
	t.mu.Unlock()

	t.logger.Debug("autoplay phase", zap.Stringer("phase", phase))
	t.fire(due)
}

func (t *Timer) fire(n int) {
	for i := 0; i < n; i++ {
		t.mu.Lock()
		t.ticks++
		t.mu.Unlock()
		if t.onTick != nil {
			t.onTick()
		}
	}
}

func stopTimer(tm *time.Timer) {
	if tm != nil {
		tm.Stop()
	}
}
