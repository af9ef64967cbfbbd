package timer

import (
	"fmt"
	"sync"
	"time"
)

// DefaultInterval is the tick period of a running timer.
const DefaultInterval = time.Second

// Timer tracks elapsed wall-clock time for one session. Elapsed time is
// always derived from the clock, never from the number of ticks, so late
// or missed ticks do not skew it.
type Timer struct {
	mu       sync.Mutex
	now      func() time.Time
	interval time.Duration

	running bool
	base    time.Time
	elapsed time.Duration
	done    chan struct{}
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithInterval sets the tick period.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// New creates a stopped timer at 00:00.
func New(opts ...Option) *Timer {
	t := &Timer{now: time.Now, interval: DefaultInterval}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Start begins timing, resuming from any previously accumulated time.
// onTick, when non-nil, is called once per interval with the formatted
// elapsed time until Stop. Calling Start on a running timer is a no-op.
func (t *Timer) Start(onTick func(formatted string)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	t.running = true
	t.base = t.now().Add(-t.elapsed)
	t.done = make(chan struct{})

	if onTick != nil {
		go t.tickLoop(t.done, t.interval, onTick)
	}
}

func (t *Timer) tickLoop(done <-chan struct{}, interval time.Duration, onTick func(string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			onTick(t.FormattedTime())
		}
	}
}

// Stop freezes the elapsed time and cancels ticking. Safe to call on a
// stopped timer.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	t.elapsed = t.now().Sub(t.base)
	t.running = false
	close(t.done)
	t.done = nil
}

// Reset stops the timer and clears the elapsed time.
func (t *Timer) Reset() {
	t.Stop()

	t.mu.Lock()
	t.elapsed = 0
	t.mu.Unlock()
}

// Running reports whether the timer is started.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Elapsed returns the elapsed duration, live while running.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return t.now().Sub(t.base)
	}
	return t.elapsed
}

// ElapsedSeconds returns whole elapsed seconds, rounded down.
func (t *Timer) ElapsedSeconds() int {
	return int(t.Elapsed() / time.Second)
}

// FormattedTime returns the elapsed time as MM:SS.
func (t *Timer) FormattedTime() string {
	return Format(t.Elapsed())
}

// Format renders d as zero-padded MM:SS. Minutes are not capped at 59.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
