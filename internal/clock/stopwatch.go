package clock

import (
	"fmt"
	"time"
)

// Stopwatch measures the time since it was started. A stopped stopwatch
// reads zero.
type Stopwatch struct {
	now     func() time.Time
	started time.Time
	running bool
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// WithClock swaps the time source, mostly for tests.
func (s *Stopwatch) WithClock(now func() time.Time) *Stopwatch {
	s.now = now
	return s
}

func (s *Stopwatch) Start() {
	s.started = s.now()
	s.running = true
}

func (s *Stopwatch) Stop() {
	s.running = false
	s.started = time.Time{}
}

func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return 0
	}
	return s.now().Sub(s.started)
}

// Format renders d as hh:mm:ss.
func Format(d time.Duration) string {
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}
