package utils

import (
	"time"

	"github.com/rs/zerolog"
)

// SlowOperationThreshold is the duration above which OperationTimer warns.
const SlowOperationThreshold = 10 * time.Second

// Timer measures one operation and logs its duration when stopped.
type Timer struct {
	start     time.Time
	name      string
	log       zerolog.Logger
	threshold time.Duration
}

// NewTimer starts a timer that warns above SlowOperationThreshold.
func NewTimer(name string, log zerolog.Logger) *Timer {
	return NewTimerWithThreshold(name, SlowOperationThreshold, log)
}

// NewTimerWithThreshold starts a timer with a custom slow threshold.
// A threshold of zero disables the warning.
func NewTimerWithThreshold(name string, threshold time.Duration, log zerolog.Logger) *Timer {
	return &Timer{
		start:     time.Now(),
		name:      name,
		log:       log,
		threshold: threshold,
	}
}

// Stop logs the elapsed time and returns it.
func (t *Timer) Stop() time.Duration {
	duration := time.Since(t.start)

	t.log.Debug().
		Str("operation", t.name).
		Dur("duration_ms", duration).
		Msg("Operation completed")

	if t.threshold > 0 && duration > t.threshold {
		t.log.Warn().
			Str("operation", t.name).
			Dur("duration", duration).
			Dur("threshold", t.threshold).
			Msg("Slow operation detected")
	}

	return duration
}

// OperationTimer provides a defer-friendly way to measure operation duration
//
// Usage:
//
//	func (s *Service) Chat(ctx context.Context, msg string) {
//	    defer utils.OperationTimer("chat", s.log)()
//	}
func OperationTimer(operation string, log zerolog.Logger) func() {
	t := NewTimer(operation, log)
	return func() { t.Stop() }
}
