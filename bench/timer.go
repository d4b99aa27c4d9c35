package bench

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Timer reports the wall-clock duration of timed calls, one line per call,
// and keeps every measurement by name.
type Timer struct {
	out    io.Writer
	logger zerolog.Logger

	mu        sync.Mutex
	durations map[string][]time.Duration
}

// NewTimer returns a Timer printing its report lines to out.
func NewTimer(out io.Writer, logger zerolog.Logger) *Timer {
	return &Timer{
		out:       out,
		logger:    logger.With().Str("component", "timer").Logger(),
		durations: make(map[string][]time.Duration),
	}
}

// Time calls fn, prints how long it took under name and returns its result
// untouched along with the elapsed duration. If fn panics, nothing is
// reported and the panic goes through.
func Time[T any](t *Timer, name string, fn func() T) (T, time.Duration) {
	start := time.Now()
	result := fn()
	elapsed := time.Since(start)

	t.record(name, elapsed)
	fmt.Fprintf(t.out, "%-20s executed in %.8f seconds.\n", name, elapsed.Seconds())
	t.logger.Debug().Str("strategy", name).Dur("elapsed", elapsed).Msg("timed")
	return result, elapsed
}

func (t *Timer) record(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.durations[name] = append(t.durations[name], d)
}

// Durations returns a copy of the measurements recorded under name.
func (t *Timer) Durations(name string) []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	d := t.durations[name]
	if d == nil {
		return nil
	}
	res := make([]time.Duration, len(d))
	copy(res, d)
	return res
}
