// Package bench runs several thresholding strategies over the same picture,
// times each of them and checks that they all agree with the reference.
package bench

import (
	"errors"
	"image"
	"io"
	"os"
	"time"

	"github.com/ArnaudCalmettes/binbench/imp"
	"github.com/rs/zerolog"
)

// Options configures a benchmark run.
type Options struct {
	// Threshold is the cutoff level. Samples strictly above it become white.
	Threshold uint8

	// Strategies to run, in order. Defaults to all registered strategies.
	// The reference strategy must be part of the list.
	Strategies []Strategy

	// Out receives one report line per strategy. Defaults to os.Stdout.
	Out io.Writer

	Logger zerolog.Logger
}

// DefaultThreshold is the cutoff used when none is configured.
const DefaultThreshold = 127

// Run thresholds a private copy of input with every strategy, one after the
// other, then checks every output against the reference.
func Run(input *image.Gray, opts Options) ([]Result, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Strategies == nil {
		opts.Strategies = Strategies()
	}
	logger := opts.Logger.With().Str("component", "bench").Logger()

	timer := NewTimer(opts.Out, opts.Logger)
	results := make([]Result, 0, len(opts.Strategies))
	ref := -1

	for _, s := range opts.Strategies {
		img := imp.Clone(input)
		kernel := s.Kernel
		out, elapsed := Time(timer, s.Name, func() *image.Gray {
			return kernel(img, opts.Threshold)
		})
		if s.Name == Reference {
			ref = len(results)
		}
		results = append(results, Result{Strategy: s.Name, Image: out, Elapsed: elapsed})
	}

	if ref < 0 {
		return results, errors.New("reference strategy " + Reference + " was not run")
	}

	candidates := make([]Result, 0, len(results)-1)
	for i, r := range results {
		if i != ref {
			candidates = append(candidates, r)
		}
	}
	if err := Check(results[ref], candidates...); err != nil {
		return results, err
	}

	base := total(timer.Durations(Reference)).Seconds()
	for i, r := range results {
		if i == ref {
			continue
		}
		elapsed := total(timer.Durations(r.Strategy))
		ev := logger.Info().Str("strategy", r.Strategy).Dur("elapsed", elapsed)
		if secs := elapsed.Seconds(); secs > 0 {
			ev = ev.Float64("speedup", base/secs)
		}
		ev.Msg("strategy agrees with reference")
	}
	return results, nil
}

func total(d []time.Duration) time.Duration {
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum
}
