package bench

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/ArnaudCalmettes/binbench/imp"
)

// Kernel binarizes img at level. It may work in place on img, which it owns.
type Kernel func(img *image.Gray, level uint8) *image.Gray

// Strategy is a named way of computing the threshold.
type Strategy struct {
	Name   string
	Kernel Kernel
}

// Reference is the strategy every other one is checked against.
const Reference = "explicit"

// ErrUnknownStrategy is returned when selecting a name that isn't registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

var strategies = []Strategy{
	{Name: "library", Kernel: imp.ThresholdLibrary},
	{Name: "vectorized", Kernel: imp.ThresholdVectorized},
	{Name: Reference, Kernel: explicit},
	{Name: "rows", Kernel: imp.ThresholdRows},
	{Name: "direct", Kernel: imp.ThresholdDirect},
}

func explicit(img *image.Gray, level uint8) *image.Gray {
	if err := imp.Threshold(img, img, level); err != nil {
		panic(err)
	}
	return img
}

// Strategies returns all registered strategies in run order.
func Strategies() []Strategy {
	res := make([]Strategy, len(strategies))
	copy(res, strategies)
	return res
}

// Select returns the registered strategies matching names, in run order.
// The reference strategy is always part of the selection. An empty list
// selects everything.
func Select(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return Strategies(), nil
	}

	wanted := map[string]bool{Reference: true}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := lookup(n); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, n)
		}
		wanted[n] = true
	}

	res := make([]Strategy, 0, len(wanted))
	for _, s := range strategies {
		if wanted[s.Name] {
			res = append(res, s)
		}
	}
	return res, nil
}

func lookup(name string) (Strategy, bool) {
	for _, s := range strategies {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}
