package cmd

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/ArnaudCalmettes/binbench/bench"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	defer viper.Reset()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func reportLines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestBenchCommand(t *testing.T) {
	out, err := execute("bench", "--size", "16x8", "--only", "direct", "-t", "90")
	require.NoError(t, err)

	lines := reportLines(out)
	require.Len(t, lines, 2)
	assert.Regexp(t, `^explicit +executed in \d+\.\d{8} seconds\.$`, lines[0])
	assert.Regexp(t, `^direct +executed in \d+\.\d{8} seconds\.$`, lines[1])
}

func TestBenchCommandAllStrategies(t *testing.T) {
	out, err := execute("bench", "--size", "8", "--normalize")
	require.NoError(t, err)
	assert.Len(t, reportLines(out), len(bench.Strategies()))
}

func TestBenchCommandThresholdOutOfRange(t *testing.T) {
	out, err := execute("bench", "--size", "8", "-t", "300")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestBenchCommandUnknownStrategy(t *testing.T) {
	_, err := execute("bench", "--size", "8", "--only", "gpu")
	assert.True(t, errors.Is(err, bench.ErrUnknownStrategy))
}

func TestBenchCommandMissingImage(t *testing.T) {
	_, err := execute("bench", "does-not-exist.png")
	assert.Error(t, err)
}

func TestBenchCommandDisagreement(t *testing.T) {
	defer func(orig func([]string) ([]bench.Strategy, error)) { selectStrategies = orig }(selectStrategies)

	selectStrategies = func([]string) ([]bench.Strategy, error) {
		ref, err := bench.Select([]string{bench.Reference})
		if err != nil {
			return nil, err
		}
		inverted := bench.Strategy{Name: "inverted", Kernel: func(img *image.Gray, level uint8) *image.Gray {
			for i, v := range img.Pix {
				if v > level {
					img.Pix[i] = 0
				} else {
					img.Pix[i] = 255
				}
			}
			return img
		}}
		return append(ref, inverted), nil
	}

	out, err := execute("bench", "--size", "8")
	var mismatch *bench.MismatchError
	require.True(t, errors.As(err, &mismatch), "got %v", err)
	assert.Equal(t, "inverted", mismatch.Strategy)
	assert.Len(t, reportLines(out), 2, "both strategies ran before the check")
}

func TestStrategiesCommand(t *testing.T) {
	out, err := execute("strategies")
	require.NoError(t, err)

	lines := reportLines(out)
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, []string{"library", "vectorized", "explicit (reference)", "rows", "direct"}, lines[:5])
}
