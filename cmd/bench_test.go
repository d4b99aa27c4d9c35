package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"512x512", 512, 512, false},
		{"640X480", 640, 480, false},
		{" 32 ", 32, 32, false},
		{"0x10", 0, 0, true},
		{"10x", 0, 0, true},
		{"axb", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.w, w, tt.in)
		assert.Equal(t, tt.h, h, tt.in)
	}
}

func TestLoadBenchConfig(t *testing.T) {
	defer viper.Reset()

	viper.Set("threshold", 200)
	viper.Set("size", "16x8")
	viper.Set("seed", 5)
	viper.Set("only", []string{"direct"})
	viper.Set("normalize", true)

	cfg, err := loadBenchConfig()
	require.NoError(t, err)
	assert.Equal(t, benchConfig{
		Threshold: 200,
		Width:     16,
		Height:    8,
		Seed:      5,
		Only:      []string{"direct"},
		Normalize: true,
	}, cfg)
}

func TestLoadBenchConfigThresholdRange(t *testing.T) {
	defer viper.Reset()

	viper.Set("size", "8")
	for _, v := range []int{-1, 256} {
		viper.Set("threshold", v)
		_, err := loadBenchConfig()
		assert.Error(t, err, "threshold %d", v)
	}
}

func TestLoadInputSynthetic(t *testing.T) {
	img, err := loadInput(benchConfig{Width: 12, Height: 4, Seed: 1, Normalize: true})
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
}

func TestLoadInputMissingFile(t *testing.T) {
	_, err := loadInput(benchConfig{Input: "does-not-exist.png"})
	assert.Error(t, err)
}
