package cmd

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/ArnaudCalmettes/binbench/bench"
	"github.com/ArnaudCalmettes/binbench/imp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// selectStrategies resolves the --only list into the strategies to run.
var selectStrategies = bench.Select

// newBenchCmd builds the bench command
func newBenchCmd() *cobra.Command {
	benchCmd := &cobra.Command{
		Use:   "bench [image]",
		Short: "Threshold an image with every strategy and compare them",
		Long: `Loads a grayscale picture (or generates a synthetic one when no file is
given), thresholds a private copy of it with each strategy in turn, prints
how long each one took and fails if any of them disagrees with the
reference.`,
		Args: cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			for _, name := range []string{"threshold", "size", "seed", "only", "normalize"} {
				viper.BindPFlag(name, cmd.Flags().Lookup(name))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadBenchConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			return runBench(cmd, cfg)
		},
	}

	benchCmd.Flags().IntP("threshold", "t", bench.DefaultThreshold, "threshold level in [0,255]")
	benchCmd.Flags().String("size", "512x512", "size of the synthetic image used when no file is given")
	benchCmd.Flags().Int64("seed", 1, "noise seed of the synthetic image")
	benchCmd.Flags().StringSlice("only", nil, "comma separated strategies to run (the reference always runs)")
	benchCmd.Flags().Bool("normalize", false, "stretch the input contrast before thresholding")
	return benchCmd
}

type benchConfig struct {
	Input         string
	Threshold     uint8
	Width, Height int
	Seed          int64
	Only          []string
	Normalize     bool
}

func loadBenchConfig() (benchConfig, error) {
	var cfg benchConfig

	t := viper.GetInt("threshold")
	if t < 0 || t > 255 {
		return cfg, fmt.Errorf("threshold %d out of range [0,255]", t)
	}
	cfg.Threshold = uint8(t)

	w, h, err := parseSize(viper.GetString("size"))
	if err != nil {
		return cfg, err
	}
	cfg.Width, cfg.Height = w, h
	cfg.Seed = viper.GetInt64("seed")
	cfg.Only = viper.GetStringSlice("only")
	cfg.Normalize = viper.GetBool("normalize")
	return cfg, nil
}

// parseSize parses a "WxH" dimension. A single number means a square.
func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions should be positive", s)
	}
	return w, h, nil
}

func loadInput(cfg benchConfig) (*image.Gray, error) {
	var img *image.Gray
	if cfg.Input != "" {
		var err error
		if img, err = imp.ReadGray(cfg.Input); err != nil {
			return nil, fmt.Errorf("loading %s: %w", cfg.Input, err)
		}
	} else {
		img = imp.Synthetic(cfg.Width, cfg.Height, cfg.Seed)
	}

	if cfg.Normalize {
		dst := image.NewGray(img.Bounds())
		if err := imp.Normalize(img, dst); err != nil {
			return nil, err
		}
		img = dst
	}
	return img, nil
}

func runBench(cmd *cobra.Command, cfg benchConfig) error {
	strategies, err := selectStrategies(cfg.Only)
	if err != nil {
		return err
	}

	img, err := loadInput(cfg)
	if err != nil {
		return err
	}

	logHost(logger)
	logger.Info().
		Str("component", "bench").
		Str("input", cfg.Input).
		Stringer("bounds", img.Bounds()).
		Uint8("threshold", cfg.Threshold).
		Bool("normalize", cfg.Normalize).
		Msg("starting")

	_, err = bench.Run(img, bench.Options{
		Threshold:  cfg.Threshold,
		Strategies: strategies,
		Out:        cmd.OutOrStdout(),
		Logger:     logger,
	})

	var mismatch *bench.MismatchError
	var shape *bench.ShapeError
	if errors.As(err, &mismatch) || errors.As(err, &shape) {
		logger.Error().Err(err).Str("component", "bench").Msg("strategies disagree")
		return fmt.Errorf("strategies disagree: %w", err)
	}
	return err
}
