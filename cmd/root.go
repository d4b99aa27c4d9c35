package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  = zerolog.Nop()
)

// newRootCmd assembles the command tree. Each call returns fresh commands
// and flags.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "binbench",
		Short: "Grayscale binarization micro-benchmark",
		Long: `Thresholds the same grayscale picture with several strategies, times each
of them and makes sure they all produce the same binary image.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlag("log-level", cmd.Root().PersistentFlags().Lookup("log-level"))
			initConfig()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.binbench.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newBenchCmd(), newStrategiesCmd())
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".binbench" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".binbench")
	}

	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.SetEnvPrefix("BINBENCH")

	// If a config file is found, read it in.
	err := viper.ReadInConfig()
	logger = newLogger(viper.GetString("log-level"))
	if err == nil {
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// newLogger builds the console logger used for diagnostics. Report lines go
// to stdout, so diagnostics stay on stderr.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
