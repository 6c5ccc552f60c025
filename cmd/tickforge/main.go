package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName = "tickforge"
	version = "v0.3.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Synthetic market tick feed with ML feature and risk derivation",
		Version: version,
		Long: `tickforge synthesizes realistic quote/trade ticks over a fixed instrument
universe and derives per-tick ML features and risk estimates, for driving
trading-infrastructure tests and benchmarks without a live feed.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to YAML feed config")
	rootCmd.PersistentFlags().Uint64("seed", 0, "PRNG seed (0 = seed from clock)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newStreamCmd())
	rootCmd.AddCommand(newBenchCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
