package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake is a terminal arcade game: eat, grow, don't hit anything",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	dataDir     string
	logFile     string
	logLevel    string
	metricsAddr string
	minTick     = config.MinTickInterval
)

// Execute runs the root command
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataDir, "data-dir", config.DataDir, "directory holding the high score and the log")
	flags.StringVar(&logFile, "log-file", config.LogFile, "log file (default <data-dir>/snake.log)")
	flags.StringVar(&logLevel, "log-level", config.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&metricsAddr, "metrics-addr", config.MetricsAddr, "serve /metrics and /highscore on this address while playing")
	flags.DurationVar(&minTick, "min-tick", config.MinTickInterval, "fastest pace the game speeds up to")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(highScoreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
