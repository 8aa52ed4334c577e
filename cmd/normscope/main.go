// Package main provides the normscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/normscope/normscope/internal/logging"
	"github.com/normscope/normscope/pkg/config"
)

var version = "dev"

// app carries the state resolved once per invocation by the root command.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Level: level, Encoding: cfg.Log.Encoding})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger
	return nil
}

// sync flushes the logger. main calls it after Execute whether or not the
// command failed.
func (a *app) sync() {
	if a.log == nil {
		return
	}
	// Syncing a console stderr fails with EINVAL on some platforms.
	_ = a.log.Sync()
}

func newRootCmd(a *app) *cobra.Command {

	rootCmd := &cobra.Command{
		Use:   "normscope",
		Short: "Norm-referenced scoring for child intelligence batteries",
		Long: `Normscope converts raw subtest scores into scaled scores, index composites,
percentile ranks and descriptive categories, and reports relative strengths
and weaknesses.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default: discover .normscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newScoreCmd(a),
		newAgeCmd(),
		newNormsCmd(),
	)
	return rootCmd
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
