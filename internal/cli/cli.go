// Package cli holds the pieces shared by the plot and show commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/config"
)

// Flags are the options common to every command.
type Flags struct {
	ConfigPath string
	Verbose    bool
}

// Register adds the common flags to cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.ConfigPath, "config", "c", "", "TOML configuration file (defaults apply when omitted)")
	cmd.PersistentFlags().BoolVarP(&f.Verbose, "verbose", "v", false, "enable verbose logging")
}

// Logger returns a logger writing to w at the level selected by the flags.
func (f *Flags) Logger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if f.Verbose {
		level = log.DebugLevel
	}
	return NewLogger(w, level)
}

// Config loads the configuration file named by the flags, or the defaults.
func (f *Flags) Config() (config.Config, error) {
	if f.ConfigPath == "" {
		cfg := config.Default()
		return cfg, cfg.Validate()
	}
	return config.Load(f.ConfigPath)
}

// NewLogger creates a logger with timestamps formatted as "HH:MM:SS.ms".
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Main executes root with a context cancelled on SIGINT or SIGTERM and
// exits the process with the conventional status.
func Main(root *cobra.Command) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
