package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/tuiotime/internal/config"
	"github.com/roach88/tuiotime/internal/store"
	"github.com/roach88/tuiotime/internal/tuiotime"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Database   string

	// Source overrides the configured clock (for testing).
	Source tuiotime.Source

	// IDs overrides the store record ID generator (for testing).
	// If nil, the store defaults to UUIDv7.
	IDs store.IDGenerator

	config *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tuiotime CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command bound to opts.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tuiotime",
		Short: "Session-relative timestamps",
		Long: `Inspect the clock and do seconds/microseconds time arithmetic.

Sessions capture a clock origin and persist it in SQLite so that later
invocations can report time elapsed since the session started.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			configureLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite session database")

	// Add subcommands
	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewSessionCommand(opts))

	return cmd
}

// resolve loads the config file and applies it beneath explicit flags.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return newFormatter(o, cmd).Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}
	o.config = cfg

	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		o.Format = cfg.Format
	}
	if o.Database == "" {
		o.Database = cfg.Database
	}

	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	return nil
}

// source returns the clock for this invocation: an explicit override, then
// the config file, then the system clock.
func (o *RootOptions) source() tuiotime.Source {
	if o.Source != nil {
		return o.Source
	}
	if o.config != nil {
		return o.config.Source()
	}
	return tuiotime.SystemSource{}
}

// configureLogging installs the default slog logger.
func configureLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
