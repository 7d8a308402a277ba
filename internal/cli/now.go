package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/tuiotime/internal/tuiotime"
)

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current clock reading",
		Long: `Print the current clock reading as seconds and microseconds.

With the system clock the seconds count from 1900-01-01 (NTP epoch), the
same reading that sessions use as their origin.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			now := tuiotime.SnapshotNow(rootOpts.source())
			formatter.VerboseLog("clock source: %T", rootOpts.source())
			return formatter.Success(newTimeResult(now))
		},
	}

	return cmd
}
