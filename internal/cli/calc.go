package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tuiotime/internal/tuiotime"
)

// NewCalcCommand creates the calc command and its add/sub/ms subcommands.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Seconds/microseconds time arithmetic",
		Long: `Add and subtract time values.

A time literal is decimal seconds with up to six fractional digits, such as
"5.2" or "0.000250". The right-hand operand of add and sub may instead be a
raw microsecond delta written with a "us" suffix, such as "1500000us".

Negative operands must follow "--" so they are not read as flags:
  tuiotime calc sub -- 1.5 -0.25`,
	}

	cmd.AddCommand(newCalcBinaryCommand(rootOpts, "add", "Add two times, or a time and a microsecond delta",
		func(a tuiotime.Time, b operand) tuiotime.Time {
			if b.isDelta {
				return a.AddMicros(b.delta)
			}
			return a.Add(b.value)
		}))
	cmd.AddCommand(newCalcBinaryCommand(rootOpts, "sub", "Subtract a time or a microsecond delta from a time",
		func(a tuiotime.Time, b operand) tuiotime.Time {
			if b.isDelta {
				return a.SubMicros(b.delta)
			}
			return a.Sub(b.value)
		}))
	cmd.AddCommand(newCalcMillisCommand(rootOpts))

	return cmd
}

func newCalcBinaryCommand(rootOpts *RootOptions, name, short string, apply func(tuiotime.Time, operand) tuiotime.Time) *cobra.Command {
	return &cobra.Command{
		Use:           name + " <time> <time|delta>",
		Short:         short,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			a, err := tuiotime.Parse(args[0])
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, fmt.Sprintf("invalid time %q", args[0]), err)
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, fmt.Sprintf("invalid operand %q", args[1]), err)
			}

			return formatter.Success(newTimeResult(apply(a, b)))
		},
	}
}

func newCalcMillisCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ms <time>",
		Short:         "Convert a time to whole milliseconds",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			t, err := tuiotime.Parse(args[0])
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, fmt.Sprintf("invalid time %q", args[0]), err)
			}
			return formatter.Success(MillisResult{Value: t.String(), Milliseconds: t.TotalMilliseconds()})
		},
	}
}

// operand is the right-hand side of add/sub: a time value or a raw delta.
type operand struct {
	value   tuiotime.Time
	delta   int64
	isDelta bool
}

func parseOperand(s string) (operand, error) {
	if digits, ok := strings.CutSuffix(s, "us"); ok {
		delta, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return operand{}, fmt.Errorf("parse delta %q: %w", s, tuiotime.ErrSyntax)
		}
		return operand{delta: delta, isDelta: true}, nil
	}
	t, err := tuiotime.Parse(s)
	if err != nil {
		return operand{}, err
	}
	return operand{value: t}, nil
}
