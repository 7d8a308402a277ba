package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/tuiotime/internal/store"
	"github.com/roach88/tuiotime/internal/tuiotime"
)

// NewSessionCommand creates the session command and its subcommands.
func NewSessionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage persisted session origins",
		Long: `Start named sessions and measure time relative to their origin.

A session captures the current clock reading as its origin and stores it in
the SQLite database given by --db (or the config file). Later invocations
resume the stored origin, so elapsed times are comparable across processes.

Example:
  tuiotime --db ./sessions.db session start demo
  tuiotime --db ./sessions.db session mark demo first-touch
  tuiotime --db ./sessions.db session elapsed demo`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "start <name>",
		Short:         "Start a session with the current clock reading as origin",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, cmd, func(ctx context.Context, st *store.Store, f *OutputFormatter) error {
				return runSessionStart(ctx, rootOpts, st, f, args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "elapsed <name>",
		Short:         "Print the time elapsed since the session origin",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, cmd, func(ctx context.Context, st *store.Store, f *OutputFormatter) error {
				return runSessionElapsed(ctx, rootOpts, st, f, args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "mark <name> <label>",
		Short:         "Record the current relative time under a label",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, cmd, func(ctx context.Context, st *store.Store, f *OutputFormatter) error {
				return runSessionMark(ctx, rootOpts, st, f, args[0], args[1])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "marks <name>",
		Short:         "List the marks recorded in a session",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, cmd, func(ctx context.Context, st *store.Store, f *OutputFormatter) error {
				return runSessionMarks(ctx, st, f, args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "list",
		Short:         "List all sessions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, cmd, func(ctx context.Context, st *store.Store, f *OutputFormatter) error {
				sessions, err := st.ListSessions(ctx)
				if err != nil {
					return f.Fail(ExitCommandError, ErrCodeDatabase, "failed to list sessions", err)
				}
				out := make(SessionList, len(sessions))
				for i, rec := range sessions {
					out[i] = newSessionResult(rec)
				}
				return f.Success(out)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "delete <name>",
		Short:         "Delete a session and its marks",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, cmd, func(ctx context.Context, st *store.Store, f *OutputFormatter) error {
				if err := st.DeleteSession(ctx, args[0]); err != nil {
					return sessionLookupError(f, args[0], err)
				}
				return f.Success(DeletedResult{Session: args[0], Deleted: true})
			})
		},
	})

	return cmd
}

// withStore opens the configured database for the duration of fn.
func withStore(opts *RootOptions, cmd *cobra.Command, fn func(context.Context, *store.Store, *OutputFormatter) error) error {
	formatter := newFormatter(opts, cmd)

	if opts.Database == "" {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase,
			"no database configured: use --db or set database in the config file", nil)
	}

	var storeOpts []store.Option
	if opts.IDs != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(opts.IDs))
	}

	formatter.VerboseLog("opening database %s", opts.Database)
	st, err := store.Open(opts.Database, storeOpts...)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, st, formatter)
}

func runSessionStart(ctx context.Context, opts *RootOptions, st *store.Store, f *OutputFormatter, name string) error {
	sess := tuiotime.NewSession(opts.source(), tuiotime.WithLogger(slog.Default()))
	origin := sess.Init()

	rec, err := st.CreateSession(ctx, name, origin)
	if errors.Is(err, store.ErrSessionExists) {
		return f.Fail(ExitFailure, ErrCodeSessionExists, fmt.Sprintf("session %q already exists", name), err)
	}
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeDatabase, "failed to create session", err)
	}

	slog.Info("session started", "name", rec.Name, "id", rec.ID, "origin", origin.String())
	return f.Success(newSessionResult(rec))
}

func runSessionElapsed(ctx context.Context, opts *RootOptions, st *store.Store, f *OutputFormatter, name string) error {
	sess, rec, err := resumeSession(ctx, opts, st, name)
	if err != nil {
		return sessionLookupError(f, name, err)
	}
	return f.Success(ElapsedResult{Session: rec.Name, Elapsed: newTimeResult(sess.Relative())})
}

func runSessionMark(ctx context.Context, opts *RootOptions, st *store.Store, f *OutputFormatter, name, label string) error {
	sess, rec, err := resumeSession(ctx, opts, st, name)
	if err != nil {
		return sessionLookupError(f, name, err)
	}

	mark, err := st.AddMark(ctx, rec.ID, label, sess.Relative())
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeDatabase, "failed to record mark", err)
	}

	slog.Debug("mark recorded", "session", rec.Name, "label", mark.Label, "at", mark.At.String())
	return f.Success(newMarkResult(rec.Name, mark))
}

func runSessionMarks(ctx context.Context, st *store.Store, f *OutputFormatter, name string) error {
	rec, err := st.GetSession(ctx, name)
	if err != nil {
		return sessionLookupError(f, name, err)
	}

	marks, err := st.ListMarks(ctx, rec.ID)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeDatabase, "failed to list marks", err)
	}

	out := MarkList{Session: rec.Name, Marks: make([]MarkResult, len(marks))}
	for i, m := range marks {
		out.Marks[i] = newMarkResult(rec.Name, m)
	}
	return f.Success(out)
}

// resumeSession loads a stored session and resumes its origin on the
// configured clock.
func resumeSession(ctx context.Context, opts *RootOptions, st *store.Store, name string) (*tuiotime.Session, store.SessionRecord, error) {
	rec, err := st.GetSession(ctx, name)
	if err != nil {
		return nil, store.SessionRecord{}, err
	}
	sess := tuiotime.NewSession(opts.source(), tuiotime.WithLogger(slog.Default()))
	sess.Resume(rec.Origin)
	return sess, rec, nil
}

func sessionLookupError(f *OutputFormatter, name string, err error) error {
	if errors.Is(err, store.ErrSessionNotFound) {
		return f.Fail(ExitFailure, ErrCodeSessionNotFound, fmt.Sprintf("session %q not found", name), err)
	}
	return f.Fail(ExitCommandError, ErrCodeDatabase, "failed to load session", err)
}
