package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NamelessFaceless/xivanalysis/internal/store"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <report-id>",
		Short: "Print an archived report",
		Long: `Print a report from the SQLite archive. The id may be a report id, an
archive row id, or a unique report id prefix of at least eight characters.

Examples:
  xivanalysis show 83e5cd07973a --db reports.db
  xivanalysis show 83e5cd07973a --db reports.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runShow(opts *RootOptions, id string, cmd *cobra.Command) error {
	st, err := openArchive(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	rep, err := st.Read(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			opts.formatter(cmd).Error("NOT_FOUND", err.Error(), nil)
			return WrapExitError(ExitFailure, "report not found", err)
		}
		return WrapExitError(ExitCommandError, "failed to read report", err)
	}

	if opts.Format == "json" {
		return opts.formatter(cmd).Success(rep)
	}
	renderReport(cmd.OutOrStdout(), rep)
	return nil
}

// openArchive opens the archive named by --db or XIVA_DB.
func openArchive(opts *RootOptions) (*store.Store, error) {
	if opts.DB == "" {
		return nil, NewExitError(ExitCommandError, "--db (or XIVA_DB) is required")
	}
	st, err := store.Open(opts.DB)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to open archive %s", opts.DB), err)
	}
	return st, nil
}
