package cli

import (
	"github.com/spf13/cobra"

	"github.com/NamelessFaceless/xivanalysis/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Job   string
	Limit int
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived reports",
		Long: `List reports in the SQLite archive in the order they were archived.

Examples:
  xivanalysis list --db reports.db
  xivanalysis list --db reports.db --job DNC --limit 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Job, "job", "", "only list reports for this job")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of reports (0 = all)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	st, err := openArchive(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.List(cmd.Context(), store.ListFilter{Job: opts.Job, Limit: opts.Limit})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list reports", err)
	}

	if opts.Format == "json" {
		return opts.formatter(cmd).Success(entries)
	}
	renderEntries(cmd.OutOrStdout(), entries)
	return nil
}
