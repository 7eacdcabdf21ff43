package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/canonry/internal/catalog"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Database string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded performances",
		Long: `List every performance recorded in a catalog database.

Shows the content-addressed ID, title, note count, and total duration of
each performance in recording order.

Examples:
  canonry list --db ./canonry.db
  canonry list --db ./canonry.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to catalog database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	c, err := catalog.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer c.Close()

	summaries, err := c.List(context.Background())
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to list performances", err)
	}

	if formatter.Format == "json" || formatter.Format == "yaml" {
		return formatter.Success(summaries)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(formatter.Writer, "No performances recorded")
		return nil
	}

	tw := tabwriter.NewWriter(formatter.Writer, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tNOTES\tDURATION")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%g\n", shortID(s.ID), s.Title, s.NoteCount, s.TotalDuration)
	}
	return tw.Flush()
}

// shortID abbreviates a content hash for table output.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
