package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/canonry/internal/catalog"
	"github.com/roach88/canonry/internal/melody"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Database string
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <performance-id>",
		Short: "Show a recorded performance",
		Long: `Load a performance from a catalog database and print its notes.

The ID may be the full content hash or any unique prefix of one.

Examples:
  canonry show 4f1c... --db ./canonry.db
  canonry show 4f1c... --db ./canonry.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to catalog database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runShow(opts *ShowOptions, id string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	ctx := context.Background()
	c, err := catalog.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer c.Close()

	full, err := resolveID(ctx, c, id)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to resolve performance", err)
	}

	p, err := c.Get(ctx, full)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load performance", err)
	}

	if formatter.Format == "text" {
		fmt.Fprintf(formatter.Writer, "%s (%s)\n", p.Title, p.ID)
		fmt.Fprintf(formatter.Writer, "session: %s\n\n", p.SessionToken)
	}
	return rendererFor(opts.Format, formatter.Writer).Render(melody.FromNotes(p.Notes...))
}

// resolveID expands a hash prefix to the stored full ID. Full-length IDs
// pass through; ambiguous prefixes are an error.
func resolveID(ctx context.Context, c *catalog.Catalog, id string) (string, error) {
	summaries, err := c.List(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, s := range summaries {
		if s.ID == id {
			return id, nil
		}
		if strings.HasPrefix(s.ID, id) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("performance %s: not found", id)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("performance %s: ambiguous prefix (%d matches)", id, len(matches))
	}
}
