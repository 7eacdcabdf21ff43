package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/canonry/internal/catalog"
	"github.com/roach88/canonry/internal/perform"
	"github.com/roach88/canonry/internal/score"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output   string // output file path; empty means stdout
	Database string // catalog path; empty means don't record
	Session  string // fixed session token; empty means generate one
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <score.cue>",
		Short: "Render a score to a note stream",
		Long: `Compile a CUE score and render the merged performance.

Voices are phrased, derived through their canon transforms, mapped through
the score's key and tempo, and merged into a single time-ordered stream.
Output is one note per line (json), a YAML sequence (yaml), or an aligned
table (text).

With --db the rendered performance is also recorded in a catalog database,
keyed by a content hash of the notes, so re-rendering the same score is a
no-op.

Examples:
  canonry render canone.cue
  canonry render canone.cue --format json -o canone.jsonl
  canonry render canone.cue --db ./canonry.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the performance in this catalog database")
	cmd.Flags().StringVar(&opts.Session, "session", "", "session token to record with (default: generated)")

	return cmd
}

func runRender(opts *RenderOptions, scorePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	s, err := score.CompileFile(scorePath)
	if err != nil {
		return outputScoreError(formatter, err)
	}
	formatter.VerboseLog("Compiled %q: %d voice(s)", s.Title, len(s.Voices))

	arr, err := s.Arrangement()
	if err != nil {
		return outputScoreError(formatter, err)
	}

	out := cmd.OutOrStdout()
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to create output file", err)
		}
		defer f.Close()
		out = f
	}

	if err := arr.Perform(rendererFor(opts.Format, out)); err != nil {
		return WrapExitError(ExitCommandError, "render failed", err)
	}

	if opts.Database != "" {
		if err := recordPerformance(opts, s, arr, formatter); err != nil {
			return err
		}
	}
	return nil
}

// rendererFor picks the note renderer matching the output format.
func rendererFor(format string, w io.Writer) perform.Renderer {
	switch format {
	case "json":
		return perform.JSONRenderer{W: w}
	case "yaml":
		return perform.YAMLRenderer{W: w}
	default:
		return perform.TextRenderer{W: w}
	}
}

func recordPerformance(opts *RenderOptions, s *score.Score, arr perform.Arrangement, formatter *OutputFormatter) error {
	var gen catalog.TokenGenerator = catalog.UUIDGenerator{}
	if opts.Session != "" {
		gen = catalog.FixedGenerator{Token: opts.Session}
	}

	p, err := catalog.NewPerformance(s.Title, gen.Generate(), arr.Melody())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to hash performance", err)
	}

	c, err := catalog.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer c.Close()

	if err := c.Put(context.Background(), p); err != nil {
		return WrapExitError(ExitCommandError, "failed to record performance", err)
	}

	// Keep the note stream on stdout clean; the record notice goes to stderr.
	fmt.Fprintf(formatter.ErrWriter, "Recorded performance %s (session %s)\n", p.ID, p.SessionToken)
	return nil
}

// outputScoreError reports a score compile error with source position when
// one is available. Score problems are validation failures (exit code 1).
func outputScoreError(formatter *OutputFormatter, err error) error {
	var ce *score.CompileError
	if errors.As(err, &ce) {
		_ = formatter.Error(ErrCodeScoreInvalid, ce.Error(), nil)
		return NewExitError(ExitFailure, ce.Error())
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, "score compilation failed", err)
}
