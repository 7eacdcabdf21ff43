package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/canonry/internal/score"
)

// CheckResult holds score validation results.
type CheckResult struct {
	Valid  bool     `json:"valid" yaml:"valid"`
	Title  string   `json:"title,omitempty" yaml:"title,omitempty"`
	Voices []string `json:"voices,omitempty" yaml:"voices,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <score.cue>",
		Short: "Validate a score without rendering",
		Long: `Compile a CUE score and report problems without rendering notes.

Checks syntax, required fields, scale names, and that every derived voice
names an earlier voice. Faster than render for editing feedback.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, scorePath string, cmd *cobra.Command) error {
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

	// Arrangement catches problems compilation alone cannot see, like a
	// voice deriving from a later voice.
	if _, err := s.Arrangement(); err != nil {
		return outputScoreError(formatter, err)
	}

	result := CheckResult{Valid: true, Title: s.Title}
	for _, v := range s.Voices {
		result.Voices = append(result.Voices, v.Name)
	}

	if formatter.Format == "json" || formatter.Format == "yaml" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Score valid: %s (%d voice(s))\n", s.Title, len(s.Voices))
	for _, name := range result.Voices {
		fmt.Fprintf(formatter.Writer, "  %s\n", name)
	}
	return nil
}
