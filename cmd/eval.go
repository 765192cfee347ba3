package cmd

import (
	"github.com/brandkit-studio/brandkit/internal/evalcmd"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Content generation evaluation tools",
		Long: `Evaluation tools for measuring brand-voice consistency of generated content.

Runs generation against a dataset of marketing briefs and reports per-format
terminology consistency scores.`,
	}

	cmd.AddCommand(evalcmd.NewRunCmd())

	return cmd
}
