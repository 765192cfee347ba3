package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brandkit",
		Short: "Marketing content generation service with LLM-powered brand voice calibration",
		Long: `Brandkit turns a marketing topic, an industry, and a set of desired content
formats into a bundle of generated marketing artifacts, optionally including a
synthesized SVG graphic.

Brand voice is calibrated from user-supplied text and image examples, and every
generated artifact carries a terminology consistency score against that voice.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newEvalCmd())

	return cmd
}
