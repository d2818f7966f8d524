package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hostcost/internal/estimate"
	"github.com/vovakirdan/hostcost/internal/platform/prompt"
	"github.com/vovakirdan/hostcost/internal/pricing"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer one question per parameter, then print the estimate",
	Long: `Ask for each parameter in turn instead of opening the full-screen form.
Useful on terminals or multiplexers where the interactive view misbehaves.

Defaults come from the config file. Press Enter to keep a default.

Examples:
  hostcost ask
  hostcost ask --config ./quote.yaml`,
	Args: cobra.NoArgs,
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f := estimate.NewForm(cfg.UI.Defaults)
	if err := prompt.Fill(cmd.Context(), prompt.SurveyDriver{}, f); err != nil {
		if errors.Is(err, prompt.ErrInterrupted) {
			return nil
		}
		return err
	}

	printBreakdown(cmd.OutOrStdout(), pricing.New().Breakdown(estimate.Quantities(f)))
	return nil
}
