package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hostcost/internal/core"
	"github.com/vovakirdan/hostcost/internal/estimate"
	"github.com/vovakirdan/hostcost/internal/platform/tui"
	"github.com/vovakirdan/hostcost/internal/pricing"
)

var errNotTerminal = errors.New("stdin is not a terminal; use 'hostcost estimate' with flags instead")

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	rc := core.DefaultRuntimeConfig()
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if cfg.UI.Title != "" {
		rc.Title = cfg.UI.Title
	}

	res, err := tui.Run(estimate.NewForm(cfg.UI.Defaults), rc)
	if err != nil {
		return fmt.Errorf("running estimator: %w", err)
	}

	// Leave the final figure on the normal screen after the alt screen closes.
	fmt.Fprintf(cmd.OutOrStdout(), "Estimated Cost: %s\n", pricing.FormatCost(res.Cost))
	return nil
}
