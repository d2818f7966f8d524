package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hostcost/internal/pricing"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show the rate card",
	Long:  `Shows the flat base charge and the per-unit rate of every parameter.`,
	Args:  cobra.NoArgs,
	Run:   runRates,
}

func runRates(cmd *cobra.Command, _ []string) {
	printRates(cmd.OutOrStdout(), pricing.New())
}
