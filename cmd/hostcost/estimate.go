package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hostcost/internal/estimate"
	"github.com/vovakirdan/hostcost/internal/pricing"
)

var (
	flagQuantities = make(map[pricing.Dimension]*string, pricing.NumDimensions)
	flagJSON       bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Price parameters given as flags",
	Long: `Print an itemized estimate without the interactive form.

Values are read like typed input: non-digit characters are dropped and an
empty or unparseable value counts as 0. Unset parameters are 0.

Examples:
  hostcost estimate --ram 8 --players 20 --servers 1
  hostcost estimate --ram 16 --plugins 25 --json`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	for _, d := range pricing.Dimensions() {
		flagQuantities[d] = estimateCmd.Flags().String(d.Key(), "", d.Label())
	}
	estimateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print JSON instead of a table")
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	values := make(map[string]string, len(flagQuantities))
	for d, v := range flagQuantities {
		values[d.Key()] = *v
	}

	q := estimate.Quantities(estimate.NewForm(values))
	b := pricing.New().Breakdown(q)

	if flagJSON {
		return printBreakdownJSON(cmd.OutOrStdout(), b)
	}
	printBreakdown(cmd.OutOrStdout(), b)
	return nil
}
