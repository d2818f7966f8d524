package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/hostcost/internal/platform/httpapi"
	"github.com/vovakirdan/hostcost/internal/pricing"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	totalStyle       = lipgloss.NewStyle().Bold(true)
)

// newTable returns a table with the shared CLI styling.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

// printBreakdown writes an itemized estimate followed by its total.
func printBreakdown(w io.Writer, b pricing.Breakdown) {
	t := newTable("Item", "Qty", "Rate", "Amount")
	t.Row("Base", "", "", pricing.FormatDecimal(b.Flat))
	for _, item := range b.Items {
		t.Row(
			item.Dimension.Label(),
			strconv.FormatUint(item.Quantity, 10),
			pricing.FormatDecimal(item.Rate),
			pricing.FormatDecimal(item.Amount),
		)
	}

	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, totalStyle.Render("Estimated Cost: "+pricing.FormatDecimal(b.Total)))
}

// printBreakdownJSON writes the estimate in the same shape as the HTTP API.
func printBreakdownJSON(w io.Writer, b pricing.Breakdown) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(httpapi.NewEstimateResponse(b))
}

// printRates writes the rate card.
func printRates(w io.Writer, m pricing.Model) {
	t := newTable("Key", "Item", "Rate")
	t.Row("", "Base (flat)", pricing.FormatDecimal(m.Flat))
	for _, d := range pricing.Dimensions() {
		t.Row(d.Key(), d.Label(), pricing.FormatDecimal(m.Rate(d))+" / unit")
	}
	fmt.Fprintln(w, t.String())
}
