// Package pricing implements the fixed linear rate card used to estimate
// hosting cost from the form's quantities.
//
// Arithmetic is done in shopspring/decimal so sums of rates such as 0.1 and
// 0.2 stay exact; results are converted to float64 once at the edge.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Dimension identifies one priced quantity. The order of the constants is the
// order of the form fields.
type Dimension int

const (
	RAM Dimension = iota
	Players
	Worlds
	Plugins
	Mods
	Servers

	// NumDimensions is the number of priced quantities.
	NumDimensions
)

var dimensionLabels = [NumDimensions]string{
	RAM:     "RAM (GB)",
	Players: "Player Slots",
	Worlds:  "Worlds",
	Plugins: "Plugins",
	Mods:    "Mods",
	Servers: "Servers",
}

var dimensionKeys = [NumDimensions]string{
	RAM:     "ram",
	Players: "players",
	Worlds:  "worlds",
	Plugins: "plugins",
	Mods:    "mods",
	Servers: "servers",
}

// Label returns the human-readable form label.
func (d Dimension) Label() string {
	if d < 0 || d >= NumDimensions {
		return "Unknown"
	}
	return dimensionLabels[d]
}

// Key returns the short machine name used by CLI flags and query parameters.
func (d Dimension) Key() string {
	if d < 0 || d >= NumDimensions {
		return "unknown"
	}
	return dimensionKeys[d]
}

// String implements fmt.Stringer.
func (d Dimension) String() string {
	return d.Key()
}

// Dimensions returns every dimension in form order.
func Dimensions() []Dimension {
	out := make([]Dimension, NumDimensions)
	for i := range out {
		out[i] = Dimension(i)
	}
	return out
}

// Labels returns the form labels in dimension order.
func Labels() []string {
	out := make([]string, NumDimensions)
	copy(out, dimensionLabels[:])
	return out
}

// Quantities holds one non-negative value per dimension.
type Quantities [NumDimensions]uint64

// QuantitiesFrom copies the leading values into a Quantities.
// Missing values stay 0 and extra values are dropped.
func QuantitiesFrom(values []uint64) Quantities {
	var q Quantities
	copy(q[:], values)
	return q
}

// Model is the rate card: a flat base charge plus one rate per dimension.
type Model struct {
	Flat  decimal.Decimal
	Rates [NumDimensions]decimal.Decimal
}

// New returns the standard rate card.
func New() Model {
	return Model{
		Flat: decimal.NewFromFloat(2.0),
		Rates: [NumDimensions]decimal.Decimal{
			RAM:     decimal.NewFromFloat(0.5),
			Players: decimal.NewFromFloat(0.1),
			Worlds:  decimal.NewFromFloat(0.2),
			Plugins: decimal.NewFromFloat(0.3),
			Mods:    decimal.NewFromFloat(0.4),
			Servers: decimal.NewFromFloat(1.5),
		},
	}
}

// Rate returns the per-unit rate for d.
func (m Model) Rate(d Dimension) decimal.Decimal {
	if d < 0 || d >= NumDimensions {
		return decimal.Zero
	}
	return m.Rates[d]
}

// CalculateCost returns flat + Σ rate[i]*q[i].
func (m Model) CalculateCost(q Quantities) float64 {
	return m.total(q).InexactFloat64()
}

func (m Model) total(q Quantities) decimal.Decimal {
	total := m.Flat
	for i, rate := range m.Rates {
		total = total.Add(rate.Mul(decimal.NewFromUint64(q[i])))
	}
	return total
}

// LineItem is the contribution of one dimension to the total.
type LineItem struct {
	Dimension Dimension
	Quantity  uint64
	Rate      decimal.Decimal
	Amount    decimal.Decimal
}

// Breakdown itemizes a cost calculation.
type Breakdown struct {
	Flat  decimal.Decimal
	Items []LineItem
	Total decimal.Decimal
}

// Breakdown itemizes the cost of q. Its Total equals CalculateCost(q).
func (m Model) Breakdown(q Quantities) Breakdown {
	b := Breakdown{
		Flat:  m.Flat,
		Items: make([]LineItem, 0, NumDimensions),
		Total: m.Flat,
	}
	for _, d := range Dimensions() {
		amount := m.Rates[d].Mul(decimal.NewFromUint64(q[d]))
		b.Items = append(b.Items, LineItem{
			Dimension: d,
			Quantity:  q[d],
			Rate:      m.Rates[d],
			Amount:    amount,
		})
		b.Total = b.Total.Add(amount)
	}
	return b
}

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "£"

// FormatCost renders v as a currency amount with two decimals.
func FormatCost(v float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol, v)
}

// FormatDecimal renders d as a currency amount with two decimals.
func FormatDecimal(d decimal.Decimal) string {
	return CurrencySymbol + d.StringFixed(2)
}
