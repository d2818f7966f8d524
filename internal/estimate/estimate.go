// Package estimate joins a form and the rate card at the call site. Forms are
// always built from pricing.Labels, so the field order and the rate order
// agree by construction and no length check is needed.
package estimate

import (
	"github.com/vovakirdan/hostcost/internal/form"
	"github.com/vovakirdan/hostcost/internal/pricing"
)

// NewForm returns a form with one field per pricing dimension, seeded from
// values keyed by dimension key (ram, players, ...). Unknown keys are ignored
// and values go through the form's digit filter.
func NewForm(values map[string]string) *form.Form {
	f := form.New(pricing.Labels()...)
	for _, d := range pricing.Dimensions() {
		if v, ok := values[d.Key()]; ok {
			f.SetValue(int(d), v)
		}
	}
	return f
}

// Quantities reads the form's numeric values in dimension order.
func Quantities(f *form.Form) pricing.Quantities {
	return pricing.QuantitiesFrom(f.Values())
}

// Result is a priced snapshot of a form.
type Result struct {
	Quantities pricing.Quantities
	Cost       float64
}

// Price prices the current form values with m.
func Price(f *form.Form, m pricing.Model) Result {
	q := Quantities(f)
	return Result{Quantities: q, Cost: m.CalculateCost(q)}
}
