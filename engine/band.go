package engine

import (
	"encoding/json"
	"math"

	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/scale"
)

// Band is a contiguous tension range mapped to the categories eligible in it.
// A band covers (previous.Upper, Upper]; the first band is unbounded below and
// the last band is unbounded above.
type Band struct {
	Index      int              `json:"index" yaml:"index" toml:"index"`
	Label      string           `json:"label" yaml:"label" toml:"label"`
	Upper      float64          `json:"upper" yaml:"upper" toml:"upper"`
	Categories []scale.Category `json:"categories" yaml:"categories" toml:"categories"`
}

// MarshalJSON writes an unbounded upper edge as null, since JSON has no
// representation for infinity.
func (b Band) MarshalJSON() ([]byte, error) {
	var upper *float64
	if !math.IsInf(b.Upper, 1) {
		upper = &b.Upper
	}
	return json.Marshal(struct {
		Index      int              `json:"index"`
		Label      string           `json:"label"`
		Upper      *float64         `json:"upper"`
		Categories []scale.Category `json:"categories"`
	}{b.Index, b.Label, upper, b.Categories})
}

// Lower returns the exclusive lower bound of the band, or -Inf for the first.
func (b Band) Lower() float64 {
	if b.Index == 0 {
		return math.Inf(-1)
	}
	return bands[b.Index-1].Upper
}

// Allows reports whether entries of category c are eligible in this band.
func (b Band) Allows(c scale.Category) bool {
	for _, bc := range b.Categories {
		if bc == c {
			return true
		}
	}
	return false
}

// Midpoint returns the centre of the band clipped to [0,1], where renderers
// place the band label.
func (b Band) Midpoint() float64 {
	lo := math.Max(b.Lower(), 0)
	hi := math.Min(b.Upper, 1)
	return (lo + hi) / 2
}

// bands is evaluated in order; the first row whose Upper is >= tension wins.
// Boundary values therefore belong to the lower band, and nothing is clamped:
// negative tensions land in the first row and tensions above 1 in the last.
var bands = []Band{
	{Index: 0, Label: "Consonant", Upper: 0.25, Categories: []scale.Category{scale.Consonant}},
	{Index: 1, Label: "Consonant + Color", Upper: 0.55, Categories: []scale.Category{scale.Consonant, scale.Color}},
	{Index: 2, Label: "Color + High", Upper: 0.80, Categories: []scale.Category{scale.Color, scale.High}},
	{Index: 3, Label: "High", Upper: math.Inf(1), Categories: []scale.Category{scale.High}},
}

// Bands returns a copy of the band table in evaluation order.
func Bands() []Band {
	out := make([]Band, len(bands))
	for i, b := range bands {
		b.Categories = append([]scale.Category(nil), b.Categories...)
		out[i] = b
	}
	return out
}

// Boundaries returns the finite band edges (0.25, 0.55, 0.80). Renderers draw
// their band markers here.
func Boundaries() []float64 {
	out := make([]float64, 0, len(bands)-1)
	for _, b := range bands {
		if !math.IsInf(b.Upper, 1) {
			out = append(out, b.Upper)
		}
	}
	return out
}

// BandFor returns the band containing tension. Every real value matches a
// band; NaN does not and is reported as an invariant violation.
func BandFor(tension float64) (Band, error) {
	for _, b := range bands {
		if tension <= b.Upper {
			b.Categories = append([]scale.Category(nil), b.Categories...)
			return b, nil
		}
	}
	return Band{}, errors.NewInvariantViolation("no band matches tension %v", tension)
}

// SelectBand returns the catalog entries eligible at tension, in catalog order.
func SelectBand(c scale.Catalog, tension float64) ([]scale.Entry, Band, error) {
	b, err := BandFor(tension)
	if err != nil {
		return nil, Band{}, err
	}
	return c.Filter(b.Categories...), b, nil
}
