// Package sym defines canonical glyphs for scale categories and bands.
// These glyphs are stable across CLI tables, charts and documentation.
package sym

import "github.com/teranos/tension/scale"

// Category glyphs, from open to filled as dissonance rises.
const (
	Consonant = "○" // stable, resolved scales
	Color     = "◐" // modal colour, some tension
	High      = "●" // symmetric and exotic scales
)

// Marker glyphs.
const (
	Boundary = "┆" // band boundary on a tension axis
	Top      = "★" // most probable scale at a tension
	Excluded = "·" // scale outside the active band
)

// entry binds a category to its glyph and description.
type entry struct {
	category    scale.Category
	glyph       string
	description string
}

// registry is the canonical mapping between categories and glyphs.
var registry = []entry{
	{scale.Consonant, Consonant, "consonant: stable, resolved scales"},
	{scale.Color, Color, "color: modal colour, some tension"},
	{scale.High, High, "high: symmetric and exotic scales"},
}

// Lookup tables built from the registry at init time.
var (
	glyphToCategory map[string]scale.Category
	categoryToGlyph map[scale.Category]string
)

func init() {
	glyphToCategory = make(map[string]scale.Category, len(registry))
	categoryToGlyph = make(map[scale.Category]string, len(registry))
	for _, e := range registry {
		glyphToCategory[e.glyph] = e.category
		categoryToGlyph[e.category] = e.glyph
	}
}

// Glyph returns the glyph for a category, or "?" for an unknown one.
func Glyph(c scale.Category) string {
	if g, ok := categoryToGlyph[c]; ok {
		return g
	}
	return "?"
}

// FromGlyph returns the category for a glyph.
func FromGlyph(glyph string) (scale.Category, bool) {
	c, ok := glyphToCategory[glyph]
	return c, ok
}

// Describe returns the human-readable description of a category.
func Describe(c scale.Category) string {
	for _, e := range registry {
		if e.category == c {
			return e.description
		}
	}
	return ""
}

// Band renders the glyphs of every category eligible in a band, e.g. "○◐".
func Band(cats []scale.Category) string {
	var s string
	for _, c := range cats {
		s += Glyph(c)
	}
	return s
}
