// Package scale defines the fixed catalog of named scales the tension engine
// chooses between.
//
// A catalog is an ordered, immutable list of entries. Order only matters for
// presentation (legend and plot order); the engine never depends on it except
// to break ties deterministically.
package scale

import (
	"strings"

	"github.com/teranos/tension/errors"
)

// Category is a coarse dissonance grouping for a scale.
type Category int

const (
	Consonant Category = iota + 1
	Color
	High
)

// Categories lists every valid category in ascending dissonance.
var Categories = []Category{Consonant, Color, High}

func (c Category) String() string {
	switch c {
	case Consonant:
		return "consonant"
	case Color:
		return "color"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	return c >= Consonant && c <= High
}

// MarshalText implements encoding.TextMarshaler so categories render as names
// in JSON, YAML and TOML output.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.NewInvalidRequestError("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

// ParseCategory parses the lowercase category name.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "consonant":
		return Consonant, nil
	case "color":
		return Color, nil
	case "high":
		return High, nil
	}
	return 0, errors.NewInvalidRequestError("unknown category %q (expected consonant, color or high)", s)
}

// Entry is a single named scale.
type Entry struct {
	Name             string   `json:"name" yaml:"name" toml:"name"`
	ReferenceTension float64  `json:"reference_tension" yaml:"reference_tension" toml:"reference_tension"`
	Category         Category `json:"category" yaml:"category" toml:"category"`
}

// Catalog is an ordered set of uniquely named entries. The zero value is an
// empty catalog. Catalogs are never mutated after construction.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from entries, preserving their order.
// Names must be non-empty and unique, and every category must be valid.
func New(entries ...Entry) (Catalog, error) {
	c := Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return Catalog{}, errors.NewInvalidRequestError("entry %d has an empty name", i)
		}
		if !e.Category.Valid() {
			return Catalog{}, errors.NewInvalidRequestError("entry %q has unknown category %d", e.Name, int(e.Category))
		}
		if _, dup := c.index[e.Name]; dup {
			return Catalog{}, errors.NewInvalidRequestError("duplicate scale name %q", e.Name)
		}
		c.index[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for package-level tables.
func MustNew(entries ...Entry) Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of entries.
func (c Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in catalog order.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns the scale names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry with the given name.
func (c Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.index[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Position returns the catalog index of name, or -1.
func (c Catalog) Position(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	return -1
}

// Filter returns the entries whose category is in cats, in catalog order.
func (c Catalog) Filter(cats ...Category) []Entry {
	var out []Entry
	for _, e := range c.entries {
		for _, cat := range cats {
			if e.Category == cat {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
