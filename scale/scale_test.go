package scale

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/tension/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 11, c.Len())

	names := c.Names()
	assert.Equal(t, "E Major", names[0])
	assert.Equal(t, "E Phrygian Dom", names[len(names)-1])

	seen := make(map[string]bool)
	for _, e := range c.Entries() {
		assert.True(t, strings.HasPrefix(e.Name, Root+" "), "name %q missing root", e.Name)
		assert.False(t, seen[e.Name], "duplicate %q", e.Name)
		seen[e.Name] = true
		assert.True(t, e.Category.Valid())
		assert.GreaterOrEqual(t, e.ReferenceTension, 0.0)
		assert.LessOrEqual(t, e.ReferenceTension, 1.0)
	}
}

func TestDefaultCatalogCategories(t *testing.T) {
	c := Default()
	assert.Len(t, c.Filter(Consonant), 6)
	assert.Len(t, c.Filter(Color), 3)
	assert.Len(t, c.Filter(High), 2)
	assert.Len(t, c.Filter(Consonant, Color, High), c.Len())
	assert.Empty(t, c.Filter())
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := Default()
	entries := c.Entries()
	entries[0].Name = "mutated"
	entries[0].ReferenceTension = 0.99

	first, ok := c.Lookup("E Major")
	require.True(t, ok)
	assert.Equal(t, 0.0, first.ReferenceTension)
	assert.Equal(t, "E Major", Default().Names()[0])
}

func TestLookupAndPosition(t *testing.T) {
	c := Default()

	e, ok := c.Lookup("E Harmonic Min")
	require.True(t, ok)
	assert.Equal(t, 0.50, e.ReferenceTension)
	assert.Equal(t, Color, e.Category)
	assert.Equal(t, 7, c.Position("E Harmonic Min"))

	_, ok = c.Lookup("C Major")
	assert.False(t, ok)
	assert.Equal(t, -1, c.Position("C Major"))
}

func TestNewRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty name", []Entry{{Name: "", ReferenceTension: 0.1, Category: Consonant}}},
		{"unknown category", []Entry{{Name: "X", ReferenceTension: 0.1, Category: Category(9)}}},
		{"zero category", []Entry{{Name: "X", ReferenceTension: 0.1}}},
		{"duplicate name", []Entry{
			{Name: "X", ReferenceTension: 0.1, Category: Consonant},
			{Name: "X", ReferenceTension: 0.9, Category: High},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidRequestError(err))
		})
	}
}

func TestNewPreservesOrder(t *testing.T) {
	c, err := New(
		Entry{Name: "b", ReferenceTension: 0.9, Category: High},
		Entry{Name: "a", ReferenceTension: 0.1, Category: Consonant},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, c.Names())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Entry{Name: "", Category: Consonant})
	})
}

func TestZeroCatalog(t *testing.T) {
	var c Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Names())
	_, ok := c.Lookup("E Major")
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories {
		got, err := ParseCategory(cat.String())
		require.NoError(t, err)
		assert.Equal(t, cat, got)
	}

	got, err := ParseCategory("  High ")
	require.NoError(t, err)
	assert.Equal(t, High, got)

	_, err = ParseCategory("dissonant")
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestCategoryJSON(t *testing.T) {
	e, _ := Default().Lookup("E Octatonic")
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"E Octatonic","reference_tension":0.85,"category":"high"}`, string(data))

	_, err = json.Marshal(Entry{Name: "X", Category: Category(0)})
	assert.Error(t, err)
	assert.Equal(t, "unknown", Category(0).String())
}
