package render

// palette assigns each built-in scale a fixed line colour.
var palette = map[string]string{
	"E Major":        "#2ecc71",
	"E Major Pent":   "#27ae60",
	"E Lydian":       "#3498db",
	"E Mixolydian":   "#9b59b6",
	"E Minor Pent":   "#e74c3c",
	"E Dorian":       "#e67e22",
	"E Aeolian":      "#1abc9c",
	"E Harmonic Min": "#f39c12",
	"E Melodic Min":  "#d35400",
	"E Octatonic":    "#8e44ad",
	"E Phrygian Dom": "#c0392b",
}

// cycle colours scales that are not in the palette, by catalog position.
var cycle = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ColorFor returns the line colour for a scale at catalog position i.
func ColorFor(name string, i int) string {
	if c, ok := palette[name]; ok {
		return c
	}
	if i < 0 {
		i = -i
	}
	return cycle[i%len(cycle)]
}
