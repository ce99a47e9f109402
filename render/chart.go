// Package render turns sweep results into chart data for plotting tools and
// into terminal tables.
//
// A Chart carries everything a plotter needs to reproduce the tension chart:
// one line per scale (x = tension, y = probability, optionally in percent),
// the band boundary markers owned by the engine and the band labels.
package render

import (
	"github.com/teranos/tension/engine"
	"github.com/teranos/tension/scale"
	"github.com/teranos/tension/sweep"
)

// Chart text and limits.
const (
	Title  = "Scale Selection Probability by Tension"
	XLabel = "Tension Value"
	YLabel = "Probability (%)"

	// labelY is where band labels sit on the percent axis.
	labelY = 52
	// yMax is the top of the percent axis.
	yMax = 55
)

// Line is one scale's series.
type Line struct {
	Name     string         `json:"name" yaml:"name" toml:"name"`
	Category scale.Category `json:"category" yaml:"category" toml:"category"`
	Color    string         `json:"color" yaml:"color" toml:"color"`
	Values   []float64      `json:"values" yaml:"values" toml:"values"`
}

// BandLabel is text placed over a band.
type BandLabel struct {
	X    float64 `json:"x" yaml:"x" toml:"x"`
	Y    float64 `json:"y" yaml:"y" toml:"y"`
	Text string  `json:"text" yaml:"text" toml:"text"`
}

// Chart is the complete, renderer-agnostic description of a tension chart.
type Chart struct {
	Title    string      `json:"title" yaml:"title" toml:"title"`
	XLabel   string      `json:"x_label" yaml:"x_label" toml:"x_label"`
	YLabel   string      `json:"y_label" yaml:"y_label" toml:"y_label"`
	XLim     [2]float64  `json:"x_lim" yaml:"x_lim" toml:"x_lim"`
	YLim     [2]float64  `json:"y_lim" yaml:"y_lim" toml:"y_lim"`
	Percent  bool        `json:"percent" yaml:"percent" toml:"percent"`
	Tensions []float64   `json:"tensions" yaml:"tensions" toml:"tensions"`
	Lines    []Line      `json:"lines" yaml:"lines" toml:"lines"`
	Markers  []float64   `json:"markers" yaml:"markers" toml:"markers"`
	Labels   []BandLabel `json:"labels" yaml:"labels" toml:"labels"`
}

// NewChart builds a chart from sweep samples. With percent set, values are
// scaled to 0-100 for a percent axis; otherwise they stay in
// [0,1] and the y limit and label positions are scaled to match.
func NewChart(c scale.Catalog, samples []sweep.Sample, percent bool) Chart {
	tensions, series := sweep.Pivot(c, samples)

	factor, ylabel := 1.0, "Probability"
	if percent {
		factor, ylabel = 100, YLabel
	}

	lines := make([]Line, len(series))
	for i, s := range series {
		values := make([]float64, len(s.Values))
		for j, v := range s.Values {
			values[j] = v * factor
		}
		lines[i] = Line{Name: s.Name, Category: s.Category, Color: ColorFor(s.Name, i), Values: values}
	}

	bands := engine.Bands()
	labels := make([]BandLabel, len(bands))
	for i, b := range bands {
		labels[i] = BandLabel{X: b.Midpoint(), Y: labelY * factor / 100, Text: b.Label}
	}

	return Chart{
		Title:    Title,
		XLabel:   XLabel,
		YLabel:   ylabel,
		XLim:     [2]float64{0, 1},
		YLim:     [2]float64{0, yMax * factor / 100},
		Percent:  percent,
		Tensions: tensions,
		Lines:    lines,
		Markers:  engine.Boundaries(),
		Labels:   labels,
	}
}
