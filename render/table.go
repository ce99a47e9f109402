package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pterm/pterm"
	"github.com/teranos/tension/engine"
	"github.com/teranos/tension/scale"
	"github.com/teranos/tension/sweep"
	"github.com/teranos/tension/sym"
)

// barWidth is the width of a 100% bar in DistributionTable.
const barWidth = 30

// DistributionTable writes one row per catalog entry for a single query:
// category glyph, name, reference tension, probability and a bar.
// Entries outside the active band are dimmed with the excluded glyph.
func DistributionTable(w io.Writer, c scale.Catalog, r engine.Result, percent bool) error {
	top, _ := r.Top(c)

	data := pterm.TableData{{"", "Scale", "Ref", "P", ""}}
	for _, e := range c.Entries() {
		p := r.Distribution[e.Name]
		mark := sym.Glyph(e.Category)
		if !r.Band.Allows(e.Category) {
			mark = sym.Excluded
		}
		name := e.Name
		if name == top {
			name += " " + sym.Top
		}
		data = append(data, []string{
			mark,
			name,
			fmt.Sprintf("%.2f", e.ReferenceTension),
			formatProbability(p, percent),
			bar(p),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "tension %s  band %s %s\n%s\n",
		formatFloat(r.Tension), sym.Band(r.Band.Categories), r.Band.Label, out)
	return err
}

// SweepTable writes one row per sample: tension, band and the most probable
// scale with its probability.
func SweepTable(w io.Writer, c scale.Catalog, samples []sweep.Sample, percent bool) error {
	data := pterm.TableData{{"Tension", "Band", "Top scale", "P"}}
	for _, s := range samples {
		band, err := engine.BandFor(s.Tension)
		if err != nil {
			return err
		}
		top, p := engine.Result{Distribution: s.Distribution}.Top(c)
		data = append(data, []string{
			fmt.Sprintf("%.3f", s.Tension),
			sym.Band(band.Categories) + " " + band.Label,
			top,
			formatProbability(p, percent),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// BandsTable writes the band table with each band's range and categories.
func BandsTable(w io.Writer) error {
	data := pterm.TableData{{"#", "Range", "Categories", "Label"}}
	for _, b := range engine.Bands() {
		cats := make([]string, len(b.Categories))
		for i, cat := range b.Categories {
			cats[i] = sym.Glyph(cat) + " " + cat.String()
		}
		data = append(data, []string{
			fmt.Sprintf("%d", b.Index),
			bandRange(b),
			strings.Join(cats, ", "),
			b.Label,
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// CatalogTable writes the scale catalog in order.
func CatalogTable(w io.Writer, c scale.Catalog) error {
	data := pterm.TableData{{"", "Scale", "Ref", "Category"}}
	for _, e := range c.Entries() {
		data = append(data, []string{
			sym.Glyph(e.Category),
			e.Name,
			fmt.Sprintf("%.2f", e.ReferenceTension),
			e.Category.String(),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}
	for _, cat := range scale.Categories {
		if _, err := fmt.Fprintf(w, "%s %s\n", sym.Glyph(cat), sym.Describe(cat)); err != nil {
			return err
		}
	}
	return nil
}

// Bars writes a horizontal bar chart of the eligible scales in a result,
// in percent.
func Bars(w io.Writer, c scale.Catalog, r engine.Result) error {
	var bars pterm.Bars
	for _, e := range c.Entries() {
		if !r.Band.Allows(e.Category) {
			continue
		}
		bars = append(bars, pterm.Bar{
			Label: e.Name,
			Value: int(math.Round(r.Distribution[e.Name] * 100)),
		})
	}

	out, err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func bandRange(b engine.Band) string {
	lo, hi := b.Lower(), b.Upper
	switch {
	case math.IsInf(lo, -1):
		return fmt.Sprintf("t <= %.2f", hi)
	case math.IsInf(hi, 1):
		return fmt.Sprintf("t > %.2f", lo)
	default:
		return fmt.Sprintf("%.2f < t <= %.2f", lo, hi)
	}
}

func formatProbability(p float64, percent bool) string {
	if percent {
		return fmt.Sprintf("%.1f%%", p*100)
	}
	return fmt.Sprintf("%.4f", p)
}

func bar(p float64) string {
	n := int(math.Round(p * barWidth))
	return strings.Repeat("█", n)
}
