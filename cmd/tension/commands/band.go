package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teranos/tension/display"
	"github.com/teranos/tension/engine"
	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/render"
	"github.com/teranos/tension/scale"
	"github.com/teranos/tension/sym"
)

func newBandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "band <tension>",
		Short: "Show the band a tension falls in",
		Long: `Show the band a tension falls in and the scales eligible there.

Boundaries belong to the lower band: 0.25 is Consonant, 0.2500001 is
Consonant + Color.

Examples:
  tension band 0.55        # Consonant + Color
  tension band -- -0.5     # Negative tensions need -- in front`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTension(args[0])
			if err != nil {
				return err
			}

			eligible, band, err := engine.SelectBand(catalog(), t)
			if err != nil {
				return err
			}

			names := make([]string, len(eligible))
			for i, e := range eligible {
				names[i] = e.Name
			}

			out := cmd.OutOrStdout()
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, struct {
					Tension float64     `json:"tension"`
					Band    engine.Band `json:"band"`
					Scales  []string    `json:"scales"`
				}{t, band, names})
			}

			fmt.Fprintf(out, "%s %s (band %d)\n", sym.Band(band.Categories), band.Label, band.Index)
			fmt.Fprintf(out, "scales: %s\n", strings.Join(names, ", "))
			return nil
		},
	}
}

func newBandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "Show the band table",
		Long:  "Show every band with its tension range, eligible categories and chart label.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, struct {
					Bands      []engine.Band `json:"bands"`
					Boundaries []float64     `json:"boundaries"`
				}{engine.Bands(), engine.Boundaries()})
			}
			return render.BandsTable(out)
		},
	}
}

func newCatalogCmd() *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the scale catalog",
		Long: `Show every scale with its reference tension and category, in chart legend order.

Examples:
  tension catalog                     # all eleven scales
  tension catalog --category high     # only the high-tension scales
  tension catalog -c ○ -c ◐ --json    # categories by glyph`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := filterCatalog(catalog(), categories)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, c.Entries())
			}
			return render.CatalogTable(out, c)
		},
	}

	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Only show these categories (name or glyph, repeatable)")
	return cmd
}

// filterCatalog narrows c to the named categories. Each name is a category
// name or its glyph. No names keeps the full catalog.
func filterCatalog(c scale.Catalog, names []string) (scale.Catalog, error) {
	if len(names) == 0 {
		return c, nil
	}
	cats := make([]scale.Category, 0, len(names))
	for _, name := range names {
		if cat, ok := sym.FromGlyph(name); ok {
			cats = append(cats, cat)
			continue
		}
		cat, err := scale.ParseCategory(name)
		if err != nil {
			return scale.Catalog{}, errors.WithHintf(err, "categories: %v", scale.Categories)
		}
		cats = append(cats, cat)
	}
	return scale.New(c.Filter(cats...)...)
}
