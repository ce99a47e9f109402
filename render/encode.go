package render

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/teranos/tension/am"
	"github.com/teranos/tension/errors"
	"gopkg.in/yaml.v3"
)

// Write encodes chart to w in one of the export formats named in am.
// am.FormatTable is not an export format; tables are written by SweepTable.
func Write(w io.Writer, format string, chart Chart) error {
	switch format {
	case am.FormatCSV:
		return WriteCSV(w, chart)
	case am.FormatJSON:
		return WriteJSON(w, chart)
	case am.FormatYAML:
		return WriteYAML(w, chart)
	case am.FormatTOML:
		return WriteTOML(w, chart)
	}
	return errors.WithHint(
		errors.NewInvalidRequestError("unsupported export format %q", format),
		"supported: csv, json, yaml, toml")
}

// WriteCSV writes one row per sample: the tension then each scale's value in
// catalog order, under a header naming the scales.
func WriteCSV(w io.Writer, chart Chart) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(chart.Lines)+1)
	header = append(header, "tension")
	for _, l := range chart.Lines {
		header = append(header, l.Name)
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	row := make([]string, len(header))
	for i, t := range chart.Tensions {
		row[0] = formatFloat(t)
		for j, l := range chart.Lines {
			row[j+1] = formatFloat(l.Values[i])
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write CSV row %d", i)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush CSV")
}

// WriteJSON writes the chart as indented JSON.
func WriteJSON(w io.Writer, chart Chart) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(chart), "failed to encode chart as JSON")
}

// WriteYAML writes the chart as YAML.
func WriteYAML(w io.Writer, chart Chart) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(chart); err != nil {
		return errors.Wrap(err, "failed to encode chart as YAML")
	}
	return errors.Wrap(enc.Close(), "failed to flush YAML")
}

// WriteTOML writes the chart as TOML.
func WriteTOML(w io.Writer, chart Chart) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(chart), "failed to encode chart as TOML")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
