// Package engine turns a tension value into a probability distribution over a
// scale catalog.
//
// A query runs three steps:
//
//	SelectBand  pick the entries whose category is eligible at the tension
//	Weigh       give each eligible entry weight 1/(|ref - t| + Smoothing)
//	Project     normalize and spread the result over the whole catalog,
//	            with 0 for every ineligible entry
//
// Everything here is a pure function of (catalog, tension): no logging, no
// I/O and no shared mutable state, so callers may query concurrently.
package engine

import (
	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/scale"
)

// Distribution maps every catalog name to its probability.
type Distribution map[string]float64

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	var total float64
	for _, p := range d {
		total += p
	}
	return total
}

// Project spreads probs over the full catalog. Names missing from probs get
// exactly 0, so the key set always equals the catalog's name set.
func Project(c scale.Catalog, probs map[string]float64) Distribution {
	d := make(Distribution, c.Len())
	for _, name := range c.Names() {
		d[name] = probs[name]
	}
	return d
}

// Result is the full outcome of one tension query.
type Result struct {
	Tension      float64            `json:"tension" yaml:"tension" toml:"tension"`
	Band         Band               `json:"band" yaml:"band" toml:"band"`
	Weights      map[string]float64 `json:"weights" yaml:"weights" toml:"weights"`
	Distribution Distribution       `json:"distribution" yaml:"distribution" toml:"distribution"`
}

// Evaluate runs the band, weight and projection steps for tension.
func Evaluate(c scale.Catalog, tension float64) (Result, error) {
	eligible, band, err := SelectBand(c, tension)
	if err != nil {
		return Result{}, err
	}
	weights, err := Weigh(eligible, tension)
	if err != nil {
		return Result{}, errors.Wrapf(err, "band %q", band.Label)
	}
	probs, err := Normalize(weights)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Tension:      tension,
		Band:         band,
		Weights:      weights,
		Distribution: Project(c, probs),
	}, nil
}

// Probabilities returns the distribution over c at tension.
func Probabilities(c scale.Catalog, tension float64) (Distribution, error) {
	r, err := Evaluate(c, tension)
	if err != nil {
		return nil, err
	}
	return r.Distribution, nil
}

// Top returns the most probable scale. Ties go to the entry that comes first
// in the catalog.
func (r Result) Top(c scale.Catalog) (string, float64) {
	var (
		best  string
		bestP = -1.0
	)
	for _, name := range c.Names() {
		if p := r.Distribution[name]; p > bestP {
			best, bestP = name, p
		}
	}
	if best == "" {
		return "", 0
	}
	return best, bestP
}
