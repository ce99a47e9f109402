package engine

import (
	"math"
	"sort"

	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/scale"
)

// Smoothing is added to every distance before inversion. It keeps an exact
// match finite and caps any single weight at 1/Smoothing.
const Smoothing = 0.1

// MaxWeight is the weight of a scale whose reference tension equals the query.
const MaxWeight = 1 / Smoothing

// Weight returns the inverse-distance weight of a scale with the given
// reference tension at tension.
func Weight(reference, tension float64) float64 {
	return 1 / (math.Abs(reference-tension) + Smoothing)
}

// Weigh computes the inverse-distance weight of every entry at tension.
// An empty entry set means the band table let a tension through with nothing
// eligible, which is an invariant violation rather than a recoverable error.
func Weigh(entries []scale.Entry, tension float64) (map[string]float64, error) {
	if len(entries) == 0 {
		return nil, errors.NewInvariantViolation("no eligible scales at tension %v", tension)
	}
	weights := make(map[string]float64, len(entries))
	for _, e := range entries {
		weights[e.Name] = Weight(e.ReferenceTension, tension)
	}
	return weights, nil
}

// Normalize divides every weight by the total so the result sums to 1.
// The total is accumulated in name order so repeated calls agree bit for bit.
func Normalize(weights map[string]float64) (map[string]float64, error) {
	keys := make([]string, 0, len(weights))
	for name := range weights {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	var total float64
	for _, name := range keys {
		total += weights[name]
	}
	if len(weights) == 0 || total <= 0 {
		return nil, errors.NewInvariantViolation("cannot normalize %d weights with total %v", len(weights), total)
	}
	probs := make(map[string]float64, len(weights))
	for name, w := range weights {
		probs[name] = w / total
	}
	return probs, nil
}
