package models

import "math"

// Distribution associates each page with a non-negative probability.
// A complete Distribution has exactly one entry per corpus page and its
// values sum to 1.0 within floating-point tolerance.
type Distribution map[string]float64

// Sum() returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, p := range d {
		sum += p
	}
	return sum
}

// Complete() returns a copy of the distribution with an explicit zero for
// every corpus page that is missing. The sampler omits pages that were
// never visited; callers that need one entry per page use this.
func (d Distribution) Complete(corpus Corpus) Distribution {
	complete := make(Distribution, len(corpus))
	for page := range corpus {
		complete[page] = d[page]
	}
	return complete
}

// Distance() computes the L1 distance between two distributions who are
// supposed to have the same keys. If d1 is nil or empty, it returns 0.0
func Distance(d1, d2 Distribution) float64 {
	distance := 0.0
	for key := range d1 {
		distance += math.Abs(d1[key] - d2[key])
	}
	return distance
}
