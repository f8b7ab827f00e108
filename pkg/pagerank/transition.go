/*
The pagerank package computes the relative importance of the pages of a
Corpus with two independent algorithms:

- SamplePagerank, a random-surfer simulation that estimates the rank of a
page as the frequency of its visits;

- IteratePagerank, a deterministic fixed-point iteration of the pagerank
recurrence.

Both approximate the stationary distribution of the same Markov chain,
defined by TransitionModel, and agree within a small numerical tolerance.
*/
package pagerank

import (
	"github.com/webgraph-lab/webrank/pkg/models"
)

/*
TransitionModel returns the probability distribution over which page a
random surfer on the specified page visits next.

With probability alpha, the surfer follows one of the page's links chosen
uniformly at random; with probability 1-alpha it teleports to any page of
the corpus. A dangling page (no outgoing links) yields the uniform
distribution over the whole corpus.

A page that is not in the corpus at all is treated exactly like a
dangling page. This permissive fallback is intentional and relied upon;
it is pinned by tests.
*/
func TransitionModel(corpus models.Corpus, page string, alpha float64) (models.Distribution, error) {
	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidateAlpha(alpha); err != nil {
		return nil, err
	}

	size := float64(len(corpus))
	dist := make(models.Distribution, len(corpus))

	links := corpus[page]
	if links == nil || links.Cardinality() == 0 {
		for p := range corpus {
			dist[p] = 1 / size
		}
		return dist, nil
	}

	// distribute alpha equally among the linked pages
	k := float64(links.Cardinality())
	for _, link := range links.ToSlice() {
		dist[link] = alpha / k
	}

	// distribute the remaining 1-alpha among all pages
	for p := range corpus {
		dist[p] += (1 - alpha) / size
	}

	return dist, nil
}
