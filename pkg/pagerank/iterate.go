package pagerank

import (
	"math"

	"github.com/webgraph-lab/webrank/pkg/models"
)

// convergenceThreshold is the maximum absolute per-page change below
// which a sweep is considered converged.
const convergenceThreshold float64 = 0.001

/*
IteratePagerank computes the rank of each page by repeatedly applying the
pagerank recurrence until convergence:

	rank(p) = (1-alpha)/N + alpha * sum over q of contribution(q -> p)

where a page q linking to p contributes rank(q)/outDegree(q), and a
dangling page contributes rank(q)/N to every page (itself included).

Sweeps are synchronous: every new rank is computed from the previous full
mapping. The loop stops when every page's absolute change is below 0.001,
and the new mapping is returned. Convergence is guaranteed for alpha < 1
by the contraction property of the underlying Markov chain, so no
iteration cap is needed. Each sweep redistributes the whole probability
mass, so the result sums to one without a separate normalization step.
*/
func IteratePagerank(corpus models.Corpus, alpha float64) (models.Distribution, error) {
	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidateAlpha(alpha); err != nil {
		return nil, err
	}

	pages := corpus.Pages()
	pagerank := make(models.Distribution, len(pages))
	for _, page := range pages {
		pagerank[page] = 1 / float64(len(pages))
	}

	for {
		newPagerank := sweep(corpus, pages, pagerank, alpha)

		converged := true
		for _, page := range pages {
			if math.Abs(newPagerank[page]-pagerank[page]) >= convergenceThreshold {
				converged = false
				break
			}
		}

		pagerank = newPagerank
		if converged {
			return pagerank, nil
		}
	}
}

// sweep applies one synchronous update of the pagerank recurrence,
// computing every new rank from the previous full mapping. Pages are
// visited in the fixed order of the pages slice, which keeps the
// floating-point accumulation order stable across runs.
func sweep(corpus models.Corpus, pages []string, pagerank models.Distribution, alpha float64) models.Distribution {
	size := float64(len(pages))
	newPagerank := make(models.Distribution, len(pages))

	for _, page := range pages {
		newRank := (1 - alpha) / size

		for _, other := range pages {
			links := corpus[other]
			switch {
			case links == nil || links.Cardinality() == 0:
				// a dangling page links to every page, itself included
				newRank += alpha * pagerank[other] / size

			case links.Contains(page):
				newRank += alpha * pagerank[other] / float64(links.Cardinality())
			}
		}

		newPagerank[page] = newRank
	}

	return newPagerank
}
