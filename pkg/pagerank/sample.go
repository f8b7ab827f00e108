package pagerank

import (
	"math/rand"
	"time"

	"github.com/webgraph-lab/webrank/pkg/models"
)

/*
SamplePagerank estimates the rank of each page by simulating a random
surfer for n steps.

The surfer starts on a page chosen uniformly at random, and at each step
draws the next page from the TransitionModel distribution of the current
one. The rank of a page is the fraction of draws that landed on it, so
the returned values are multiples of 1/n and sum to one. Pages that were
never visited are absent from the result; use Distribution.Complete to
fill them with zeros.

No convergence test is performed: all n steps are always run. A larger n
reduces the variance of the estimate.
*/
func SamplePagerank(corpus models.Corpus, alpha float64, n int) (models.Distribution, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return samplePagerank(corpus, alpha, n, rng)
}

// samplePagerank implements SamplePagerank. It accepts a random number
// generator for reproducibility in tests.
func samplePagerank(corpus models.Corpus, alpha float64, n int, rng *rand.Rand) (models.Distribution, error) {
	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	if err := models.ValidateSampleCount(n); err != nil {
		return nil, err
	}

	pages := corpus.Pages()
	currentPage := pages[rng.Intn(len(pages))]

	visits := make(map[string]int, len(pages))
	for i := 0; i < n; i++ {
		dist, err := TransitionModel(corpus, currentPage, alpha)
		if err != nil {
			return nil, err
		}

		currentPage = drawPage(pages, dist, rng.Float64())
		visits[currentPage]++
	}

	// normalize the visit counts
	pagerank := make(models.Distribution, len(visits))
	for page, count := range visits {
		pagerank[page] = float64(count) / float64(n)
	}

	return pagerank, nil
}

/*
drawPage draws one page from the categorical distribution dist by
cumulative-weight inversion of the uniform draw r in [0,1).

Pages are accumulated in lexicographic order, so the mapping from r to
the drawn page is stable across runs. The last page is returned when
floating-point rounding leaves r above the final cumulative weight.
*/
func drawPage(pages []string, dist models.Distribution, r float64) string {
	var cumulative float64
	for _, page := range pages {
		cumulative += dist[page]
		if r < cumulative {
			return page
		}
	}

	return pages[len(pages)-1]
}
