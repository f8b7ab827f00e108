package pagerank

import (
	"errors"
	"math"
	"testing"

	"github.com/webgraph-lab/webrank/pkg/models"
)

func TestIteratePagerankErrors(t *testing.T) {
	testCases := []struct {
		name          string
		corpus        models.Corpus
		alpha         float64
		expectedError error
	}{
		{
			name:          "nil corpus",
			corpus:        nil,
			alpha:         0.85,
			expectedError: models.ErrNilCorpus,
		},
		{
			name:          "empty corpus",
			corpus:        models.NewCorpus(),
			alpha:         0.85,
			expectedError: models.ErrEmptyCorpus,
		},
		{
			name:          "invalid alpha",
			corpus:        models.NewCorpus("a.html"),
			alpha:         -0.85,
			expectedError: models.ErrInvalidAlpha,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			pagerank, err := IteratePagerank(test.corpus, test.alpha)
			if !errors.Is(err, test.expectedError) {
				t.Fatalf("IteratePagerank(): expected %v, got %v", test.expectedError, err)
			}

			if pagerank != nil {
				t.Errorf("IteratePagerank(): expected nil pagerank, got %v", pagerank)
			}
		})
	}
}

func TestIteratePagerank(t *testing.T) {
	const maxExpectedDistance = 0.01

	testCases := []struct {
		name       string
		corpusType string
	}{
		{
			name:       "single page",
			corpusType: "single",
		},
		{
			name:       "all dandling nodes",
			corpusType: "dandlings",
		},
		{
			name:       "triangle graph",
			corpusType: "triangle",
		},
		{
			name:       "backlink graph",
			corpusType: "backlink",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			setup := SetupCorpus(test.corpusType)

			pagerank, err := IteratePagerank(setup.Corpus, 0.85)
			if err != nil {
				t.Fatalf("IteratePagerank(): expected nil, got %v", err)
			}

			distance := models.Distance(setup.ExpectedPagerank, pagerank)
			if distance > maxExpectedDistance {
				t.Errorf("IteratePagerank(): expected distance %v, got %v", maxExpectedDistance, distance)
				t.Errorf("expected %v \ngot %v", setup.ExpectedPagerank, pagerank)
			}
		})
	}
}

// dangling pages split the rank evenly, whatever the dampening factor.
func TestIteratePagerankDandlingPair(t *testing.T) {
	corpus := models.NewCorpus("a.html", "b.html")
	expected := models.Distribution{"a.html": 0.5, "b.html": 0.5}

	for _, alpha := range []float64{0.05, 0.5, 0.85, 0.95} {
		pagerank, err := IteratePagerank(corpus, alpha)
		if err != nil {
			t.Fatalf("IteratePagerank(alpha = %v): expected nil, got %v", alpha, err)
		}

		assertDistribution(t, pagerank, expected, 1e-9)
	}
}

func TestIteratePagerankSumsToOne(t *testing.T) {
	for _, corpusType := range []string{"single", "dandlings", "triangle", "backlink"} {
		t.Run(corpusType, func(t *testing.T) {
			corpus := SetupCorpus(corpusType).Corpus

			pagerank, err := IteratePagerank(corpus, 0.85)
			if err != nil {
				t.Fatalf("IteratePagerank(): expected nil, got %v", err)
			}

			if len(pagerank) != len(corpus) {
				t.Errorf("IteratePagerank(): expected %d entries, got %d", len(corpus), len(pagerank))
			}

			if sum := pagerank.Sum(); math.Abs(sum-1.0) > 1e-6 {
				t.Errorf("IteratePagerank(): expected sum 1.0, got %v", sum)
			}
		})
	}
}

// the returned mapping is a fixed point: one more sweep moves every
// page by less than the convergence threshold.
func TestIteratePagerankFixedPoint(t *testing.T) {
	setup := SetupCorpus("backlink")

	pagerank, err := IteratePagerank(setup.Corpus, 0.85)
	if err != nil {
		t.Fatalf("IteratePagerank(): expected nil, got %v", err)
	}

	next := sweep(setup.Corpus, setup.Corpus.Pages(), pagerank, 0.85)
	for page := range pagerank {
		if diff := math.Abs(next[page] - pagerank[page]); diff >= convergenceThreshold {
			t.Errorf("page %s: expected change below %v, got %v", page, convergenceThreshold, diff)
		}
	}
}
