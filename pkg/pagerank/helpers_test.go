package pagerank

import (
	"math"
	"testing"

	"github.com/webgraph-lab/webrank/pkg/models"
)

// CorpusSetup contains a corpus and its expected pagerank for alpha = 0.85.
type CorpusSetup struct {
	Corpus           models.Corpus
	ExpectedPagerank models.Distribution
}

// SetupCorpus() returns a test corpus of the specified type together
// with its expected pagerank.
func SetupCorpus(corpusType string) CorpusSetup {
	switch corpusType {
	case "single":
		// one dangling page
		return CorpusSetup{
			Corpus:           models.NewCorpus("a.html"),
			ExpectedPagerank: models.Distribution{"a.html": 1.0},
		}

	case "dandlings":
		// five pages, no links at all
		return CorpusSetup{
			Corpus: models.NewCorpus("0.html", "1.html", "2.html", "3.html", "4.html"),
			ExpectedPagerank: models.Distribution{
				"0.html": 0.2, "1.html": 0.2, "2.html": 0.2, "3.html": 0.2, "4.html": 0.2,
			},
		}

	case "triangle":
		// 0 --> 1 --> 2 --> 0
		corpus := models.NewCorpus()
		corpus.AddLinks("0.html", "1.html")
		corpus.AddLinks("1.html", "2.html")
		corpus.AddLinks("2.html", "0.html")

		return CorpusSetup{
			Corpus: corpus,
			ExpectedPagerank: models.Distribution{
				"0.html": 1.0 / 3, "1.html": 1.0 / 3, "2.html": 1.0 / 3,
			},
		}

	case "backlink":
		// 1 --> 2 <--> 3
		corpus := models.NewCorpus()
		corpus.AddLinks("1.html", "2.html")
		corpus.AddLinks("2.html", "3.html")
		corpus.AddLinks("3.html", "2.html")

		return CorpusSetup{
			Corpus: corpus,
			ExpectedPagerank: models.Distribution{
				"1.html": 0.05, "2.html": 0.4864864865, "3.html": 0.4635135135,
			},
		}

	default:
		return CorpusSetup{}
	}
}

// assertDistribution fails the test if the two distributions differ by
// more than tolerance on any page, or have different keys.
func assertDistribution(t *testing.T, got, expected models.Distribution, tolerance float64) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("expected %d entries, got %d: %v", len(expected), len(got), got)
	}

	for page, expectedRank := range expected {
		rank, exists := got[page]
		if !exists {
			t.Fatalf("page %s is missing: %v", page, got)
		}

		if math.Abs(rank-expectedRank) > tolerance {
			t.Errorf("page %s: expected %v, got %v", page, expectedRank, rank)
		}
	}
}
