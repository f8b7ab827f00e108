/*
The models package defines the fundamental structures shared by the rest
of the project.

Corpus:
The immutable directed link graph the ranking algorithms operate on. It is
built once by a loader (see pkg/crawler) and is never mutated afterwards,
so it can be read by multiple ranking calls without synchronization.

Distribution:
A probability distribution over the pages of a Corpus, used both for
one-step transition probabilities and for the final rank of each page.
*/
package models

import (
	"errors"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	// DefaultAlpha is the conventional dampening factor: the probability of
	// following a link instead of teleporting to a random page.
	DefaultAlpha float64 = 0.85

	// DefaultSampleCount is the number of steps of the random-surfer simulation.
	DefaultSampleCount int = 10000
)

// PageSet is the set of pages a page links to.
type PageSet = mapset.Set[string]

// Corpus associates each page with the set of pages it links to.
// A page whose set is empty (or nil) is a dangling node.
type Corpus map[string]PageSet

// NewCorpus() returns a Corpus containing the specified pages, each with
// an empty link set.
func NewCorpus(pages ...string) Corpus {
	corpus := make(Corpus, len(pages))
	for _, page := range pages {
		corpus[page] = mapset.NewSet[string]()
	}
	return corpus
}

// AddLinks() adds page to the corpus (if not already present) and adds
// the specified links to its link set.
func (c Corpus) AddLinks(page string, links ...string) {
	if c[page] == nil {
		c[page] = mapset.NewSet[string]()
	}
	c[page].Append(links...)
}

// Validate() returns an error if the corpus is nil or has no pages.
func (c Corpus) Validate() error {
	if c == nil {
		return ErrNilCorpus
	}
	if len(c) == 0 {
		return ErrEmptyCorpus
	}
	return nil
}

// Pages() returns the page identifiers in lexicographic order.
// Every sweep and every categorical draw iterates pages in this order,
// which keeps results reproducible across runs.
func (c Corpus) Pages() []string {
	pages := make([]string, 0, len(c))
	for page := range c {
		pages = append(pages, page)
	}
	slices.Sort(pages)
	return pages
}

// OutDegree() returns the number of pages the specified page links to.
// Pages absent from the corpus have out-degree zero.
func (c Corpus) OutDegree(page string) int {
	links := c[page]
	if links == nil {
		return 0
	}
	return links.Cardinality()
}

// ValidateAlpha() returns an error if the dampening factor is outside
// the open interval (0,1).
func ValidateAlpha(alpha float64) error {
	if alpha <= 0 || alpha >= 1 {
		return ErrInvalidAlpha
	}
	return nil
}

// ValidateSampleCount() returns an error if the number of samples is not positive.
func ValidateSampleCount(n int) error {
	if n < 1 {
		return ErrInvalidSampleCount
	}
	return nil
}

//--------------------------ERROR-CODES--------------------------

var ErrNilCorpus = errors.New("corpus is nil")
var ErrEmptyCorpus = errors.New("corpus is empty")

var ErrInvalidAlpha = errors.New("alpha should be a number between 0 and 1 (excluded)")
var ErrInvalidSampleCount = errors.New("the number of samples should be greater than zero")
