// The crawler package builds a Corpus out of a directory of HTML pages,
// by extracting the anchor links of each page.
package crawler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/net/html"

	"github.com/webgraph-lab/webrank/pkg/models"
)

/*
Crawl parses every .html file in the specified directory and returns the
resulting Corpus. Each page is keyed by its filename, and its link set
contains the href targets of its anchor elements that resolve to other
pages of the same directory: self-links and links to pages outside the
corpus are discarded. Files without the .html extension are ignored.
*/
func Crawl(dir string) (models.Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	corpus := make(models.Corpus)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		file, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", entry.Name(), err)
		}

		links, err := ExtractLinks(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}

		linkSet := mapset.NewSet[string]()
		for _, link := range links {
			if link != entry.Name() {
				linkSet.Add(link)
			}
		}
		corpus[entry.Name()] = linkSet
	}

	// only keep links that point to other pages of the corpus
	for _, links := range corpus {
		for _, link := range links.ToSlice() {
			if _, exists := corpus[link]; !exists {
				links.Remove(link)
			}
		}
	}

	return corpus, nil
}

// ExtractLinks() returns the href targets of all the anchor elements of
// an HTML document, in document order. The parser tolerates malformed
// HTML, so an error is only returned when reading fails.
func ExtractLinks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var links []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					links = append(links, attr.Val)
					break
				}
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(doc)

	return links, nil
}
