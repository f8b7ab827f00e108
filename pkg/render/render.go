// The render package exports a Corpus as a Graphviz graph, with each
// page annotated by its rank.
package render

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/webgraph-lab/webrank/pkg/models"
)

// Render writes the corpus to the specified path, in the format implied
// by its extension (.dot, .png, .svg or .jpg). When pagerank is non-nil,
// each node is labeled with its rank.
func Render(corpus models.Corpus, pagerank models.Distribution, path string) error {
	if err := corpus.Validate(); err != nil {
		return err
	}

	format, err := formatOf(path)
	if err != nil {
		return err
	}

	g := graphviz.New()
	defer g.Close()

	graph, err := g.Graph(graphviz.Directed)
	if err != nil {
		return fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	if err := build(graph, corpus, pagerank); err != nil {
		return err
	}

	if err := g.RenderFilename(graph, format, path); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	return nil
}

// build adds one node per page and one edge per link, in lexicographic
// order so the output is stable across runs.
func build(graph *cgraph.Graph, corpus models.Corpus, pagerank models.Distribution) error {
	nodes := make(map[string]*cgraph.Node, len(corpus))
	for _, page := range corpus.Pages() {
		node, err := graph.CreateNode(page)
		if err != nil {
			return fmt.Errorf("failed to create node %s: %w", page, err)
		}

		if pagerank != nil {
			node.SetLabel(fmt.Sprintf("%s\n%.4f", page, pagerank[page]))
		}
		nodes[page] = node
	}

	for _, page := range corpus.Pages() {
		links := corpus[page].ToSlice()
		slices.Sort(links)

		for _, link := range links {
			to, exists := nodes[link]
			if !exists {
				continue
			}

			if _, err := graph.CreateEdge("", nodes[page], to); err != nil {
				return fmt.Errorf("failed to create edge %s -> %s: %w", page, link, err)
			}
		}
	}

	return nil
}

func formatOf(path string) (graphviz.Format, error) {
	switch filepath.Ext(path) {
	case ".dot":
		return graphviz.XDOT, nil
	case ".png":
		return graphviz.PNG, nil
	case ".svg":
		return graphviz.SVG, nil
	case ".jpg":
		return graphviz.JPG, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}
