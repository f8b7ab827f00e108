package main

import (
	"github.com/spf13/cobra"

	"github.com/webgraph-lab/webrank/pkg/crawler"
	"github.com/webgraph-lab/webrank/pkg/models"
	"github.com/webgraph-lab/webrank/pkg/pagerank"
	"github.com/webgraph-lab/webrank/pkg/render"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <directory> <output>",
		Short: "Export the link graph of a corpus as a Graphviz graph",
		Long: `Render crawls the directory and writes its link graph to the output
file, in the format implied by the extension (.dot, .png, .svg or .jpg).
By default each node is labeled with its iterated rank.

Examples:
  webrank render ./corpus corpus.png
  webrank render --no-ranks ./corpus corpus.dot`,
		Args: cobra.ExactArgs(2),
		RunE: runRenderCmd,
	}

	cmd.Flags().Bool("no-ranks", false, "Label nodes with page names only, without ranks")

	return cmd
}

func runRenderCmd(cmd *cobra.Command, args []string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	corpus, err := crawler.Crawl(args[0])
	if err != nil {
		return err
	}
	config.Log.Info("crawled %d pages from %s", len(corpus), args[0])

	noRanks, err := cmd.Flags().GetBool("no-ranks")
	if err != nil {
		return err
	}

	var ranks models.Distribution
	if !noRanks {
		if ranks, err = pagerank.IteratePagerank(corpus, config.Alpha); err != nil {
			return err
		}
	}

	if err := render.Render(corpus, ranks, args[1]); err != nil {
		return err
	}

	config.Log.Info("rendered %d pages to %s", len(corpus), args[1])
	return nil
}
