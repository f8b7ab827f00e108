package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for webrank.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webrank",
		Short: "PageRank over a directory of HTML pages",
		Long: `webrank computes the relative importance of the pages of a web corpus.

A corpus is a directory of HTML pages; each page is a node of a directed
graph whose edges are the anchor links between pages. The rank of each
page is estimated twice, with a random-surfer simulation and with a
fixed-point iteration, and the two results agree within a small
numerical tolerance.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewRankCmd())
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
