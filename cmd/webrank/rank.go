package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webgraph-lab/webrank/pkg/crawler"
	"github.com/webgraph-lab/webrank/pkg/models"
	"github.com/webgraph-lab/webrank/pkg/pagerank"
)

// NewRankCmd creates the rank command.
func NewRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <directory>",
		Short: "Rank the pages of a corpus with both PageRank algorithms",
		Long: `Rank crawls the anchor links of every HTML page in the directory and
computes the rank of each page twice: by sampling (random-surfer
simulation) and by iteration (fixed point of the PageRank recurrence).

Examples:
  # Rank a corpus with the default parameters
  webrank rank ./corpus

  # Use a different dampening factor and more samples
  webrank rank -d 0.90 -n 100000 ./corpus

Defaults can also be set with the WEBRANK_DAMPING and WEBRANK_SAMPLES
environment variables (or a .env file); flags take precedence.`,
		Args: cobra.ExactArgs(1),
		RunE: runRankCmd,
	}

	cmd.Flags().Float64P("damping", "d", models.DefaultAlpha,
		"Dampening factor, in (0,1)")
	cmd.Flags().IntP("samples", "n", models.DefaultSampleCount,
		"Number of steps of the random-surfer simulation")

	return cmd
}

func runRankCmd(cmd *cobra.Command, args []string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("damping") {
		if config.Alpha, err = cmd.Flags().GetFloat64("damping"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("samples") {
		if config.Samples, err = cmd.Flags().GetInt("samples"); err != nil {
			return err
		}
	}

	corpus, err := crawler.Crawl(args[0])
	if err != nil {
		return err
	}
	config.Log.Info("crawled %d pages from %s", len(corpus), args[0])

	sampled, err := pagerank.SamplePagerank(corpus, config.Alpha, config.Samples)
	if err != nil {
		return err
	}
	printRanks(cmd, fmt.Sprintf("PageRank Results from Sampling (n = %d)", config.Samples), corpus, sampled)

	iterated, err := pagerank.IteratePagerank(corpus, config.Alpha)
	if err != nil {
		return err
	}
	printRanks(cmd, "PageRank Results from Iteration", corpus, iterated)

	return nil
}

// printRanks prints one block of results sorted by page. Pages the
// sampler never visited are printed with rank 0.
func printRanks(cmd *cobra.Command, header string, corpus models.Corpus, ranks models.Distribution) {
	out := cmd.OutOrStdout()
	complete := ranks.Complete(corpus)

	fmt.Fprintln(out, header)
	for _, page := range corpus.Pages() {
		fmt.Fprintf(out, "  %s: %.4f\n", page, complete[page])
	}
}
