// Package main provides the entry point for the webrank CLI.
//
// webrank ranks the pages of a web corpus (a directory of HTML pages
// linking to each other) with two independent PageRank algorithms: a
// random-surfer simulation and a deterministic fixed-point iteration.
//
// Usage:
//
//	webrank rank <directory>
//	webrank render <directory> <output>
//
// See --help for all available options.
package main

// main is the entry point for webrank.
func main() {
	Execute()
}
