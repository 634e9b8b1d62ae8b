// Package main is the entry point for the slpstats CLI tool, which computes
// head-to-head stats for two players across a batch of replays.
package main

import "github.com/pable/go-slp-stats/cmd"

func main() {
	cmd.Execute()
}
