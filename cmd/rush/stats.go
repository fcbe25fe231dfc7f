package main

import (
	"fmt"

	"github.com/vecna/rush"
	"github.com/vecna/rush/corpus"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Corpus.Stats(deps.Ctx, deps.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rush.ErrorMessage(err))
		return err
	}

	if !c.Human {
		return writeJSON(deps.Stdout, stats)
	}

	if stats.TotalFiles == 0 {
		fmt.Fprintf(deps.Stdout, "No files found in %s\n", deps.Dir)
		return nil
	}

	for _, f := range stats.Files {
		fmt.Fprintf(deps.Stdout, "%4d  %-40s  %s\n", f.Index, f.Name, corpus.FormatBytes(f.Size))
	}
	fmt.Fprintf(deps.Stdout, "\n%d files, %s (fingerprint %s)\n",
		stats.TotalFiles, corpus.FormatBytes(stats.TotalSize), stats.Fingerprint)
	return nil
}
