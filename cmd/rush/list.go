package main

import (
	"fmt"

	"github.com/vecna/rush"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	files, err := deps.Corpus.ListWithContent(deps.Ctx, deps.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rush.ErrorMessage(err))
		return err
	}
	return writeJSON(deps.Stdout, files)
}
