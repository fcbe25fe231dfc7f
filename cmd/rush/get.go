package main

import (
	"fmt"

	"github.com/vecna/rush"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	doc, err := deps.Corpus.GetOne(deps.Ctx, deps.Dir, c.Index)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rush.ErrorMessage(err))
		if rush.ErrorCode(err) == rush.EOUTOFRANGE {
			fmt.Fprintln(deps.Stderr, "Hint: Run 'rush stats --human' to see available positions")
		}
		return err
	}

	if !c.Markdown {
		return writeJSON(deps.Stdout, doc)
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n", doc.Name)
	if len(doc.Posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, rush.FormatPosts(doc.Posts))
	return nil
}
