package main

import (
	"fmt"

	"github.com/fwojciec/stash"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecordByURL(deps.Ctx, c.URL)
	if err != nil {
		if stash.ErrorCode(err) == stash.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no stashed article for %q. Use 'stash list' to see what is stashed.\n", c.URL)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, record.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q (%s)\n", record.Title, record.URL)
	return nil
}
