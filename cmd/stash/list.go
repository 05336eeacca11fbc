package main

import (
	"fmt"

	"github.com/fwojciec/stash"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := stash.RecordFilter{Limit: c.Limit}
	if c.Domain != "" {
		filter.Domain = &c.Domain
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No stashed articles. Use 'stash save' to add one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			r.StashedAt.Format("2006-01-02"), r.Domain, r.Title, r.Destination)
	}

	return nil
}
