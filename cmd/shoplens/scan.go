package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/shoplens"
	"github.com/fwojciec/shoplens/scrape"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	insight, err := deps.Insights.BuildInsight(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shoplens.ErrorMessage(err))
		return err
	}

	encoded, err := json.MarshalIndent(insight, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(encoded))

	if c.Fingerprint {
		fmt.Fprintf(deps.Stderr, "fingerprint: %s\n", scrape.Fingerprint(insight))
	}

	return nil
}
