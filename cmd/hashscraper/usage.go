package main

import (
	"fmt"

	"github.com/bamchi/hashscraper"
)

// Run executes the usage command.
func (c *UsageCmd) Run(deps *Dependencies) error {
	usage, err := deps.Usage.Usage(deps.Ctx)
	if err != nil {
		fmt.Fprintln(deps.Stderr, hashscraper.FormatError(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, hashscraper.FormatUsage(usage))
	return nil
}

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "hashscraper %s\n", Version)
	return nil
}
