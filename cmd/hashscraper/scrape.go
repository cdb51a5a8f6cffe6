package main

import (
	"encoding/json"
	"fmt"

	"github.com/bamchi/hashscraper"
	"github.com/bamchi/hashscraper/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if err := scrape.ValidateURLs(c.URLs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hashscraper.ErrorMessage(err))
		return err
	}

	wait, err := hashscraper.ParseWaitStrategy(c.WaitFor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hashscraper.ErrorMessage(err))
		return err
	}

	report := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs, wait)

	switch {
	case c.Out != "":
		if err := c.writePages(deps, report); err != nil {
			return err
		}
	case c.JSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Results); err != nil {
			return err
		}
	default:
		fmt.Fprintln(deps.Stdout, hashscraper.FormatBatchReport(report))
	}

	if report.SuccessCount() == 0 {
		return hashscraper.Errorf(hashscraper.EUNAVAILABLE, "all %d URLs failed", report.Total())
	}
	return nil
}

func (c *ScrapeCmd) writePages(deps *Dependencies, report *hashscraper.BatchReport) error {
	for _, result := range report.Results {
		if !result.Success {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", result.URL, result.Error)
			continue
		}
		if err := deps.Writer.WritePage(deps.Ctx, result); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing %s: %s\n", result.URL, hashscraper.ErrorMessage(err))
			return err
		}
	}
	fmt.Fprintf(deps.Stdout, "Saved %d/%d pages to %s\n", report.SuccessCount(), report.Total(), c.Out)
	return nil
}
