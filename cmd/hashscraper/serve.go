package main

import (
	"github.com/bamchi/hashscraper/mcp"
)

// Run executes the serve command. Stdout carries the protocol, so nothing
// else may be printed there.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := mcp.NewServer(deps.Scraper, deps.Usage,
		mcp.WithLogger(deps.Logger),
		mcp.WithVersion(Version),
	)
	return server.Run(deps.Ctx)
}
