package mock

import (
	"context"

	"github.com/bamchi/hashscraper"
)

var _ hashscraper.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of hashscraper.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, result *hashscraper.PageResult) error
}

func (w *PageWriter) WritePage(ctx context.Context, result *hashscraper.PageResult) error {
	return w.WritePageFn(ctx, result)
}
