package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/bamchi/hashscraper"
)

var _ hashscraper.UsageService = (*LoggingUsageService)(nil)

// LoggingUsageService wraps a UsageService with logging.
type LoggingUsageService struct {
	next   hashscraper.UsageService
	logger *slog.Logger
}

func NewLoggingUsageService(next hashscraper.UsageService, logger *slog.Logger) *LoggingUsageService {
	return &LoggingUsageService{next: next, logger: logger}
}

func (s *LoggingUsageService) Usage(ctx context.Context) (usage *hashscraper.Usage, err error) {
	defer func(begin time.Time) {
		var remaining int64
		if usage != nil {
			remaining = usage.CreditsRemaining
		}
		s.logger.Info("usage",
			"remaining", remaining,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Usage(ctx)
}
