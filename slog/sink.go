package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/stash"
)

// Ensure LoggingSink implements stash.Sink.
var _ stash.Sink = (*LoggingSink)(nil)

// LoggingSink wraps a Sink with emit logging.
type LoggingSink struct {
	next   stash.Sink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next stash.Sink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Emit delegates to the wrapped sink, logging the destination.
func (s *LoggingSink) Emit(ctx context.Context, article *stash.Article) (string, error) {
	begin := time.Now()
	dest, err := s.next.Emit(ctx, article)
	if err != nil {
		s.logger.Error("emit failed",
			"url", article.URL,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}

	s.logger.Info("emitted article",
		"url", article.URL,
		"dest", dest,
		"duration", time.Since(begin),
	)
	return dest, nil
}
