package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/switchboard/pkg/ports"
)

type loggingStore struct {
	next   ports.Store
	logger *slog.Logger
}

// NewLogging creates a middleware that logs every statement at debug
// level with its duration and outcome. Argument values are never
// logged, only their count.
func NewLogging(logger *slog.Logger) Middleware {
	return func(next ports.Store) ports.Store {
		return &loggingStore{next: next, logger: logger}
	}
}

func (s *loggingStore) Query(ctx context.Context, query string, args ...any) ([]ports.Row, error) {
	start := time.Now()
	rows, err := s.next.Query(ctx, query, args...)
	if err != nil {
		s.logger.Debug("store query", "query", query, "args", len(args), "duration", time.Since(start), "error", err)
	} else {
		s.logger.Debug("store query", "query", query, "args", len(args), "duration", time.Since(start), "rows", len(rows))
	}
	return rows, err
}

func (s *loggingStore) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	start := time.Now()
	affected, err := s.next.Exec(ctx, query, args...)
	if err != nil {
		s.logger.Debug("store exec", "query", query, "args", len(args), "duration", time.Since(start), "error", err)
	} else {
		s.logger.Debug("store exec", "query", query, "args", len(args), "duration", time.Since(start), "affected", affected)
	}
	return affected, err
}

func (s *loggingStore) Close() error {
	err := s.next.Close()
	if err != nil {
		s.logger.Warn("store close", "error", err)
	}
	return err
}

var _ ports.Store = (*loggingStore)(nil)
