package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

// Executor is the statement surface repositories depend on.  *sql.DB and
// *sql.Tx both satisfy it; connections are acquired per call and released
// when the call (or the returned *sql.Rows) is done.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Tracer wraps an Executor and logs every statement at debug level.
type Tracer struct {
	next   Executor
	logger *slog.Logger
}

func NewTracer(next Executor, logger *slog.Logger) *Tracer {
	return &Tracer{next: next, logger: logger}
}

func (t *Tracer) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := t.next.ExecContext(ctx, query, args...)
	t.trace(ctx, "exec", query, len(args), start, err)
	return res, err
}

func (t *Tracer) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.next.QueryContext(ctx, query, args...)
	t.trace(ctx, "query", query, len(args), start, err)
	return rows, err
}

func (t *Tracer) trace(ctx context.Context, kind, query string, nargs int, start time.Time, err error) {
	attrs := []slog.Attr{
		slog.String("kind", kind),
		slog.String("sql", query),
		slog.Int("args", nargs),
		slog.Duration("duration", time.Since(start)),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	t.logger.LogAttrs(ctx, slog.LevelDebug, "sql", attrs...)
}
