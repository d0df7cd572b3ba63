package runner

import (
	"log/slog"

	"github.com/frubino/gff-utils/internal/metrics"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMetrics records read, written and dropped counts in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Runner) {
		r.metrics = c
	}
}

// WithHeader writes "#" followed by the tab separated columns before any record.
func WithHeader(columns []string) Option {
	return func(r *Runner) {
		r.header = columns
	}
}
