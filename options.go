package coro

import (
	"log/slog"

	"github.com/ygrebnov/coro/metrics"
)

// Option configures a Scheduler. Use New(opts...) to construct one.
type Option func(*config)

// WithLogger sets the *slog.Logger a Scheduler traces dispatch on.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics sets the metrics.Provider a Scheduler records instrumentation
// into. Default: metrics.NewNoopProvider().
func WithMetrics(meter metrics.Provider) Option {
	return func(c *config) { c.meter = meter }
}

// WithErrorTagging enables wrapping a failing task's error with
// TaskMetaError correlation metadata, so ExtractTaskSeq can later identify
// which task raised it. Default: disabled.
func WithErrorTagging() Option {
	return func(c *config) { c.errorTagging = true }
}
