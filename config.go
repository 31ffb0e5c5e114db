package coro

import (
	"log/slog"

	"github.com/ygrebnov/coro/metrics"
)

// config holds Scheduler configuration.
type config struct {
	// logger receives debug-level dispatch tracing. Default: slog.Default().
	logger *slog.Logger

	// meter records scheduler instrumentation (dispatch counts, queue
	// depth, task failures). Default: metrics.NoopProvider.
	meter metrics.Provider

	// errorTagging wraps a failing task's error with TaskMetaError
	// correlation metadata (its spawn sequence number). Default: false.
	errorTagging bool
}

// defaultConfig centralizes default values for config. nil logger/meter
// fields are resolved to their real defaults in New, since slog.Default()
// and metrics.NewNoopProvider() are not compile-time constants.
func defaultConfig() config {
	return config{}
}

// validateConfig performs lightweight invariant checks. It returns nil
// for all currently valid states; reserved for future validation.
func validateConfig(_ *config) error {
	return nil
}
