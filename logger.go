package realip

import "context"

// Logger records diagnostic resolution steps emitted by Resolver.
//
// Diagnostics are incidental observability, not part of the resolution
// contract; the default is a no-op so Resolve stays a pure function.
//
// Implementations should be safe for concurrent use, as a single Resolver
// instance is typically shared across many goroutines. The provided context
// comes from the caller and can carry tracing metadata.
//
// The interface intentionally mirrors slog's InfoContext signature, so
// *slog.Logger can be used directly without an adapter.
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
}

// noopLogger is the default Logger implementation when logging is not
// explicitly configured.
type noopLogger struct{}

func (noopLogger) InfoContext(context.Context, string, ...any) {}
