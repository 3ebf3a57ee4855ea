// Package logging defines the structured logger the rest of the module
// depends on, plus an slog-backed implementation.
package logging

import "context"

// Logger is a leveled, context-aware logger. The trailing args are
// alternating key/value pairs:
//
//	log.Info(ctx, "profile created", "id", user.ID)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key/value pairs on
	// every record.
	With(args ...any) Logger
}
