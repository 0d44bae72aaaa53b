// Package logging is the structured logging facade of the userdir server.
// Components take a Logger in their constructor and scope it with
// With("module", ...); the production implementation is SlogLogger.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// Args are key-value pairs:
//
//	log.Info(ctx, "user registered", "user_id", id)
//
// A request id stored with ContextWithRequestID is added to every record
// logged with that context.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes args.
	With(args ...any) Logger
}
