// Package logging is the structured logger shared by the server and the
// client. Operator-facing events go through it; text meant for the person at
// the terminal never does.
package logging

import "context"

// Logger takes key/value pairs after the message:
//
//	log.Info(ctx, "plant watered", "plant_id", id, "water_level", level)
//
// SlogLogger is the only production implementation.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
