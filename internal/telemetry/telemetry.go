// Package telemetry adapts this module's structured-logging seams to
// github.com/joeycumines/logiface, backed by log/slog.
package telemetry

import (
	"io"
	"log/slog"

	"github.com/joeycumines/logiface"
	islog "github.com/joeycumines/logiface-slog"
)

// Logger is the logger type accepted by the registry package.
type Logger = *logiface.Logger[*islog.Event]

// Disabled returns a logger that discards everything, at negligible cost
// (the level check happens before any field is built). It is the default
// used by registry.New/NewAsync when no logger is supplied.
func Disabled() Logger {
	return islog.L.New(
		islog.L.WithSlogHandler(slog.NewTextHandler(io.Discard, nil)),
		logiface.WithLevel[*islog.Event](logiface.LevelDisabled),
	)
}

// NewSlog builds a Logger writing through handler, at the given logiface
// level threshold.
func NewSlog(handler slog.Handler, level logiface.Level) Logger {
	return islog.L.New(
		islog.L.WithSlogHandler(handler),
		logiface.WithLevel[*islog.Event](level),
	)
}
