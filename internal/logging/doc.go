// Package logging assembles the structured slog loggers used across
// bibsync commands and components.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes a no-op logger plus attr helpers so components emit fields with
// a consistent shape. Prefer these constructors over hand-rolled slog
// setup.
package logging
