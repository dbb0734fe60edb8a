// Package logging assembles the structured slog loggers used across booklint.
//
// It owns the console and JSON handlers, centralizes level parsing, and tags
// every CLI run with a correlation identifier so log lines from one
// invocation can be grouped. Logs always go to stderr; stdout is reserved for
// report output.
//
// Prefer these constructors over hand-rolled slog setup so all components
// emit data with the same shape.
package logging
