// Package view provides output formatting and logging for the lispletc
// CLI.
//
// The package uses a layered architecture: CLI → Viewer → Stream →
// io.Writer. Viewers handle format-specific rendering (human/json),
// while Stream provides basic output operations. Logs go through
// log/slog either way.
package view
