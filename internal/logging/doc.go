// Package logging assembles structured slog loggers used for trunk diagnostics.
//
// Tail output owns stdout, so every logger built here writes to stderr (or to
// the writers supplied in Options). The console handler renders a compact
// single-line format with the component pulled to the front; the JSON handler
// emits one object per record for machine consumption. Context helpers carry
// the follow session identifier so every record from one watch loop can be
// correlated.
package logging
