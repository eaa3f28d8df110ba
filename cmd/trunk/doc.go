// Package main hosts the trunk CLI entrypoint and command graph.
//
// The root command prints the last lines of a file (or of standard input) and,
// with --follow or --sieve, keeps printing appended content until interrupted.
// Configuration resolution, logger construction and preflight checks happen
// here; the reading and follow logic lives in internal/source and
// internal/follow.
package main
