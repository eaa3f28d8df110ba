package preflight

import (
	"errors"
	"fmt"
)

// ErrCheckFailed marks an error produced from a failed Result.
var ErrCheckFailed = errors.New("preflight check failed")

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
	// Err carries the underlying cause when the check failed.
	Err error
}

// RunAll executes the checks that apply to path. The watch directory is only
// checked when follow is set.
func RunAll(path string, follow bool) []Result {
	results := []Result{CheckReadableFile("Input file", path)}
	if follow {
		results = append(results, CheckWatchDirectory("Watch directory", path))
	}
	return results
}

// Require runs RunAll and returns an error for the first failed check.
// The error wraps the check's cause, so callers can still match
// source.ErrNotFound.
func Require(path string, follow bool) error {
	for _, result := range RunAll(path, follow) {
		if result.Passed {
			continue
		}
		if result.Err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCheckFailed, result.Name, result.Err)
		}
		return fmt.Errorf("%w: %s: %s", ErrCheckFailed, result.Name, result.Detail)
	}
	return nil
}
