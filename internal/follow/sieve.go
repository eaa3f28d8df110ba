package follow

import (
	"io"
	"strings"

	"trunk/internal/highlight"
)

// Sieve selects which appended lines are printed. An empty pattern lets every
// line through.
type Sieve struct {
	pattern  string
	decorate highlight.Decorator
}

// NewSieve returns a sieve for pattern. A nil decorator prints matches as-is.
func NewSieve(pattern string, d highlight.Decorator) Sieve {
	if d == nil {
		d = highlight.Plain{}
	}
	return Sieve{pattern: pattern, decorate: d}
}

func (s Sieve) Pattern() string { return s.pattern }

// Match reports whether line passes the sieve.
func (s Sieve) Match(line string) bool {
	return s.pattern == "" || strings.Contains(line, s.pattern)
}

// Render returns line with every occurrence of the pattern decorated and a
// trailing newline. ok is false when the line does not match.
func (s Sieve) Render(line string) (string, bool) {
	if !s.Match(line) {
		return "", false
	}
	if s.pattern == "" {
		return line + "\n", true
	}
	parts := strings.Split(line, s.pattern)
	mark := s.decorate.Decorate(s.pattern)

	var b strings.Builder
	b.Grow(len(line) + len(parts)*len(mark) + 1)
	for _, part := range parts[:len(parts)-1] {
		b.WriteString(part)
		b.WriteString(mark)
	}
	b.WriteString(parts[len(parts)-1])
	b.WriteByte('\n')
	return b.String(), true
}

// WriteLines renders each matching line to w and returns how many were
// written.
func (s Sieve) WriteLines(w io.Writer, lines []string) (int, error) {
	written := 0
	for _, line := range lines {
		rendered, ok := s.Render(line)
		if !ok {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// splitLines splits an appended chunk on newlines. The empty element produced
// after a trailing newline is not a line and is dropped.
func splitLines(chunk string) []string {
	if chunk == "" {
		return nil
	}
	lines := strings.Split(chunk, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
