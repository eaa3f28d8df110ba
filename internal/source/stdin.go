package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Stdin is a line-buffered, unseekable source. Its lines are held in memory
// and the last n are found by walking the buffer from the end.
type Stdin struct {
	r           io.Reader
	interactive bool
	lines       []string
	loaded      bool
}

var _ Source = (*Stdin)(nil)

// NewStdin wraps f, treating it as interactive when it is a terminal.
func NewStdin(f *os.File) *Stdin {
	fd := f.Fd()
	return NewReader(f, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// NewReader wraps r. An interactive reader is never consumed: there is no end
// of input to tail from.
func NewReader(r io.Reader, interactive bool) *Stdin {
	return &Stdin{r: r, interactive: interactive}
}

func (s *Stdin) Name() string { return "standard input" }

// Interactive reports whether the reader is attached to a terminal.
func (s *Stdin) Interactive() bool { return s.interactive }

// Tail consumes all available input and writes its last n lines to w, each
// followed by a newline.
func (s *Stdin) Tail(w io.Writer, n int) error {
	if s.interactive || n <= 0 {
		return nil
	}
	if err := s.load(); err != nil {
		return err
	}

	selected := make([]string, 0, min(n, len(s.lines)))
	for i := len(s.lines) - 1; i >= 0 && len(selected) < n; i-- {
		selected = append(selected, s.lines[i])
	}

	var b strings.Builder
	for i := len(selected) - 1; i >= 0; i-- {
		b.WriteString(selected[i])
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write tail: %w", err)
	}
	return nil
}

func (s *Stdin) load() error {
	if s.loaded {
		return nil
	}
	reader := bufio.NewReader(s.r)
	var offset uint64
	for {
		raw, err := reader.ReadBytes('\n')
		if len(raw) > 0 {
			line, decodeErr := decodeText(raw, offset)
			if decodeErr != nil {
				return decodeErr
			}
			offset += uint64(len(raw))
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			s.lines = append(s.lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return wrapIO("read", s.Name(), err)
		}
	}
	s.loaded = true
	return nil
}
