package source

import (
	"fmt"
	"io"
)

// LocateTailStart returns the offset from which reading to size yields the
// last n lines of r.
//
// Lines are counted from the end: a newline that is the final byte of the
// source terminates the last line rather than starting an empty one, and an
// unterminated final line counts as a line. The scan walks backward one byte
// at a time and stops at the n-th separating newline, so its cost is bounded
// by the length of the requested lines, not by size. When the source holds n
// lines or fewer the offset is 0. n <= 0 yields size (nothing to print).
func LocateTailStart(r io.ReaderAt, size uint64, n int) (uint64, error) {
	if n <= 0 {
		return size, nil
	}
	if size == 0 {
		return 0, nil
	}

	var b [1]byte
	readAt := func(pos uint64) (byte, error) {
		if _, err := r.ReadAt(b[:], int64(pos)); err != nil {
			return 0, fmt.Errorf("read byte at %d: %w", pos, err)
		}
		return b[0], nil
	}

	end := size
	last, err := readAt(size - 1)
	if err != nil {
		return 0, err
	}
	if last == '\n' {
		end--
	}

	seen := 0
	for pos := end; pos > 0; pos-- {
		c, err := readAt(pos - 1)
		if err != nil {
			return 0, err
		}
		if c != '\n' {
			continue
		}
		seen++
		if seen == n {
			return pos, nil
		}
	}
	return 0, nil
}
