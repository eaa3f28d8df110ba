package source_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"trunk/internal/source"
)

// countingReaderAt records how many bytes were requested through ReadAt.
type countingReaderAt struct {
	r     *strings.Reader
	reads int
}

func (c *countingReaderAt) ReadAt(p []byte, off int64) (int, error) {
	c.reads += len(p)
	return c.r.ReadAt(p, off)
}

type failingReaderAt struct{}

func (failingReaderAt) ReadAt([]byte, int64) (int, error) {
	return 0, errors.New("disk on fire")
}

func numberedLines(count int) string {
	var b strings.Builder
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, "line%d\n", i)
	}
	return b.String()
}

func tailOf(t *testing.T, content string, n int) string {
	t.Helper()
	r := strings.NewReader(content)
	start, err := source.LocateTailStart(r, uint64(len(content)), n)
	if err != nil {
		t.Fatalf("LocateTailStart returned error: %v", err)
	}
	return content[start:]
}

func TestLocateTailStartScenarios(t *testing.T) {
	tests := []struct {
		name    string
		content string
		n       int
		want    string
	}{
		{name: "ten lines default five", content: numberedLines(10), n: 5, want: "line6\nline7\nline8\nline9\nline10\n"},
		{name: "eight lines n three", content: numberedLines(8), n: 3, want: "line6\nline7\nline8\n"},
		{name: "n beyond line count", content: "a\nb\n", n: 10, want: "a\nb\n"},
		{name: "n equal to line count", content: "a\nb\nc\n", n: 3, want: "a\nb\nc\n"},
		{name: "zero lines", content: "a\nb\n", n: 0, want: ""},
		{name: "negative lines", content: "a\nb\n", n: -3, want: ""},
		{name: "empty source", content: "", n: 4, want: ""},
		{name: "unterminated last line", content: "a\nb\nc", n: 2, want: "b\nc"},
		{name: "single unterminated line", content: "only", n: 1, want: "only"},
		{name: "single newline", content: "\n", n: 1, want: "\n"},
		{name: "blank lines count", content: "a\n\n\n", n: 2, want: "\n\n"},
		{name: "multibyte text", content: "héllo\nwörld\n日本語\n", n: 2, want: "wörld\n日本語\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tailOf(t, tt.content, tt.n); got != tt.want {
				t.Fatalf("tail(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestLocateTailStartMatchesLineSuffix(t *testing.T) {
	const total = 25
	content := numberedLines(total)
	lines := strings.SplitAfter(content, "\n")
	lines = lines[:len(lines)-1]

	for n := 1; n <= total; n++ {
		want := strings.Join(lines[total-n:], "")
		if got := tailOf(t, content, n); got != want {
			t.Fatalf("n=%d: got %q want %q", n, got, want)
		}
	}
	for _, n := range []int{total + 1, total * 4} {
		if got := tailOf(t, content, n); got != content {
			t.Fatalf("n=%d: expected entire content, got %q", n, got)
		}
	}
}

func TestLocateTailStartReadsOnlyTheTail(t *testing.T) {
	content := strings.Repeat("padding line that should never be read\n", 10_000) + "x\ny\nz\n"
	r := &countingReaderAt{r: strings.NewReader(content)}

	start, err := source.LocateTailStart(r, uint64(len(content)), 2)
	if err != nil {
		t.Fatalf("LocateTailStart returned error: %v", err)
	}
	if got := content[start:]; got != "y\nz\n" {
		t.Fatalf("unexpected tail %q", got)
	}
	if r.reads > 8 {
		t.Fatalf("expected a handful of single-byte reads, got %d bytes read", r.reads)
	}
}

func TestLocateTailStartPropagatesReadErrors(t *testing.T) {
	_, err := source.LocateTailStart(failingReaderAt{}, 10, 1)
	if err == nil || !strings.Contains(err.Error(), "disk on fire") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestLocateTailStartShortReaderReportsEOF(t *testing.T) {
	_, err := source.LocateTailStart(strings.NewReader("abc"), 10, 1)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF when size exceeds the reader, got %v", err)
	}
}
