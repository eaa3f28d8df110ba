package follow_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"trunk/internal/follow"
	"trunk/internal/source"
)

func waitForEvent(t *testing.T, w *follow.FSWatcher) {
	t.Helper()
	select {
	case _, ok := <-w.Events():
		if !ok {
			t.Fatal("events channel closed unexpectedly")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func drainEvents(w *follow.FSWatcher) {
	for {
		select {
		case <-w.Events():
		case <-time.After(100 * time.Millisecond):
			return
		}
	}
}

func TestFSWatcherReportsAppends(t *testing.T) {
	_, path := newTrackedFile(t, "start\n")
	w, err := follow.NewFSWatcher(path)
	if err != nil {
		t.Fatalf("NewFSWatcher: %v", err)
	}
	defer w.Close()

	appendFile(t, path, "more\n")
	waitForEvent(t, w)
}

func TestFSWatcherIgnoresSiblingFiles(t *testing.T) {
	_, path := newTrackedFile(t, "start\n")
	w, err := follow.NewFSWatcher(path)
	if err != nil {
		t.Fatalf("NewFSWatcher: %v", err)
	}
	defer w.Close()

	sibling := filepath.Join(filepath.Dir(path), "other.log")
	if err := os.WriteFile(sibling, []byte("noise\n"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}
	select {
	case <-w.Events():
		t.Fatal("unexpected notification for sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFSWatcherReportsRecreatedFile(t *testing.T) {
	_, path := newTrackedFile(t, "start\n")
	w, err := follow.NewFSWatcher(path)
	if err != nil {
		t.Fatalf("NewFSWatcher: %v", err)
	}
	defer w.Close()

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	waitForEvent(t, w)
	drainEvents(w)

	if err := os.WriteFile(path, []byte("fresh\n"), 0o644); err != nil {
		t.Fatalf("recreate: %v", err)
	}
	waitForEvent(t, w)
}

func TestFSWatcherFollowsSymlink(t *testing.T) {
	_, target := newTrackedFile(t, "start\n")
	link := filepath.Join(t.TempDir(), "current.log")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	w, err := follow.NewFSWatcher(link)
	if err != nil {
		t.Fatalf("NewFSWatcher: %v", err)
	}
	defer w.Close()

	appendFile(t, target, "more\n")
	waitForEvent(t, w)
}

func TestRunFollowsSymlinkedFile(t *testing.T) {
	_, target := newTrackedFile(t, "start\n")
	link := filepath.Join(t.TempDir(), "current.log")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	src, err := source.OpenFile(link)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	w, err := follow.NewFSWatcher(link)
	if err != nil {
		t.Fatalf("NewFSWatcher: %v", err)
	}
	defer w.Close()

	out := &syncBuffer{}
	engine := follow.New(src, follow.NewSieve("", nil), out)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx, w) }()

	appendFile(t, target, "through the link\n")
	waitForOutput(t, out, "through the link\n")
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestFSWatcherCloseClosesChannels(t *testing.T) {
	_, path := newTrackedFile(t, "")
	w, err := follow.NewFSWatcher(path)
	if err != nil {
		t.Fatalf("NewFSWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	for range w.Events() {
	}
	if _, ok := <-w.Errors(); ok {
		t.Fatal("expected errors channel to be closed")
	}
}

func TestNewFSWatcherMissingDirectory(t *testing.T) {
	if _, err := follow.NewFSWatcher(filepath.Join(t.TempDir(), "nope", "app.log")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRunWithFSWatcher(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		appended string
		want     string
	}{
		{
			name:     "plain follow",
			appended: "followed_line\n",
			want:     "followed_line\n",
		},
		{
			name:     "sieve",
			pattern:  "INFO",
			appended: "INFO: a\nINFO: b\nERR: c\nWARN: d\n",
			want:     "[INFO]: a\n[INFO]: b\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, path := newTrackedFile(t, "line1\nline2\n")
			w, err := follow.NewFSWatcher(path)
			if err != nil {
				t.Fatalf("NewFSWatcher: %v", err)
			}
			defer w.Close()

			out := &syncBuffer{}
			engine := follow.New(src, follow.NewSieve(tt.pattern, bracketDecorator{}), out)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- engine.Run(ctx, w) }()

			appendFile(t, path, tt.appended)
			waitForOutput(t, out, tt.want)
			cancel()

			select {
			case err := <-done:
				if err != nil {
					t.Fatalf("Run returned error: %v", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("Run did not stop after cancel")
			}
			if got := out.String(); got != tt.want {
				t.Fatalf("output = %q, want %q", got, tt.want)
			}
			if src.Observed() != uint64(len("line1\nline2\n")+len(tt.appended)) {
				t.Fatalf("unexpected observed size %d", src.Observed())
			}
		})
	}
}
