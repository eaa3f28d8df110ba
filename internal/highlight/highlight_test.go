package highlight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestColorizerAlwaysWrapsText(t *testing.T) {
	d, err := New(Options{Color: "red", Mode: ModeAlways})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	got := d.Decorate("INFO")
	if !strings.HasPrefix(got, "\x1b[31mINFO\x1b[") || !strings.HasSuffix(got, "m") {
		t.Fatalf("unexpected decoration %q", got)
	}
}

func TestColorizerBold(t *testing.T) {
	d, err := New(Options{Color: "cyan", Bold: true, Mode: ModeAlways})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	got := d.Decorate("x")
	if !strings.HasPrefix(got, "\x1b[36;1m") || !strings.Contains(got, "x\x1b[") {
		t.Fatalf("unexpected bold decoration %q", got)
	}
}

func TestNeverModeIsPlain(t *testing.T) {
	d, err := New(Options{Color: "green", Mode: ModeNever})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, ok := d.(Plain); !ok {
		t.Fatalf("expected Plain decorator, got %T", d)
	}
	if d.Decorate("text") != "text" {
		t.Fatal("expected plain text")
	}
}

func TestAutoModeOnRegularFileIsPlain(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	d, err := New(Options{Color: "red", Mode: ModeAuto, Out: f})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, ok := d.(Plain); !ok {
		t.Fatalf("expected Plain decorator when output is not a terminal, got %T", d)
	}
}

func TestUnknownColour(t *testing.T) {
	if _, err := New(Options{Color: "chartreuse", Mode: ModeAlways}); err == nil {
		t.Fatal("expected error for unknown colour")
	}
}
