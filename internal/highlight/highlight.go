// Package highlight decorates sieve matches for terminal output.
package highlight

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Decorator turns text into its highlighted form.
type Decorator interface {
	Decorate(text string) string
}

// Plain leaves text untouched.
type Plain struct{}

func (Plain) Decorate(text string) string { return text }

// Mode selects when colour escapes are emitted.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

var colors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// Options configures a Colorizer.
type Options struct {
	Color string
	Bold  bool
	Mode  Mode
	// Out is checked for a terminal in ModeAuto. Defaults to os.Stdout.
	Out *os.File
}

// Colorizer wraps text in ANSI colour escapes.
type Colorizer struct {
	c *color.Color
}

// New builds a Decorator. When colour is disabled it returns Plain.
func New(opts Options) (Decorator, error) {
	attr, ok := colors[opts.Color]
	if !ok {
		return nil, fmt.Errorf("highlight: unknown colour %q", opts.Color)
	}
	if !enabled(opts) {
		return Plain{}, nil
	}
	c := color.New(attr)
	if opts.Bold {
		c.Add(color.Bold)
	}
	c.EnableColor()
	return &Colorizer{c: c}, nil
}

func (z *Colorizer) Decorate(text string) string {
	return z.c.Sprint(text)
}

func enabled(opts Options) bool {
	switch opts.Mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
