package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"trunk/internal/config"
	"trunk/internal/follow"
	"trunk/internal/highlight"
	"trunk/internal/logging"
	"trunk/internal/preflight"
	"trunk/internal/source"
)

type tailOptions struct {
	numLines string
	follow   bool
	sieve    string

	lines    int
	linesSet bool
}

// parseLineCount validates --num-lines. It runs before the configuration is
// loaded so a non-numeric count is reported before any file is touched.
func (o *tailOptions) parseLineCount(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("num-lines") {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(o.numLines))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrIllegalOffset, o.numLines)
	}
	o.lines = n
	o.linesSet = true
	return nil
}

// lineCount returns the parsed --num-lines, falling back to the configured
// default when the flag was not given.
func (o tailOptions) lineCount(cfg *config.Config) int {
	if o.linesSet {
		return o.lines
	}
	return cfg.Tail.Lines
}

func (o tailOptions) following() bool {
	return o.follow || o.sieve != ""
}

func runTail(cmd *cobra.Command, ctx *commandContext, opts tailOptions, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	n := opts.lineCount(cfg)
	baseLogger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger := logging.NewComponentLogger(baseLogger, "cli")

	out := bufio.NewWriter(cmd.OutOrStdout())

	if len(args) == 0 {
		src := stdinSource(cmd.InOrStdin())
		if err := src.Tail(out, n); err != nil {
			return fmt.Errorf("tail %s: %w", src.Name(), err)
		}
		if opts.following() {
			logger.Debug("follow ignored for standard input")
		}
		return flushOutput(out)
	}

	path := args[0]
	if err := preflight.Require(path, opts.following()); err != nil {
		return err
	}
	file, err := source.OpenFile(path)
	if err != nil {
		return err
	}

	// The watcher is started before the initial tail so nothing appended in
	// between goes unnoticed.
	var watcher *follow.FSWatcher
	if opts.following() {
		watcher, err = follow.NewFSWatcher(path)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	if err := file.Tail(out, n); err != nil {
		return fmt.Errorf("tail %s: %w", file.Name(), err)
	}
	if err := flushOutput(out); err != nil {
		return err
	}
	logger.Debug("initial tail written",
		logging.String(logging.FieldPath, path),
		logging.Int("lines", n),
		logging.Uint64("size", file.Observed()),
	)
	if !opts.following() {
		return nil
	}

	decorator, err := newDecorator(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	engine := follow.New(file, follow.NewSieve(opts.sieve, decorator), out,
		follow.WithLogger(baseLogger),
		follow.WithTruncationNotice(cfg.Follow.TruncationNotice),
	)
	runCtx := logging.WithSession(cmd.Context(), uuid.NewString())
	sessionLogger := logging.WithContext(runCtx, logger)
	started := time.Now()
	if err := engine.Run(runCtx, watcher); err != nil {
		logging.ErrorWithContext(sessionLogger, "follow ended unexpectedly", "follow_aborted",
			logging.String(logging.FieldPath, path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "the file system watch was lost; restart trunk"),
		)
		return err
	}
	sessionLogger.Debug("follow finished", logging.Duration("elapsed", time.Since(started)))
	return nil
}

func stdinSource(r io.Reader) *source.Stdin {
	if f, ok := r.(*os.File); ok {
		return source.NewStdin(f)
	}
	return source.NewReader(r, false)
}

// newDecorator builds the sieve highlighter. Auto mode only colours when the
// output is a terminal, which a non-file writer never is.
func newDecorator(cfg *config.Config, out io.Writer) (highlight.Decorator, error) {
	opts := highlight.Options{
		Color: cfg.Highlight.Color,
		Bold:  cfg.Highlight.Bold,
		Mode:  highlight.Mode(cfg.Highlight.Mode),
	}
	if f, ok := out.(*os.File); ok {
		opts.Out = f
	} else if opts.Mode == highlight.ModeAuto {
		opts.Mode = highlight.ModeNever
	}
	return highlight.New(opts)
}

func flushOutput(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
