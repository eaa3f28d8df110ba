package follow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"trunk/internal/logging"
	"trunk/internal/source"
)

// DefaultTruncationNotice is printed when the followed file shrinks.
const DefaultTruncationNotice = "***FILE TRUNCATED: READING FROM NEW EOF***"

// ErrWatcherClosed is returned by Run when the watcher stops delivering events
// before the context is cancelled.
var ErrWatcherClosed = errors.New("watcher closed")

// Outcome describes what one OnChange call did.
type Outcome int

const (
	// Unchanged means the size matched the delivered size.
	Unchanged Outcome = iota
	// Grew means appended content was read and passed through the sieve.
	Grew
	// Truncated means the file shrank and the notice was printed.
	Truncated
	// Skipped means the change could not be processed; an error accompanies it.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Grew:
		return "grew"
	case Truncated:
		return "truncated"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Watcher delivers change notifications for one file.
type Watcher interface {
	Events() <-chan struct{}
	Errors() <-chan error
}

type flusher interface {
	Flush() error
}

// Engine owns a tracked source and the sieve for the lifetime of a follow
// session. It is driven from a single goroutine (Run, or a caller invoking
// OnChange serially) and is not safe for concurrent OnChange calls.
type Engine struct {
	src    source.Follower
	sieve  Sieve
	out    io.Writer
	notice string
	logger *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTruncationNotice replaces the line printed on truncation.
func WithTruncationNotice(notice string) Option {
	return func(e *Engine) {
		if notice != "" {
			e.notice = notice
		}
	}
}

// New builds an engine printing to out. If out has a Flush method it is
// flushed before the delivered size is committed.
func New(src source.Follower, sieve Sieve, out io.Writer, opts ...Option) *Engine {
	e := &Engine{
		src:    src,
		sieve:  sieve,
		out:    out,
		notice: DefaultTruncationNotice,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "follow")
	return e
}

// OnChange handles one change notification.
//
// The current size is compared with the delivered size. Growth reads exactly
// the appended range, prints the lines that pass the sieve and then commits
// the new size. Shrinkage prints the truncation notice and adopts the smaller
// size without reading. Equal sizes do nothing. The delivered size only moves
// after output for the iteration has been flushed.
//
// On an i/o failure the delivered size is left alone so the next notification
// retries the same range. A range that is not valid text is skipped.
func (e *Engine) OnChange(ctx context.Context) (Outcome, error) {
	logger := logging.WithContext(ctx, e.logger)

	current, err := e.src.Size()
	if err != nil {
		return Skipped, err
	}
	observed := e.src.Observed()

	switch {
	case current == observed:
		logger.Debug("no new content", logging.Uint64("size", current))
		return Unchanged, nil
	case current < observed:
		if _, err := fmt.Fprintln(e.out, e.notice); err != nil {
			return Skipped, fmt.Errorf("write truncation notice: %w", err)
		}
		if err := e.flush(); err != nil {
			return Skipped, err
		}
		e.src.Commit(current)
		logger.Info("file truncated",
			logging.String(logging.FieldPath, e.src.Path()),
			logging.Uint64("previous_size", observed),
			logging.Uint64("size", current),
		)
		return Truncated, nil
	}

	chunk, err := e.src.ReadRange(observed, current)
	if err != nil {
		if errors.Is(err, source.ErrEncoding) {
			e.src.Commit(current)
		}
		return Skipped, err
	}

	lines := splitLines(chunk)
	written, err := e.sieve.WriteLines(e.out, lines)
	if err != nil {
		return Skipped, fmt.Errorf("write lines: %w", err)
	}
	if err := e.flush(); err != nil {
		return Skipped, err
	}
	delivered := observed + uint64(len(chunk))
	e.src.Commit(delivered)

	logger.Debug("appended content delivered",
		logging.Uint64("from", observed),
		logging.Uint64("to", delivered),
		logging.Int("lines", len(lines)),
		logging.Int("printed", written),
	)
	return Grew, nil
}

// Run handles notifications from w until ctx is cancelled. Failures of a
// single notification are logged and the loop keeps going.
func (e *Engine) Run(ctx context.Context, w Watcher) error {
	logger := logging.WithContext(ctx, e.logger)
	logger.Info("following file",
		logging.String(logging.FieldPath, e.src.Path()),
		logging.Uint64("size", e.src.Observed()),
		logging.String("sieve", e.sieve.Pattern()),
	)

	events := w.Events()
	errs := w.Errors()
	for {
		select {
		case <-ctx.Done():
			logger.Info("follow stopped", logging.String("reason", context.Cause(ctx).Error()))
			return nil
		case _, ok := <-events:
			if !ok {
				return ErrWatcherClosed
			}
			e.handle(ctx, logger)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logging.WarnWithContext(logger, "watch error", "follow_watch_error",
				logging.Error(err),
				logging.String(logging.FieldImpact, "notifications may be delayed; following continues"),
			)
		}
	}
}

func (e *Engine) handle(ctx context.Context, logger *slog.Logger) {
	outcome, err := e.OnChange(ctx)
	if err == nil {
		return
	}
	attrs := []logging.Attr{
		logging.String(logging.FieldPath, e.src.Path()),
		logging.String("outcome", outcome.String()),
		logging.Error(err),
	}
	switch {
	case errors.Is(err, source.ErrNotFound):
		logging.WarnWithContext(logger, "followed file is missing", "follow_file_missing",
			append(attrs, logging.String(logging.FieldErrorHint, "the file may be mid-rotation; waiting for it to reappear"))...)
	case errors.Is(err, source.ErrEncoding):
		logging.WarnWithContext(logger, "appended content is not valid text", "follow_decode_failed",
			append(attrs, logging.String(logging.FieldImpact, "the unreadable range was skipped"))...)
	default:
		logging.WarnWithContext(logger, "change could not be processed", "follow_read_failed", attrs...)
	}
}

func (e *Engine) flush() error {
	f, ok := e.out.(flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
