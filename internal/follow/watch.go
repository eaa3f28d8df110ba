package follow

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FSWatcher reports changes to one file using fsnotify.
//
// The parent directory is watched rather than the file itself so that a file
// replaced by rename-and-recreate rotation keeps producing notifications.
// When path is a symlink the directory of the file it resolves to is watched
// as well, since writes to the linked file are reported under its real name.
// Bursts of events are coalesced: at most one notification is pending at a
// time, which is enough because every notification means "recheck size".
type FSWatcher struct {
	targets []string
	watcher *fsnotify.Watcher
	events  chan struct{}
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

var _ Watcher = (*FSWatcher)(nil)

// NewFSWatcher starts watching path.
func NewFSWatcher(path string) (*FSWatcher, error) {
	targets, err := watchTargets(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	var dirs []string
	for _, target := range targets {
		dir := filepath.Dir(target)
		if slices.Contains(dirs, dir) {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs = append(dirs, dir)
	}

	w := &FSWatcher{
		targets: targets,
		watcher: watcher,
		events:  make(chan struct{}, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// watchTargets returns the absolute path plus, for a symlink, the file it
// currently resolves to. A path that cannot be resolved yet is watched by
// name only.
func watchTargets(path string) ([]string, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	targets := []string{target}
	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		return targets, nil
	}
	if resolved != target {
		targets = append(targets, resolved)
	}
	return targets, nil
}

func (w *FSWatcher) Events() <-chan struct{} { return w.events }

func (w *FSWatcher) Errors() <-chan error { return w.errors }

// Close stops the watcher. The event and error channels are closed once the
// forwarding goroutine has exited.
func (w *FSWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *FSWatcher) loop() {
	defer w.wg.Done()
	defer close(w.events)
	defer close(w.errors)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !slices.Contains(w.targets, filepath.Clean(event.Name)) {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}
