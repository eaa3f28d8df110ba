package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"trunk/internal/source"
)

// CheckReadableFile verifies that path exists, is a regular file and can be
// opened for reading by the current process.
func CheckReadableFile(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{
				Name:   name,
				Detail: fmt.Sprintf("%s (error: does not exist)", path),
				Err:    fmt.Errorf("%w: %s", source.ErrNotFound, path),
			}
		}
		return Result{
			Name:   name,
			Detail: fmt.Sprintf("%s (error: stat: %v)", path, err),
			Err:    fmt.Errorf("%w: stat %s: %w", source.ErrIO, path, err),
		}
	}
	if !info.Mode().IsRegular() {
		return Result{
			Name:   name,
			Detail: fmt.Sprintf("%s (error: is not a regular file)", path),
			Err:    fmt.Errorf("%w: %s is not a regular file", source.ErrIO, path),
		}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{
			Name:   name,
			Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err),
			Err:    fmt.Errorf("%w: access %s: %w", source.ErrIO, path, err),
		}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d bytes, read ok)", path, info.Size())}
}

// CheckWatchDirectory verifies that the directory holding path can be listed,
// which the change watcher needs.
func CheckWatchDirectory(name, path string) Result {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err), Err: err}
	}
	dir := filepath.Dir(abs)
	if err := unix.Access(dir, unix.R_OK|unix.X_OK); err != nil {
		return Result{
			Name:   name,
			Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", dir, err),
			Err:    fmt.Errorf("%w: access %s: %w", source.ErrIO, dir, err),
		}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (watchable)", dir)}
}
