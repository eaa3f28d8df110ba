package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Source is anything trunk can print the last lines of.
type Source interface {
	Name() string
	Tail(w io.Writer, n int) error
}

// Follower is a Source whose appended content can be delivered incrementally.
// Implementations track the number of bytes already delivered; callers move
// that mark forward with Commit only after the delivered bytes were written.
type Follower interface {
	Source
	Path() string
	Observed() uint64
	Size() (uint64, error)
	ReadRange(from, to uint64) (string, error)
	Commit(size uint64)
}

// File is a file-backed tracked source. Handles are opened per operation and
// closed before returning, so rotation by another process is always observed
// through fresh metadata.
//
// File is not safe for concurrent use; the follow engine mutates it from a
// single goroutine.
type File struct {
	path     string
	observed uint64
}

var _ Follower = (*File)(nil)

// OpenFile validates that path names a regular file and returns a tracked
// source whose observed size is the current file size.
func OpenFile(path string) (*File, error) {
	f := &File{path: path}
	size, err := f.Size()
	if err != nil {
		return nil, err
	}
	f.observed = size
	return f, nil
}

func (f *File) Name() string { return f.path }

func (f *File) Path() string { return f.path }

// Observed returns the number of bytes already delivered.
func (f *File) Observed() uint64 { return f.observed }

// Commit records size as delivered.
func (f *File) Commit(size uint64) { f.observed = size }

// Size queries the current size of the file on disk.
func (f *File) Size() (uint64, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, f.path)
		}
		return 0, wrapIO("stat", f.path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s is a directory", ErrIO, f.path)
	}
	return uint64(info.Size()), nil
}

// Tail writes the last n lines of the file to w and marks everything up to
// the end of the printed region as delivered.
func (f *File) Tail(w io.Writer, n int) error {
	file, err := f.open()
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return wrapIO("stat", f.path, err)
	}
	size := uint64(info.Size())

	start, err := LocateTailStart(file, size, n)
	if err != nil {
		return wrapIO("scan", f.path, err)
	}

	text, err := readSection(file, f.path, start, size)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write tail: %w", err)
	}
	f.observed = size
	return nil
}

// ReadRange returns the text stored in [from, to). Fewer bytes are returned
// when the file shrank after its size was queried, or when the range ends
// inside a multibyte character; callers advance by the length of the returned
// text so the remainder is read again once it is complete.
func (f *File) ReadRange(from, to uint64) (string, error) {
	if to <= from {
		return "", nil
	}
	file, err := f.open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := readBytes(file, f.path, from, to)
	if err != nil {
		return "", err
	}
	return decodeText(completePrefix(data), from)
}

func (f *File) open() (*os.File, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, f.path)
		}
		return nil, wrapIO("open", f.path, err)
	}
	return file, nil
}

func readSection(r io.ReaderAt, path string, from, to uint64) (string, error) {
	data, err := readBytes(r, path, from, to)
	if err != nil {
		return "", err
	}
	return decodeText(data, from)
}

func readBytes(r io.ReaderAt, path string, from, to uint64) ([]byte, error) {
	data, err := io.ReadAll(io.NewSectionReader(r, int64(from), int64(to-from)))
	if err != nil {
		return nil, wrapIO("read", path, err)
	}
	return data, nil
}
