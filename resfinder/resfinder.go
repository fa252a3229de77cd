// resfinder/resfinder.go

// Package resfinder locates resources that belong to a game and reads their bytes.
// A resource is addressed by a URL-style name (for example ".system/CoverArt.png") and is
// backed by a byte range inside some file on disk.
package resfinder

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Errors returned by ReadResource. They mirror the steps of reading a byte range:
// the backing file must be readable, openable, seekable and long enough.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrUnreadable = errors.New("backing file does not exist or is unreadable")
	ErrOpen       = errors.New("cannot open backing file")
	ErrSeek       = errors.New("cannot seek in backing file")
	ErrShortRead  = errors.New("short read from backing file")
)

// Location describes where the bytes of a resource live.
type Location struct {
	Path   string
	Offset int64
	Size   int64
}

// Finder is implemented by anything that can resolve resource names of a game.
type Finder interface {
	// ResourceExists reports whether the named resource can be resolved.
	ResourceExists(name string) bool
	// FileInfo returns the backing file, offset and length of the named resource.
	FileInfo(name string) (Location, error)
}

// ReadResource reads the complete byte range of the named resource.
func ReadResource(f Finder, name string) ([]byte, error) {
	loc, err := f.FileInfo(name)
	if err != nil {
		return nil, fmt.Errorf("resfinder: %s: %w", name, err)
	}

	info, err := os.Stat(loc.Path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("resfinder: %s: %w", loc.Path, ErrUnreadable)
	}

	file, err := os.Open(loc.Path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, fmt.Errorf("resfinder: %s: %w: %v", loc.Path, ErrUnreadable, err)
		}
		return nil, fmt.Errorf("resfinder: %s: %w: %v", loc.Path, ErrOpen, err)
	}
	defer file.Close()

	if _, err := file.Seek(loc.Offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("resfinder: %s offset %d: %w: %v", loc.Path, loc.Offset, ErrSeek, err)
	}

	data := make([]byte, loc.Size)
	n, err := io.ReadFull(file, data)
	if loc.Size == 0 || n < len(data) {
		return nil, fmt.Errorf("resfinder: could not read %d bytes from %s (got %d): %w", loc.Size, loc.Path, n, ErrShortRead)
	}
	if err != nil {
		return nil, fmt.Errorf("resfinder: %s: %w: %v", loc.Path, ErrShortRead, err)
	}
	return data, nil
}
