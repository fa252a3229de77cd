// resfinder/dir_finder.go

package resfinder

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DirFinder resolves resources stored as loose files next to a game.
// The resource ".system/CoverArt.png" of a game in /games/foo is /games/foo/.system/CoverArt.png.
type DirFinder struct {
	root string
}

// NewDirFinder returns a finder rooted at dir.
func NewDirFinder(dir string) *DirFinder {
	return &DirFinder{root: filepath.Clean(dir)}
}

// ForGame returns a finder rooted at the directory containing the game file.
func ForGame(gamePath string) Finder {
	return NewDirFinder(filepath.Dir(gamePath))
}

// resolve maps a resource name to a path below the root.
// Names that are empty, absolute or climb out of the root do not resolve.
func (d *DirFinder) resolve(name string) (string, bool) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return "", false
	}
	clean := path.Clean(name)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	return filepath.Join(d.root, filepath.FromSlash(clean)), true
}

// ResourceExists reports whether a regular file backs the named resource.
func (d *DirFinder) ResourceExists(name string) bool {
	p, ok := d.resolve(name)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// FileInfo returns the whole loose file as the resource's byte range.
func (d *DirFinder) FileInfo(name string) (Location, error) {
	p, ok := d.resolve(name)
	if !ok {
		return Location{}, fmt.Errorf("invalid resource name %q: %w", name, ErrNotFound)
	}
	info, err := os.Stat(p)
	if err != nil {
		return Location{}, fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	if !info.Mode().IsRegular() {
		return Location{}, fmt.Errorf("%s is not a regular file: %w", p, ErrNotFound)
	}
	return Location{Path: p, Offset: 0, Size: info.Size()}, nil
}
