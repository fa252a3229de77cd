// gameinfo/reader.go

package gameinfo

import (
	"bytes"
	"errors"
	"fmt"

	"TadsPlayer/resfinder"
)

// ResourceName is the resource holding a game's metadata block.
const ResourceName = "GameInfo.txt"

// Logger receives diagnostics from the reader. *common.Logger satisfies it.
type Logger interface {
	Warning(format string, args ...interface{})
}

// Reader loads metadata blocks of games through a resource finder.
type Reader struct {
	finderFor func(gamePath string) resfinder.Finder
	logger    Logger
}

// NewReader returns a reader resolving resources with finderFor. A nil finderFor uses
// resfinder.ForGame; a nil logger discards diagnostics.
func NewReader(finderFor func(gamePath string) resfinder.Finder, logger Logger) *Reader {
	if finderFor == nil {
		finderFor = resfinder.ForGame
	}
	return &Reader{finderFor: finderFor, logger: logger}
}

// HasMetaInfo reports whether the game at gamePath carries a metadata block that can
// be read and parsed. It logs nothing.
func (r *Reader) HasMetaInfo(gamePath string) bool {
	_, err := r.load(gamePath)
	return err == nil
}

// ReadFromFile reads and parses the metadata block of the game at gamePath.
// ok is false when the game has no block or it cannot be read; the returned
// Metadata is then empty but usable.
func (r *Reader) ReadFromFile(gamePath string) (meta Metadata, ok bool) {
	meta, err := r.load(gamePath)
	if err != nil {
		if !errors.Is(err, errNoMetaInfo) {
			r.warn("Could not read metadata of %s: %v", gamePath, err)
		}
		return Metadata{}, false
	}
	return meta, true
}

var errNoMetaInfo = errors.New("no metadata block")

func (r *Reader) load(gamePath string) (Metadata, error) {
	finder := r.finderFor(gamePath)
	if !finder.ResourceExists(ResourceName) {
		return nil, errNoMetaInfo
	}

	data, err := resfinder.ReadResource(finder, ResourceName)
	if err != nil {
		return nil, err
	}

	meta, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ResourceName, err)
	}
	return meta, nil
}

func (r *Reader) warn(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Warning(format, args...)
	}
}
