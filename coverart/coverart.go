// coverart/coverart.go

// Package coverart finds, decodes and downscales the cover art image shipped with a game.
package coverart

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // registers the JPEG decoder
	_ "image/png"  // registers the PNG decoder

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"TadsPlayer/resfinder"
)

// MaxWidth is the widest cover image shown; wider images are scaled down to it.
const MaxWidth = 200

// Candidates lists cover art resource names in priority order. The ".system/" names come
// from the current cover art convention, the bare names from the older one.
var Candidates = []string{
	".system/CoverArt.png",
	".system/CoverArt.jpg",
	"CoverArt.png",
	"CoverArt.jpg",
}

// Logger receives warnings about unusable cover art. *common.Logger satisfies it.
type Logger interface {
	Warning(format string, args ...interface{})
}

// Locate returns the first candidate name the finder resolves.
func Locate(f resfinder.Finder) (string, bool) {
	for _, name := range Candidates {
		if f.ResourceExists(name) {
			return name, true
		}
	}
	return "", false
}

// Load returns the game's cover art scaled for display, or nil when there is none.
// Read and decode failures are logged and treated as "no cover art".
func Load(f resfinder.Finder, quality Quality, logger Logger) image.Image {
	name, ok := Locate(f)
	if !ok {
		return nil
	}

	data, err := resfinder.ReadResource(f, name)
	if err != nil {
		warn(logger, "ERROR: Could not load cover art %s: %v", name, err)
		return nil
	}

	img, err := Decode(data)
	if err != nil {
		warn(logger, "ERROR: Could not parse image data of %s (%s): %v", name, humanize.Bytes(uint64(len(data))), err)
		return nil
	}
	return Scale(img, MaxWidth, quality)
}

// Decode decodes PNG or JPEG image data. Other formats are rejected before decoding.
func Decode(data []byte) (image.Image, error) {
	mtype := mimetype.Detect(data)
	if !mtype.Is("image/png") && !mtype.Is("image/jpeg") {
		return nil, fmt.Errorf("unsupported cover art format %s", mtype.String())
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", mtype.String(), err)
	}
	return img, nil
}

func warn(logger Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Warning(format, args...)
	}
}
