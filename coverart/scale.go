// coverart/scale.go

package coverart

import (
	"image"

	"golang.org/x/image/draw"
)

// Quality selects the interpolation used when downscaling.
type Quality int

const (
	// QualitySmooth interpolates with Catmull-Rom; slower, no aliasing.
	QualitySmooth Quality = iota
	// QualityFast picks nearest neighbours.
	QualityFast
)

// QualityFromSetting maps the "smooth scaling" user preference to a Quality.
func QualityFromSetting(useSmoothScaling bool) Quality {
	if useSmoothScaling {
		return QualitySmooth
	}
	return QualityFast
}

func (q Quality) String() string {
	if q == QualityFast {
		return "fast"
	}
	return "smooth"
}

func (q Quality) scaler() draw.Scaler {
	if q == QualityFast {
		return draw.NearestNeighbor
	}
	return draw.CatmullRom
}

// Scale returns img scaled to maxWidth, preserving the aspect ratio, when it is wider
// than maxWidth. Narrower images are returned unchanged.
func Scale(img image.Image, maxWidth int, quality Quality) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth || maxWidth <= 0 {
		return img
	}

	h := (b.Dy()*maxWidth + b.Dx()/2) / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	quality.scaler().Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
