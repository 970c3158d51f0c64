package images

import (
	"fmt"
	"image"
	"math"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// String returns "WxH".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Pixels returns Width*Height.
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

// FitDimensions computes the size a rendering surface should allocate for an image of
// the given natural size so that neither side exceeds maxDimension. The aspect ratio is
// preserved and images are never upscaled:
//
//	scale = min(maxDimension / max(width, height), 1)
//
// Each side is natural*scale rounded half up, with a minimum of 1. A maxDimension of
// zero or less means no constraint.
//
// Arguments:
//   - width: The natural width.
//   - height: The natural height.
//   - maxDimension: The longest side allowed, or <= 0 for none.
//
// Returns:
//   - Dimensions: The target dimensions.
//   - error: ErrInvalidDimensions if width or height is not positive.
func FitDimensions(width, height, maxDimension int) (Dimensions, error) {
	if width <= 0 || height <= 0 {
		return Dimensions{}, errors.Wrapf(ErrInvalidDimensions, "natural size %dx%d", width, height)
	}

	natural := Dimensions{Width: width, Height: height}
	if maxDimension <= 0 {
		return natural, nil
	}

	scale := math.Min(float64(maxDimension)/float64(max(width, height)), 1)
	if scale == 1 {
		return natural, nil
	}

	return Dimensions{
		Width:  scaleSide(width, scale),
		Height: scaleSide(height, scale),
	}, nil
}

func scaleSide(n int, scale float64) int {
	return max(int(math.Floor(float64(n)*scale+0.5)), 1)
}

// ResampleFilter selects the interpolation used when a surface is smaller than the
// decoded image.
type ResampleFilter int

const (
	// LanczosFilter uses Lanczos resampling with a=3 (slowest, best quality).
	LanczosFilter ResampleFilter = iota
	// NearestNeighborFilter uses nearest-neighbor interpolation (fastest, lowest quality).
	NearestNeighborFilter
	// BilinearFilter uses bilinear interpolation.
	BilinearFilter
	// BicubicFilter uses bicubic interpolation.
	BicubicFilter
	// MitchellNetravaliFilter uses the Mitchell-Netravali cubic filter.
	MitchellNetravaliFilter
)

var interpolations = map[ResampleFilter]resize.InterpolationFunction{
	LanczosFilter:           resize.Lanczos3,
	NearestNeighborFilter:   resize.NearestNeighbor,
	BilinearFilter:          resize.Bilinear,
	BicubicFilter:           resize.Bicubic,
	MitchellNetravaliFilter: resize.MitchellNetravali,
}

// Rasterize draws img onto a fresh NRGBA surface sized by FitDimensions, returning a
// surface whose Pix is a packed RGBA buffer (stride 4*width, origin at 0,0).
func Rasterize(img image.Image, maxDimension int) (*image.NRGBA, error) {
	return RasterizeWith(img, maxDimension, LanczosFilter)
}

// RasterizeWith is Rasterize with an explicit resampling filter.
func RasterizeWith(img image.Image, maxDimension int, filter ResampleFilter) (*image.NRGBA, error) {
	if img == nil {
		return nil, errors.New("input image is nil")
	}

	b := img.Bounds()
	target, err := FitDimensions(b.Dx(), b.Dy(), maxDimension)
	if err != nil {
		return nil, err
	}

	if target.Width == b.Dx() && target.Height == b.Dy() {
		return ToNRGBA(img), nil
	}

	interp, ok := interpolations[filter]
	if !ok {
		return nil, errors.Errorf("unknown resample filter %d", filter)
	}
	scaled := resize.Resize(uint(target.Width), uint(target.Height), img, interp)
	return ToNRGBA(scaled), nil
}

// ToNRGBA copies img into a new *image.NRGBA with its origin at (0, 0). The result
// never aliases img.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if src, ok := img.(*image.NRGBA); ok {
		rowBytes := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowBytes], src.Pix[si:si+rowBytes])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
