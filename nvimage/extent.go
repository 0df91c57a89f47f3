package nvimage

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/nvlayout/layoututils"
)

// The measurement spaces an Extent4D can be expressed in. The unit is a
// phantom type parameter: moving between spaces goes through the explicit
// conversion functions below, never through reinterpretation.
type (
	// Pixels measures logical image pixels.
	Pixels struct{}
	// Samples measures individual MSAA sample positions.
	Samples struct{}
	// Elements measures format elements: texels for plain formats, compressed
	// blocks for block-compressed formats.
	Elements struct{}
	// Bytes measures raw bytes along the width axis and rows/slices/layers
	// along the remaining axes.
	Bytes struct{}
	// Tiles measures whole tiling block granules.
	Tiles struct{}
)

// Unit is the closed set of measurement spaces understood by Extent4D.
type Unit interface {
	Pixels | Samples | Elements | Bytes | Tiles
}

// Extent4D is the size of an image region along the width, height, depth and
// array axes, tagged with the measurement space it is expressed in.
type Extent4D[U Unit] struct {
	Width    uint32
	Height   uint32
	Depth    uint32
	ArrayLen uint32
}

// NewExtent4D builds an extent from four axis values.
func NewExtent4D[U Unit](width, height, depth, arrayLen uint32) Extent4D[U] {
	return Extent4D[U]{
		Width:    width,
		Height:   height,
		Depth:    depth,
		ArrayLen: arrayLen,
	}
}

// Minify shrinks the extent for a mip level: width, height and depth are
// halved per level and floored to 1. The array length is not minified.
func (e Extent4D[U]) Minify(level uint32) Extent4D[U] {
	return Extent4D[U]{
		Width:    minify(e.Width, level),
		Height:   minify(e.Height, level),
		Depth:    minify(e.Depth, level),
		ArrayLen: e.ArrayLen,
	}
}

func minify(value, level uint32) uint32 {
	minified := value >> level
	if minified == 0 {
		return 1
	}
	return minified
}

// Align rounds each axis up to a multiple of the corresponding axis of
// alignment. Every alignment axis must be a power of two.
func (e Extent4D[U]) Align(alignment Extent4D[U]) Extent4D[U] {
	layoututils.DebugCheckPow2(alignment.Width, "alignment width")
	layoututils.DebugCheckPow2(alignment.Height, "alignment height")
	layoututils.DebugCheckPow2(alignment.Depth, "alignment depth")
	layoututils.DebugCheckPow2(alignment.ArrayLen, "alignment array length")

	return Extent4D[U]{
		Width:    layoututils.AlignUp(e.Width, alignment.Width),
		Height:   layoututils.AlignUp(e.Height, alignment.Height),
		Depth:    layoututils.AlignUp(e.Depth, alignment.Depth),
		ArrayLen: layoututils.AlignUp(e.ArrayLen, alignment.ArrayLen),
	}
}

// CastUnits reinterprets an extent in a different measurement space without
// scaling any axis. Callers are responsible for the cast making sense, e.g.
// treating the element extent of a compressed level as pixels.
func CastUnits[To Unit, From Unit](e Extent4D[From]) Extent4D[To] {
	return Extent4D[To]{
		Width:    e.Width,
		Height:   e.Height,
		Depth:    e.Depth,
		ArrayLen: e.ArrayLen,
	}
}

// FlatSizeB reduces a byte extent to a flat byte count.
func FlatSizeB(e Extent4D[Bytes]) uint64 {
	return uint64(e.Width) * uint64(e.Height) * uint64(e.Depth) * uint64(e.ArrayLen)
}

// PxToSa converts a pixel extent to sample space: each logical pixel covers
// one grid of sample positions as described by layout.
func PxToSa(e Extent4D[Pixels], layout SampleLayout) Extent4D[Samples] {
	grid := layout.PxExtentSa()
	return Extent4D[Samples]{
		Width:    e.Width * grid.Width,
		Height:   e.Height * grid.Height,
		Depth:    e.Depth * grid.Depth,
		ArrayLen: e.ArrayLen * grid.ArrayLen,
	}
}

// SaToEl converts a sample extent to format elements. For block-compressed
// formats one element covers a whole compressed block, with partial blocks at
// the right/bottom edges rounded up.
func SaToEl(e Extent4D[Samples], format core1_0.Format) Extent4D[Elements] {
	info := lookupFormatInfo(format)
	return Extent4D[Elements]{
		Width:    layoututils.DivCeil(e.Width, info.blockWidthPx),
		Height:   layoututils.DivCeil(e.Height, info.blockHeightPx),
		Depth:    e.Depth,
		ArrayLen: e.ArrayLen,
	}
}

// ElToB converts an element extent to bytes. Only the width axis scales; the
// other axes already count rows, slices and layers.
func ElToB(e Extent4D[Elements], format core1_0.Format) Extent4D[Bytes] {
	return Extent4D[Bytes]{
		Width:    e.Width * ElementSizeB(format),
		Height:   e.Height,
		Depth:    e.Depth,
		ArrayLen: e.ArrayLen,
	}
}

// PxToEl converts a pixel extent to format elements under the given sample layout.
func PxToEl(e Extent4D[Pixels], format core1_0.Format, layout SampleLayout) Extent4D[Elements] {
	return SaToEl(PxToSa(e, layout), format)
}

// PxToB converts a pixel extent all the way to bytes under the given format
// and sample layout.
func PxToB(e Extent4D[Pixels], format core1_0.Format, layout SampleLayout) Extent4D[Bytes] {
	return ElToB(PxToEl(e, format, layout), format)
}
