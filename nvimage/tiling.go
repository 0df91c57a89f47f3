package nvimage

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/nvlayout/layoututils"
)

// A GOB ("group of bytes") is the fixed unit block-linear memory is built
// from on every generation this package supports: 64 bytes wide, 8 rows tall,
// 1 slice deep.
const (
	GobWidthB = 64
	GobHeight = 8
	GobDepth  = 1
	GobSizeB  = GobWidthB * GobHeight * GobDepth
)

// Hardware block-size limits, in log2 GOBs.
const (
	maxYLog2 = 5
	maxZLog2 = 5
)

// Tiling describes a block-linear tiling as log2 block-size factors measured
// in GOBs along each axis. The zero value is the linear (non-tiled) marker.
type Tiling struct {
	// IsTiled distinguishes real block-linear tilings from linear layouts.
	IsTiled bool
	// XLog2 is nonzero only for sparse block shapes; hardware tile modes
	// require single-GOB-wide blocks.
	XLog2 uint8
	YLog2 uint8
	ZLog2 uint8
}

// ChooseTiling returns the best tiling for a full image with the given
// extent, format, sample layout and usage. It returns the linear marker when
// usage requests a linear layout.
func ChooseTiling(extentPx Extent4D[Pixels], format core1_0.Format, layout SampleLayout, usage ImageUsageFlags) Tiling {
	if usage&ImageUsageLinear != 0 {
		return Tiling{}
	}

	tiling := Tiling{
		IsTiled: true,
		YLog2:   maxYLog2,
		ZLog2:   maxZLog2,
	}
	if usage&ImageUsage2DView != 0 {
		// 2-D views address one z slice at a time, so slices must not be
		// interleaved within a block.
		tiling.ZLog2 = 0
	}

	return tiling.Clamp(PxToB(extentPx, format, layout))
}

// SparseTiling returns the generation's fixed sparse-residency block shape
// for the given format and dimensionality. Sparse blocks are always 64KiB,
// the GPU page-binding granularity.
func SparseTiling(format core1_0.Format, dim ImageDim) Tiling {
	if dim == ImageDim3D {
		// 64B x 128 rows x 8 slices = 64KiB
		return Tiling{
			IsTiled: true,
			YLog2:   4,
			ZLog2:   3,
		}
	}

	// 256B x 256 rows = 64KiB
	return Tiling{
		IsTiled: true,
		XLog2:   2,
		YLog2:   5,
	}
}

// Clamp restricts the tiling to fit within extentB. Smaller mip levels
// legitimately use smaller block shapes than the image's base tiling.
func (t Tiling) Clamp(extentB Extent4D[Bytes]) Tiling {
	if !t.IsTiled {
		return t
	}

	widthGobs := layoututils.DivCeil(extentB.Width, uint32(GobWidthB))
	heightGobs := layoututils.DivCeil(extentB.Height, uint32(GobHeight))

	clamped := t
	clamped.XLog2 = layoututils.Min(t.XLog2, uint8(layoututils.CeilLog2(widthGobs)))
	clamped.YLog2 = layoututils.Min(t.YLog2, uint8(layoututils.CeilLog2(heightGobs)))
	clamped.ZLog2 = layoututils.Min(t.ZLog2, uint8(layoututils.CeilLog2(extentB.Depth)))
	return clamped
}

// ExtentB returns the byte extent of one tiling block. The linear marker
// reports a 1x1x1 block so that aligning to it is a no-op.
func (t Tiling) ExtentB() Extent4D[Bytes] {
	if !t.IsTiled {
		return NewExtent4D[Bytes](1, 1, 1, 1)
	}

	return NewExtent4D[Bytes](
		GobWidthB<<t.XLog2,
		GobHeight<<t.YLog2,
		GobDepth<<t.ZLog2,
		1,
	)
}

// SizeB returns the flat byte size of one tiling block.
func (t Tiling) SizeB() uint32 {
	extentB := t.ExtentB()
	return extentB.Width * extentB.Height * extentB.Depth
}

// ExtentTl converts a byte extent to whole block granules of this tiling,
// rounding partial blocks up.
func (t Tiling) ExtentTl(e Extent4D[Bytes]) Extent4D[Tiles] {
	extentB := t.ExtentB()
	return Extent4D[Tiles]{
		Width:    layoututils.DivCeil(e.Width, extentB.Width),
		Height:   layoututils.DivCeil(e.Height, extentB.Height),
		Depth:    layoututils.DivCeil(e.Depth, extentB.Depth),
		ArrayLen: e.ArrayLen,
	}
}
