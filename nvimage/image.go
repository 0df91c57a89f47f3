package nvimage

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/nvlayout/layoututils"
)

// MaxLevels is the hardware cap on mip levels per image.
const MaxLevels = 16

// ImageUsageFlags is the bitmask of usage requests that influence layout.
type ImageUsageFlags uint8

const (
	// ImageUsage2DView indicates 2-D views will be created of this image, so
	// z slices must remain independently addressable.
	ImageUsage2DView ImageUsageFlags = 1 << iota
	// ImageUsageLinear requests a linear (non-tiled) layout.
	ImageUsageLinear
	// ImageUsageSparseResidency requests page-granular partial binding.
	ImageUsageSparseResidency
)

// ImageDim is an image's dimensionality.
type ImageDim uint8

const (
	ImageDim1D ImageDim = iota + 1
	ImageDim2D
	ImageDim3D
)

func (d ImageDim) String() string {
	switch d {
	case ImageDim1D:
		return "ImageDim1D"
	case ImageDim2D:
		return "ImageDim2D"
	case ImageDim3D:
		return "ImageDim3D"
	}

	return "ImageDimUnknown"
}

// ImageInitInfo is a layout construction request. It is read-only to this
// package.
type ImageInitInfo struct {
	Dim      ImageDim
	Format   core1_0.Format
	ExtentPx Extent4D[Pixels]
	Levels   uint32
	Samples  uint32
	Usage    ImageUsageFlags
}

// ImageLevel is the data layout of a single mip level of an image.
type ImageLevel struct {
	// OffsetB is the byte offset of this level within one array layer.
	OffsetB uint64
	// Tiling is the tiling in effect for this level, possibly clamped below
	// the image's base tiling.
	Tiling Tiling
	// RowStrideB is the byte distance between rows.
	RowStrideB uint32
}

// Image is a computed layout. Once built it is an immutable fact and may be
// copied and read freely.
type Image struct {
	Dim          ImageDim
	Format       core1_0.Format
	ExtentPx     Extent4D[Pixels]
	SampleLayout SampleLayout
	NumLevels    uint32
	// MipTailFirstLod is the first level folded into the sparse mip tail. It
	// stays 0 (unset) for non-sparse images.
	MipTailFirstLod uint32
	Levels          [MaxLevels]ImageLevel
	// ArrayStrideB is the byte distance between consecutive array layers.
	ArrayStrideB uint64
	// AlignB is the required placement alignment in bytes.
	AlignB uint32
	// SizeB is the total image size in bytes.
	SizeB uint64
	// TileMode is the packed y/z block-size-exponent encoding programmed into
	// hardware registers.
	TileMode uint16
	// PteKind tells the memory controller how to interpret this image's pages.
	PteKind uint8
}

// NewImage computes the layout of an image described by info on the device
// described by dev. Violating the dimensionality constraints (1-D images must
// have height, depth and samples of 1; 2-D images depth of 1; 3-D images a
// single layer and sample) is a contract violation and panics, as is a linear
// image that is not 2-D, single-level and single-sample.
func NewImage(dev *DeviceInfo, info *ImageInitInfo) Image {
	switch info.Dim {
	case ImageDim1D:
		if info.ExtentPx.Height != 1 {
			panic("nvimage: 1D images must have a height of 1")
		}
		if info.ExtentPx.Depth != 1 {
			panic("nvimage: 1D images must have a depth of 1")
		}
		if info.Samples != 1 {
			panic("nvimage: 1D images cannot be multisampled")
		}
	case ImageDim2D:
		if info.ExtentPx.Depth != 1 {
			panic("nvimage: 2D images must have a depth of 1")
		}
	case ImageDim3D:
		if info.ExtentPx.ArrayLen != 1 {
			panic("nvimage: 3D images cannot have array layers")
		}
		if info.Samples != 1 {
			panic("nvimage: 3D images cannot be multisampled")
		}
	default:
		panic("nvimage: unknown image dimensionality")
	}

	if info.Levels < 1 || info.Levels > MaxLevels {
		panic("nvimage: level count must be between 1 and 16")
	}

	sampleLayout := ChooseSampleLayout(info.Samples)

	var tiling Tiling
	if info.Usage&ImageUsageSparseResidency != 0 {
		tiling = SparseTiling(info.Format, info.Dim)
	} else {
		tiling = ChooseTiling(info.ExtentPx, info.Format, sampleLayout, info.Usage)
	}

	image := Image{
		Dim:          info.Dim,
		Format:       info.Format,
		ExtentPx:     info.ExtentPx,
		SampleLayout: sampleLayout,
		NumLevels:    info.Levels,
	}

	if info.Usage&ImageUsageSparseResidency != 0 {
		image.MipTailFirstLod = info.Levels
	}

	layerSizeB := uint64(0)
	for level := uint32(0); level < info.Levels; level++ {
		lvlExtentB := image.LevelExtentB(level)
		if tiling.IsTiled {
			lvlTiling := tiling.Clamp(lvlExtentB)
			if lvlTiling != tiling {
				image.MipTailFirstLod = layoututils.Min(image.MipTailFirstLod, level)
			}

			// Align the level to whole tiling blocks
			lvlExtentB = lvlExtentB.Align(lvlTiling.ExtentB())

			image.Levels[level] = ImageLevel{
				OffsetB:    layerSizeB,
				Tiling:     lvlTiling,
				RowStrideB: lvlExtentB.Width,
			}
		} else {
			if image.Dim != ImageDim2D {
				panic("nvimage: linear images must be 2D")
			}
			if image.NumLevels != 1 {
				panic("nvimage: linear images cannot have mip levels")
			}
			if image.SampleLayout != SampleLayout1x1 {
				panic("nvimage: linear images cannot be multisampled")
			}
			if lvlExtentB.Depth != 1 {
				panic("nvimage: linear images must have a depth of 1")
			}

			image.Levels[level] = ImageLevel{
				OffsetB: layerSizeB,
				Tiling:  tiling,
				// Rendering requires linear row strides aligned to 128B
				RowStrideB: layoututils.AlignUp(lvlExtentB.Width, 128),
			}
		}

		layerSizeB += image.LevelSizeB(level)
	}

	// Level 0's tiling is what gets programmed into hardware registers, so it
	// is authoritative for the array stride and alignment even when, for a
	// small sparse image, clamping shrank level 0 below the tiling selected
	// above.
	lvl0TilingSizeB := image.Levels[0].Tiling.SizeB()

	image.ArrayStrideB = layoututils.AlignUp(layerSizeB, uint64(lvl0TilingSizeB))
	image.SizeB = image.ArrayStrideB * uint64(image.ExtentPx.ArrayLen)
	image.AlignB = lvl0TilingSizeB

	// Sparse binding happens at 64K page granularity regardless of which tile
	// format was chosen.
	if info.Usage&ImageUsageSparseResidency != 0 {
		image.AlignB = layoututils.Max(image.AlignB, 1<<16)
	}

	if image.Levels[0].Tiling.IsTiled {
		image.TileMode = uint16(image.Levels[0].Tiling.YLog2)<<4 |
			uint16(image.Levels[0].Tiling.ZLog2)<<8

		// Framebuffer compression stays off until comptag allocation exists.
		image.PteKind = choosePteKind(dev, info.Format, info.Samples, false)

		image.AlignB = layoututils.Max(image.AlignB, 4096)
		if image.PteKind >= pteKindNeeds64KFirst && image.PteKind <= pteKindNeeds64KLast {
			image.AlignB = layoututils.Max(image.AlignB, 1<<16)
		}
	} else {
		image.AlignB = layoututils.Max(image.AlignB, 128)
	}

	image.SizeB = layoututils.AlignUp(image.SizeB, uint64(image.AlignB))

	layoututils.DebugValidate(&image)
	return image
}

// Validate checks the structural invariants of a computed layout. NewImage
// runs it under the debug_layout_checks build tag; it is also usable as a
// sanity check on layouts that crossed a foreign-function boundary.
func (i *Image) Validate() error {
	if i.NumLevels < 1 || i.NumLevels > MaxLevels {
		return cerrors.Newf("image has invalid level count %d", i.NumLevels)
	}

	for level := uint32(1); level < i.NumLevels; level++ {
		if i.Levels[level].OffsetB <= i.Levels[level-1].OffsetB {
			return cerrors.Newf("level %d offset %d does not lie beyond level %d offset %d",
				level, i.Levels[level].OffsetB, level-1, i.Levels[level-1].OffsetB)
		}
	}

	lvl0TilingSizeB := uint64(i.Levels[0].Tiling.SizeB())
	if i.ArrayStrideB%lvl0TilingSizeB != 0 {
		return cerrors.Newf("array stride %d is not a multiple of the level 0 tile size %d",
			i.ArrayStrideB, lvl0TilingSizeB)
	}

	if i.AlignB == 0 {
		return cerrors.New("image has no alignment")
	}
	if i.SizeB%uint64(i.AlignB) != 0 {
		return cerrors.Newf("image size %d is not a multiple of its alignment %d", i.SizeB, i.AlignB)
	}

	return nil
}
