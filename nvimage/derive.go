package nvimage

import "github.com/vkngwrapper/core/v2/core1_0"

// ImageForLevel isolates a single mip level of the image as an independent
// one-level image, rebased to offset 0. The second return value is the
// absolute byte offset of the level within one array layer of the source
// image.
func (i *Image) ImageForLevel(level uint32) (Image, uint64) {
	if level >= i.NumLevels {
		panic("nvimage: level out of range")
	}

	lvlExtentPx := i.LevelExtentPx(level)
	lvl := i.Levels[level]
	alignB := lvl.Tiling.SizeB()

	// The level's stored size is the distance to the next level's offset, or
	// the remaining bytes in the layer for the last level. Levels are
	// sequential and tightly packed, with each level at least as aligned as
	// the next one.
	sizeB := i.SizeB - lvl.OffsetB
	if level+1 < i.NumLevels {
		nextLvlOffsetB := i.Levels[level+1].OffsetB
		if nextLvlOffsetB <= lvl.OffsetB {
			panic("nvimage: level offsets out of order")
		}
		sizeB = nextLvlOffsetB - lvl.OffsetB
	}

	out := *i
	out.ExtentPx = lvlExtentPx
	out.NumLevels = 1
	out.Levels = [MaxLevels]ImageLevel{}
	out.Levels[0] = lvl
	out.Levels[0].OffsetB = 0
	out.AlignB = alignB
	out.SizeB = sizeB

	// A level cut out from before the mip tail still carries a tail marker.
	if level < i.MipTailFirstLod {
		out.MipTailFirstLod = 1
	} else {
		out.MipTailFirstLod = 0
	}

	return out, lvl.OffsetB
}

// LevelAsUncompressed views one level of a block-compressed image as an
// equivalent-size uncompressed image, with the extent counted in compressed
// blocks rather than texels. The stand-in format is arbitrary; it just has
// the right number of bits per element. The second return value is the
// absolute byte offset of the level within one array layer.
func (i *Image) LevelAsUncompressed(level uint32) (Image, uint64) {
	if i.SampleLayout != SampleLayout1x1 {
		panic("nvimage: compressed images cannot be multisampled")
	}

	var ucFormat core1_0.Format
	switch ElementSizeB(i.Format) {
	case 4:
		ucFormat = core1_0.FormatR32UnsignedInt
	case 8:
		ucFormat = core1_0.FormatR32G32UnsignedInt
	case 16:
		ucFormat = core1_0.FormatR32G32B32A32UnsignedInt
	default:
		panic("nvimage: no uncompressed format with this element size")
	}

	lvlImage, offsetB := i.ImageForLevel(level)

	out := lvlImage
	out.Format = ucFormat
	out.ExtentPx = CastUnits[Pixels](PxToEl(lvlImage.ExtentPx, lvlImage.Format, lvlImage.SampleLayout))
	return out, offsetB
}

// Level3DAs2DArray reinterprets one level of a 3-D image as a 2-D array
// image whose layers are the original z slices. The level's tiling must not
// interleave z slices within a block. The second return value is the absolute
// byte offset of the level within the source image.
func (i *Image) Level3DAs2DArray(level uint32) (Image, uint64) {
	if i.Dim != ImageDim3D {
		panic("nvimage: only 3D images can be reinterpreted as 2D arrays")
	}
	if i.ExtentPx.ArrayLen != 1 {
		panic("nvimage: 3D images cannot have array layers")
	}
	if i.SampleLayout != SampleLayout1x1 {
		panic("nvimage: 3D images cannot be multisampled")
	}

	out, offsetB := i.ImageForLevel(level)

	lvl0 := out.Levels[0]
	if lvl0.Tiling.IsTiled && lvl0.Tiling.ZLog2 != 0 {
		panic("nvimage: 3D tiling must keep z slices separate for 2D array reinterpretation")
	}

	lvlExtentB := out.LevelExtentB(0).Align(lvl0.Tiling.ExtentB())
	zStrideB := uint64(lvlExtentB.Width) * uint64(lvlExtentB.Height)

	out.Dim = ImageDim2D
	out.ExtentPx.ArrayLen = out.ExtentPx.Depth
	out.ExtentPx.Depth = 1
	out.ArrayStrideB = zStrideB

	return out, offsetB
}

// MsaaAsSamples reinterprets a multisampled image as a single-sample image of
// its expanded supersample grid: each sample of the original becomes an
// independent pixel.
func (i *Image) MsaaAsSamples() Image {
	if i.Dim != ImageDim2D {
		panic("nvimage: only 2D images can be multisampled")
	}
	if i.NumLevels != 1 {
		panic("nvimage: multisampled images cannot have mip levels")
	}

	extentSa := PxToSa(i.ExtentPx, i.SampleLayout)

	out := *i
	out.ExtentPx = CastUnits[Pixels](extentSa)
	out.SampleLayout = SampleLayout1x1
	return out
}
