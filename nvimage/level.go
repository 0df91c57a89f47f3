package nvimage

import "math"

// LevelExtentPx returns the pixel extent of a mip level. Levels above 0
// require a single-sample image; multisampled images cannot be mipmapped.
func (i *Image) LevelExtentPx(level uint32) Extent4D[Pixels] {
	if level >= i.NumLevels {
		panic("nvimage: level out of range")
	}
	if level != 0 && i.SampleLayout != SampleLayout1x1 {
		panic("nvimage: multisampled images cannot have mip levels")
	}

	return i.ExtentPx.Minify(level)
}

// LevelExtentSa returns the sample-space extent of a mip level.
func (i *Image) LevelExtentSa(level uint32) Extent4D[Samples] {
	return PxToSa(i.LevelExtentPx(level), i.SampleLayout)
}

// LevelExtentB returns the byte extent of a mip level, before any rounding to
// tiling blocks.
func (i *Image) LevelExtentB(level uint32) Extent4D[Bytes] {
	return PxToB(i.LevelExtentPx(level), i.Format, i.SampleLayout)
}

// LevelSizeB returns the stored byte size of a mip level within one array
// layer: the byte extent rounded up to whole tiling blocks for tiled levels,
// or row stride times height for linear levels.
func (i *Image) LevelSizeB(level uint32) uint64 {
	if level >= i.NumLevels {
		panic("nvimage: level out of range")
	}

	lvlExtentB := i.LevelExtentB(level)
	lvl := &i.Levels[level]

	if lvl.Tiling.IsTiled {
		return FlatSizeB(lvlExtentB.Align(lvl.Tiling.ExtentB()))
	}

	if lvlExtentB.Depth != 1 {
		panic("nvimage: linear images must have a depth of 1")
	}
	return uint64(lvl.RowStrideB) * uint64(lvlExtentB.Height)
}

// LevelDepthStrideB returns the byte distance between z slices of a tiled 3-D
// level: the area of one slice at tiling-block granularity.
func (i *Image) LevelDepthStrideB(level uint32) uint64 {
	if level >= i.NumLevels {
		panic("nvimage: level out of range")
	}

	lvlExtentB := i.LevelExtentB(level)
	lvl := &i.Levels[level]
	lvlExtentB = lvlExtentB.Align(lvl.Tiling.ExtentB())

	return uint64(lvlExtentB.Width) * uint64(lvlExtentB.Height)
}

// LevelLayerOffsetB returns the byte offset of (level, layer) within the
// image: the level's intra-layer offset plus whole array strides.
func (i *Image) LevelLayerOffsetB(level, layer uint32) uint64 {
	if level >= i.NumLevels {
		panic("nvimage: level out of range")
	}
	if layer >= i.ExtentPx.ArrayLen {
		panic("nvimage: layer out of range")
	}

	return i.Levels[level].OffsetB + uint64(layer)*i.ArrayStrideB
}

// LevelZOffsetB returns the byte offset of z slice z within a tiled level.
// The z coordinate decomposes into a whole-block granule index and a
// sub-block GOB index.
func (i *Image) LevelZOffsetB(level, z uint32) uint64 {
	if level >= i.NumLevels {
		panic("nvimage: level out of range")
	}
	lvlExtentPx := i.LevelExtentPx(level)
	if z >= lvlExtentPx.Depth {
		panic("nvimage: z slice out of range")
	}

	lvlTiling := i.Levels[level].Tiling
	zTl := z >> lvlTiling.ZLog2
	zGob := z & ((1 << lvlTiling.ZLog2) - 1)

	lvlExtentTl := lvlTiling.ExtentTl(PxToB(lvlExtentPx, i.Format, i.SampleLayout))
	offsetB := uint64(lvlExtentTl.Width) * uint64(lvlExtentTl.Height) *
		uint64(zTl) * uint64(lvlTiling.SizeB())

	tilingExtentB := lvlTiling.ExtentB()
	return offsetB + uint64(tilingExtentB.Width)*uint64(tilingExtentB.Height)*uint64(zGob)
}

// MipTailOffsetB returns the byte offset of the sparse mip tail within one
// array layer. Querying an image without a mip tail is a contract violation.
func (i *Image) MipTailOffsetB() uint64 {
	if i.MipTailFirstLod == 0 || i.MipTailFirstLod >= i.NumLevels {
		panic("nvimage: image has no mip tail")
	}

	return i.Levels[i.MipTailFirstLod].OffsetB
}

// MipTailSizeB returns the byte size of the sparse mip tail: everything from
// the tail's first level to the end of the array layer.
func (i *Image) MipTailSizeB() uint32 {
	sizeB := i.ArrayStrideB - i.MipTailOffsetB()
	if sizeB > math.MaxUint32 {
		panic("nvimage: mip tail size does not fit in 32 bits")
	}
	return uint32(sizeB)
}
