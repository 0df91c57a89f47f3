package nvimage

import "github.com/vkngwrapper/core/v2/core1_0"

// ViewType is the shape an image is viewed as.
type ViewType uint8

const (
	ViewType1D ViewType = iota
	ViewType2D
	ViewType3D
	ViewType3DSliced
	ViewTypeCube
	ViewType1DArray
	ViewType2DArray
	ViewTypeCubeArray
)

// View is a passive description of an image view. This package carries it for
// consumers that program texture headers; it never constructs or validates
// one.
type View struct {
	ViewType ViewType

	// Format is the format to use in the view. It may differ from the format
	// of the underlying image but must have the same element size.
	Format core1_0.Format

	BaseLevel uint32
	NumLevels uint32

	// BaseArrayLayer and ArrayLen select the viewed layers. For cube maps
	// both are specified in terms of 2-D layers and must be multiples of 6.
	BaseArrayLayer uint32
	ArrayLen       uint32

	Swizzle [4]core1_0.ComponentSwizzle

	// MinLodClamp carries the VK_EXT_image_view_min_lod clamp.
	MinLodClamp float32
}
