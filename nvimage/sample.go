package nvimage

// SampleLayout describes the fixed 2-D grid of sample positions one logical
// pixel of a multisampled image occupies in storage.
type SampleLayout uint8

const (
	// SampleLayout1x1 is the single-sample layout.
	SampleLayout1x1 SampleLayout = iota
	// SampleLayout2x1 stores 2 samples per pixel in a 2-wide, 1-tall grid.
	SampleLayout2x1
	// SampleLayout2x2 stores 4 samples per pixel in a 2x2 grid.
	SampleLayout2x2
	// SampleLayout4x2 stores 8 samples per pixel in a 4-wide, 2-tall grid.
	SampleLayout4x2
	// SampleLayout4x4 stores 16 samples per pixel in a 4x4 grid.
	SampleLayout4x4
	// SampleLayoutInvalid is the sentinel produced for unsupported sample
	// counts. It must never reach sample-extent arithmetic.
	SampleLayoutInvalid
)

// ChooseSampleLayout maps a requested sample count to its storage grid. Any
// count outside {1, 2, 4, 8, 16} yields SampleLayoutInvalid.
func ChooseSampleLayout(samples uint32) SampleLayout {
	switch samples {
	case 1:
		return SampleLayout1x1
	case 2:
		return SampleLayout2x1
	case 4:
		return SampleLayout2x2
	case 8:
		return SampleLayout4x2
	case 16:
		return SampleLayout4x4
	default:
		return SampleLayoutInvalid
	}
}

// PxExtentSa returns how many sample positions one logical pixel occupies
// along each axis.
func (l SampleLayout) PxExtentSa() Extent4D[Samples] {
	switch l {
	case SampleLayout1x1:
		return NewExtent4D[Samples](1, 1, 1, 1)
	case SampleLayout2x1:
		return NewExtent4D[Samples](2, 1, 1, 1)
	case SampleLayout2x2:
		return NewExtent4D[Samples](2, 2, 1, 1)
	case SampleLayout4x2:
		return NewExtent4D[Samples](4, 2, 1, 1)
	case SampleLayout4x4:
		return NewExtent4D[Samples](4, 4, 1, 1)
	}

	panic("nvimage: invalid sample layout")
}

func (l SampleLayout) String() string {
	switch l {
	case SampleLayout1x1:
		return "SampleLayout1x1"
	case SampleLayout2x1:
		return "SampleLayout2x1"
	case SampleLayout2x2:
		return "SampleLayout2x2"
	case SampleLayout4x2:
		return "SampleLayout4x2"
	case SampleLayout4x4:
		return "SampleLayout4x4"
	}

	return "SampleLayoutInvalid"
}
