package nvimage

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/nvlayout/layoututils"
)

// Turing kinds in this range reference compression backing and force 64K
// placement alignment.
const (
	pteKindNeeds64KFirst = 0x0b
	pteKindNeeds64KLast  = 0x0e
)

// choosePteKind selects the page-table-entry kind for an image. The kind
// values are raw MMU constants lifted from the hardware headers; they must
// never be re-derived. Formats without a special kind resolve to 0, which is
// itself meaningful ("no kind") rather than an error.
//
// compressed is reserved for framebuffer compression and is always false
// until comptag allocation exists.
func choosePteKind(dev *DeviceInfo, format core1_0.Format, samples uint32, compressed bool) uint8 {
	switch dev.Generation() {
	case GenerationTuring:
		return tu102ChoosePteKind(format, compressed)
	case GenerationFermi:
		return nvc0ChoosePteKind(format, samples, compressed)
	}

	panic("nvimage: unsupported 3d engine class")
}

func tu102ChoosePteKind(format core1_0.Format, compressed bool) uint8 {
	switch format {
	case core1_0.FormatD16UnsignedNormalized:
		if compressed {
			return 0x0b // NV_MMU_PTE_KIND_Z16_COMPRESSIBLE_DISABLE_PLC
		}
		return 0x01 // NV_MMU_PTE_KIND_Z16
	case core1_0.FormatD24X8UnsignedNormalizedPacked:
		if compressed {
			return 0x0e // NV_MMU_PTE_KIND_Z24S8_COMPRESSIBLE_DISABLE_PLC
		}
		return 0x05 // NV_MMU_PTE_KIND_Z24S8
	case core1_0.FormatD24UnsignedNormalizedS8UnsignedInt:
		if compressed {
			return 0x0c // NV_MMU_PTE_KIND_S8Z24_COMPRESSIBLE_DISABLE_PLC
		}
		return 0x03 // NV_MMU_PTE_KIND_S8Z24
	case core1_0.FormatD32SignedFloatS8UnsignedInt:
		if compressed {
			return 0x0d // NV_MMU_PTE_KIND_ZF32_X24S8_COMPRESSIBLE_DISABLE_PLC
		}
		return 0x04 // NV_MMU_PTE_KIND_ZF32_X24S8
	case core1_0.FormatD32SignedFloat:
		return 0x06 // NV_MMU_PTE_KIND_ZF32
	default:
		return 0
	}
}

func nvc0ChoosePteKind(format core1_0.Format, samples uint32, compressed bool) uint8 {
	// Compression kinds scale with the MSAA sample count on this generation.
	ms := uint8(layoututils.Log2(samples))

	switch format {
	case core1_0.FormatD16UnsignedNormalized:
		if compressed {
			return 0x02 + ms
		}
		return 0x01
	case core1_0.FormatD24X8UnsignedNormalizedPacked:
		if compressed {
			return 0x51 + ms
		}
		return 0x46
	case core1_0.FormatD24UnsignedNormalizedS8UnsignedInt:
		if compressed {
			return 0x17 + ms
		}
		return 0x11
	case core1_0.FormatD32SignedFloatS8UnsignedInt:
		if compressed {
			return 0xce + ms
		}
		return 0xc3
	}

	blockSizeBits := ElementSizeB(format) * 8
	switch blockSizeBits {
	case 128:
		if compressed {
			return 0xf4 + ms*2
		}
		return 0xfe
	case 64:
		if compressed {
			switch samples {
			case 1:
				return 0xe6
			case 2:
				return 0xeb
			case 4:
				return 0xed
			case 8:
				return 0xf2
			}
			panic("nvimage: unsupported sample count")
		}
		return 0xfe
	case 32:
		if compressed && ms != 0 {
			switch samples {
			// The single-sample compressed kind (0xdb) makes things blurry
			// and is deliberately left out.
			case 2:
				return 0xdd
			case 4:
				return 0xdf
			case 8:
				return 0xe4
			default:
				return 0
			}
		}
		return 0xfe
	case 16, 8:
		return 0xfe
	default:
		return 0
	}
}
