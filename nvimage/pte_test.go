package nvimage

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
)

var tu102PteKindTestCases = map[string]struct {
	Format     core1_0.Format
	Compressed bool
	Kind       uint8
}{
	"Z16": {
		Format: core1_0.FormatD16UnsignedNormalized,
		Kind:   0x01,
	},
	"Z16 Compressed": {
		Format:     core1_0.FormatD16UnsignedNormalized,
		Compressed: true,
		Kind:       0x0b,
	},
	"Z24S8": {
		Format: core1_0.FormatD24X8UnsignedNormalizedPacked,
		Kind:   0x05,
	},
	"Z24S8 Compressed": {
		Format:     core1_0.FormatD24X8UnsignedNormalizedPacked,
		Compressed: true,
		Kind:       0x0e,
	},
	"S8Z24": {
		Format: core1_0.FormatD24UnsignedNormalizedS8UnsignedInt,
		Kind:   0x03,
	},
	"S8Z24 Compressed": {
		Format:     core1_0.FormatD24UnsignedNormalizedS8UnsignedInt,
		Compressed: true,
		Kind:       0x0c,
	},
	"ZF32_X24S8": {
		Format: core1_0.FormatD32SignedFloatS8UnsignedInt,
		Kind:   0x04,
	},
	"ZF32_X24S8 Compressed": {
		Format:     core1_0.FormatD32SignedFloatS8UnsignedInt,
		Compressed: true,
		Kind:       0x0d,
	},
	"ZF32": {
		Format: core1_0.FormatD32SignedFloat,
		Kind:   0x06,
	},
	"Color Formats Have No Kind": {
		Format: core1_0.FormatR8G8B8A8UnsignedNormalized,
		Kind:   0,
	},
	"Color Formats Have No Kind Even Compressed": {
		Format:     core1_0.FormatR8G8B8A8UnsignedNormalized,
		Compressed: true,
		Kind:       0,
	},
}

func TestTu102ChoosePteKind(t *testing.T) {
	for name, testCase := range tu102PteKindTestCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, testCase.Kind, tu102ChoosePteKind(testCase.Format, testCase.Compressed))
		})
	}
}

var nvc0PteKindTestCases = map[string]struct {
	Format     core1_0.Format
	Samples    uint32
	Compressed bool
	Kind       uint8
}{
	"Z16": {
		Format:  core1_0.FormatD16UnsignedNormalized,
		Samples: 1,
		Kind:    0x01,
	},
	"Z16 Compressed 4x": {
		Format:     core1_0.FormatD16UnsignedNormalized,
		Samples:    4,
		Compressed: true,
		Kind:       0x04,
	},
	"Z24S8": {
		Format:  core1_0.FormatD24X8UnsignedNormalizedPacked,
		Samples: 1,
		Kind:    0x46,
	},
	"Z24S8 Compressed 2x": {
		Format:     core1_0.FormatD24X8UnsignedNormalizedPacked,
		Samples:    2,
		Compressed: true,
		Kind:       0x52,
	},
	"S8Z24": {
		Format:  core1_0.FormatD24UnsignedNormalizedS8UnsignedInt,
		Samples: 4,
		Kind:    0x11,
	},
	"S8Z24 Compressed 8x": {
		Format:     core1_0.FormatD24UnsignedNormalizedS8UnsignedInt,
		Samples:    8,
		Compressed: true,
		Kind:       0x1a,
	},
	"ZF32_X24S8": {
		Format:  core1_0.FormatD32SignedFloatS8UnsignedInt,
		Samples: 1,
		Kind:    0xc3,
	},
	"ZF32_X24S8 Compressed 4x": {
		Format:     core1_0.FormatD32SignedFloatS8UnsignedInt,
		Samples:    4,
		Compressed: true,
		Kind:       0xd0,
	},
	"128-Bit Blocks": {
		Format:  core1_0.FormatR32G32B32A32SignedFloat,
		Samples: 1,
		Kind:    0xfe,
	},
	"128-Bit Blocks Compressed 2x": {
		Format:     core1_0.FormatR32G32B32A32SignedFloat,
		Samples:    2,
		Compressed: true,
		Kind:       0xf6,
	},
	"64-Bit Blocks": {
		Format:  core1_0.FormatR16G16B16A16SignedFloat,
		Samples: 1,
		Kind:    0xfe,
	},
	"64-Bit Blocks Compressed 4x": {
		Format:     core1_0.FormatR16G16B16A16SignedFloat,
		Samples:    4,
		Compressed: true,
		Kind:       0xed,
	},
	"32-Bit Blocks": {
		Format:  core1_0.FormatR8G8B8A8UnsignedNormalized,
		Samples: 4,
		Kind:    0xfe,
	},
	"32-Bit Blocks Compressed 2x": {
		Format:     core1_0.FormatR8G8B8A8UnsignedNormalized,
		Samples:    2,
		Compressed: true,
		Kind:       0xdd,
	},
	"32-Bit Blocks Compressed 8x": {
		Format:     core1_0.FormatR8G8B8A8UnsignedNormalized,
		Samples:    8,
		Compressed: true,
		Kind:       0xe4,
	},
	// Single-sample 32-bit images never get a compression kind on this
	// generation, even though every other sample count does.
	"32-Bit Blocks Compressed 1x Stays Uncompressed": {
		Format:     core1_0.FormatR8G8B8A8UnsignedNormalized,
		Samples:    1,
		Compressed: true,
		Kind:       0xfe,
	},
	"16-Bit Blocks": {
		Format:  core1_0.FormatR16SignedFloat,
		Samples: 1,
		Kind:    0xfe,
	},
	"8-Bit Blocks": {
		Format:  core1_0.FormatR8UnsignedNormalized,
		Samples: 1,
		Kind:    0xfe,
	},
}

func TestNvc0ChoosePteKind(t *testing.T) {
	for name, testCase := range nvc0PteKindTestCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, testCase.Kind, nvc0ChoosePteKind(testCase.Format, testCase.Samples, testCase.Compressed))
		})
	}
}

func TestChoosePteKindGenerationDispatch(t *testing.T) {
	format := core1_0.FormatD24X8UnsignedNormalizedPacked

	require.Equal(t, uint8(0x05), choosePteKind(&turingDevice, format, 1, false))
	require.Equal(t, uint8(0x46), choosePteKind(&fermiDevice, format, 1, false))

	// Anything between Fermi and Turing resolves through the legacy table
	keplerDevice := DeviceInfo{Cls3D: 0xa097}
	require.Equal(t, uint8(0x46), choosePteKind(&keplerDevice, format, 1, false))

	preFermiDevice := DeviceInfo{Cls3D: 0x8297}
	require.Equal(t, GenerationUnsupported, preFermiDevice.Generation())
	require.Panics(t, func() {
		choosePteKind(&preFermiDevice, format, 1, false)
	})
}

func TestDepthImageGets64KAlignmentOnTuring(t *testing.T) {
	// Z16's compressed kind lands in the reserved range on Turing only when
	// compression is on; the uncompressed kinds do not force 64K.
	image := NewImage(&turingDevice, &ImageInitInfo{
		Dim:      ImageDim2D,
		Format:   core1_0.FormatD16UnsignedNormalized,
		ExtentPx: NewExtent4D[Pixels](256, 256, 1, 1),
		Levels:   1,
		Samples:  1,
	})

	require.Equal(t, uint8(0x01), image.PteKind)

	// The level 0 tile is 16K here, and the uncompressed Z16 kind is outside
	// the reserved range, so alignment stays below 64K
	require.Equal(t, uint32(16384), image.AlignB)
	require.Less(t, image.AlignB, uint32(1<<16))
}
