package nvimage

import (
	"fmt"

	"github.com/vkngwrapper/core/v2/core1_0"
)

// formatInfo is the fixed per-format metadata layout arithmetic needs: the
// byte size of one element and, for block-compressed formats, the pixel
// footprint of one block.
type formatInfo struct {
	elSizeB       uint32
	blockWidthPx  uint32
	blockHeightPx uint32
}

var formatInfos = map[core1_0.Format]formatInfo{
	core1_0.FormatR8UnsignedNormalized:                 {elSizeB: 1, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR8UnsignedInt:                        {elSizeB: 1, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR8G8UnsignedNormalized:               {elSizeB: 2, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR5G6B5UnsignedNormalizedPacked:       {elSizeB: 2, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatA1R5G5B5UnsignedNormalizedPacked:     {elSizeB: 2, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR16UnsignedNormalized:                {elSizeB: 2, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR16SignedFloat:                       {elSizeB: 2, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR8G8B8A8UnsignedNormalized:           {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR8G8B8A8SRGB:                         {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatB8G8R8A8UnsignedNormalized:           {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatB8G8R8A8SRGB:                         {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatA8B8G8R8UnsignedIntPacked:            {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatA2B10G10R10UnsignedNormalizedPacked:  {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatB10G11R11UnsignedFloatPacked:         {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatE5B9G9R9UnsignedFloatPacked:          {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR16G16SignedFloat:                    {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR32UnsignedInt:                       {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR32SignedFloat:                       {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR16G16B16A16SignedFloat:              {elSizeB: 8, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR32G32UnsignedInt:                    {elSizeB: 8, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR32G32SignedFloat:                    {elSizeB: 8, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR32G32B32A32UnsignedInt:              {elSizeB: 16, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatR32G32B32A32SignedFloat:              {elSizeB: 16, blockWidthPx: 1, blockHeightPx: 1},

	core1_0.FormatD16UnsignedNormalized:              {elSizeB: 2, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatD24X8UnsignedNormalizedPacked:      {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatD24UnsignedNormalizedS8UnsignedInt: {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatD32SignedFloat:                     {elSizeB: 4, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatD32SignedFloatS8UnsignedInt:        {elSizeB: 8, blockWidthPx: 1, blockHeightPx: 1},
	core1_0.FormatS8UnsignedInt:                      {elSizeB: 1, blockWidthPx: 1, blockHeightPx: 1},

	core1_0.FormatBC1_RGBUnsignedNormalized:  {elSizeB: 8, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC1_RGBsRGB:                {elSizeB: 8, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC1_RGBAUnsignedNormalized: {elSizeB: 8, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC1_RGBAsRGB:               {elSizeB: 8, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC2_UnsignedNormalized:     {elSizeB: 16, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC2_sRGB:                   {elSizeB: 16, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC3_UnsignedNormalized:     {elSizeB: 16, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC3_sRGB:                   {elSizeB: 16, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC4_UnsignedNormalized:     {elSizeB: 8, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC4_SignedNormalized:       {elSizeB: 8, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC5_UnsignedNormalized:     {elSizeB: 16, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC5_SignedNormalized:       {elSizeB: 16, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC7_UnsignedNormalized:     {elSizeB: 16, blockWidthPx: 4, blockHeightPx: 4},
	core1_0.FormatBC7_sRGB:                   {elSizeB: 16, blockWidthPx: 4, blockHeightPx: 4},
}

func lookupFormatInfo(format core1_0.Format) formatInfo {
	info, ok := formatInfos[format]
	if !ok {
		panic(fmt.Sprintf("nvimage: no layout metadata for format %s", format))
	}
	return info
}

// ElementSizeB returns the byte size of one element of format: one texel for
// plain formats, one compressed block for block-compressed formats.
func ElementSizeB(format core1_0.Format) uint32 {
	return lookupFormatInfo(format).elSizeB
}
