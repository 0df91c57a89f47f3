package nvimage

import "github.com/dolthub/swiss"

type layoutKey struct {
	dev  DeviceInfo
	info ImageInitInfo
}

// LayoutCache memoizes computed layouts. Drivers tend to create runs of
// images with identical parameters (swapchain images, shadow cascades), and
// while a single layout is cheap, texture-header hot paths recompute them
// constantly. A LayoutCache is not safe for concurrent use; give each
// submission thread its own.
type LayoutCache struct {
	layouts *swiss.Map[layoutKey, Image]
}

// NewLayoutCache creates an empty LayoutCache.
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{
		layouts: swiss.NewMap[layoutKey, Image](16),
	}
}

// Image returns the layout for info on dev, computing and retaining it on the
// first request. Contract violations in info panic exactly as NewImage does.
func (c *LayoutCache) Image(dev *DeviceInfo, info *ImageInitInfo) Image {
	key := layoutKey{
		dev:  *dev,
		info: *info,
	}

	image, ok := c.layouts.Get(key)
	if ok {
		return image
	}

	image = NewImage(dev, info)
	c.layouts.Put(key, image)
	return image
}

// Count returns the number of retained layouts.
func (c *LayoutCache) Count() int {
	return c.layouts.Count()
}
