package imaging

import (
	"image"
	"os"
	"sync"
	"time"

	"github.com/disintegration/imaging"
)

// DefaultCacheEntries is the number of planes an ImageCache created by
// NewImageCache holds before evicting the oldest.
const DefaultCacheEntries = 16

// ImageCache provides thread-safe caching of grayscale planes to avoid
// decoding the same file more than once.
//
// Planes are keyed by the exact path string passed to Load. Different paths
// to the same file (e.g., relative vs absolute) result in separate entries.
//
// # Staleness
//
// Every Load stats the file. An entry whose recorded modification time or
// size no longer matches is decoded again, so a long-running process sees
// files that change on disk.
//
// # Memory Management
//
// The cache holds at most its capacity in planes. Adding a plane to a full
// cache evicts the one stored longest ago. Evict() and Clear() remove entries
// explicitly.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	gray, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Use gray...
//	cache.Evict("/path/to/image.png") // Optional: free memory
type ImageCache struct {
	mu       sync.RWMutex
	images   map[string]cacheEntry
	order    []string
	capacity int
}

type cacheEntry struct {
	gray    *image.Gray
	modTime time.Time
	size    int64
}

func (e cacheEntry) matches(info os.FileInfo) bool {
	return e.size == info.Size() && e.modTime.Equal(info.ModTime())
}

// NewImageCache creates an empty cache holding DefaultCacheEntries planes.
func NewImageCache() *ImageCache {
	return NewImageCacheSize(DefaultCacheEntries)
}

// NewImageCacheSize creates an empty cache holding at most capacity planes.
// A capacity below 1 is treated as 1.
func NewImageCacheSize(capacity int) *ImageCache {
	if capacity < 1 {
		capacity = 1
	}
	return &ImageCache{
		images:   make(map[string]cacheEntry),
		capacity: capacity,
	}
}

// Load returns the grayscale plane for path, reading it from disk on the
// first request and again whenever the file has changed since.
//
// Returned planes are shared between callers and must not be modified.
//
// # Errors
//
// Returns *ImageLoadError if the file does not exist, cannot be read, or is
// not a supported image format. Failed loads are not cached.
func (c *ImageCache) Load(path string) (*image.Gray, error) {
	info, err := os.Stat(path)
	if err != nil {
		c.Evict(path)
		return nil, &ImageLoadError{Path: path, Err: err}
	}

	c.mu.RLock()
	entry, ok := c.images[path]
	c.mu.RUnlock()
	if ok && entry.matches(info) {
		return entry.gray, nil
	}

	img, err := LoadGray(path)
	if err != nil {
		c.Evict(path)
		return nil, err
	}

	c.mu.Lock()
	c.store(path, cacheEntry{gray: img, modTime: info.ModTime(), size: info.Size()})
	c.mu.Unlock()

	return img, nil
}

// store adds or replaces an entry, evicting the oldest ones past capacity.
// The caller holds c.mu.
func (c *ImageCache) store(path string, entry cacheEntry) {
	if _, ok := c.images[path]; ok {
		c.removeOrder(path)
	}
	c.images[path] = entry
	c.order = append(c.order, path)

	for len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.images, oldest)
	}
}

// removeOrder drops path from the insertion order. The caller holds c.mu.
func (c *ImageCache) removeOrder(path string) {
	for i, p := range c.order {
		if p == path {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Clear removes all planes from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cacheEntry)
	c.order = nil
	c.mu.Unlock()
}

// Evict removes a specific plane from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	if _, ok := c.images[path]; ok {
		delete(c.images, path)
		c.removeOrder(path)
	}
	c.mu.Unlock()
}

// Len returns the number of cached planes.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// LoadGray reads an image file and returns it as an 8-bit grayscale plane.
//
// EXIF orientation is applied before conversion. Errors are returned as
// *ImageLoadError.
func LoadGray(path string) (*image.Gray, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	return ToGray(img), nil
}

// ToGray converts any image to a new 8-bit grayscale plane anchored at (0,0).
//
// *image.Gray inputs are copied as-is. Everything else is reduced to
// luminance by imaging.Grayscale; alpha is discarded, not composited.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))

	if src, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+width], src.Pix[off:off+width])
		}
		return dst
	}

	// Grayscale keeps non-premultiplied RGBA with R == G == B
	lum := imaging.Grayscale(img)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.Pix[y*dst.Stride+x] = lum.Pix[y*lum.Stride+x*4]
		}
	}
	return dst
}
