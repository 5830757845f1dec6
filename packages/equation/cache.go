package equation

import (
	"context"
	"image"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// renderResult caches failures as well as images; a deterministic renderer
// fails the same way every time.
type renderResult struct {
	img image.Image
	err error
}

// CachedRenderer memoizes a Renderer by expression. Concurrent requests
// for the same expression share a single underlying render.
type CachedRenderer struct {
	render Renderer
	cache  *gocache.Cache
	group  singleflight.Group
}

// NewCachedRenderer wraps render. Entries expire after ttl; a
// non-positive ttl keeps them for the lifetime of the cache.
func NewCachedRenderer(render Renderer, ttl time.Duration) *CachedRenderer {
	cleanup := ttl * 2
	if ttl <= 0 {
		ttl = gocache.NoExpiration
		cleanup = 0
	}
	return &CachedRenderer{
		render: render,
		cache:  gocache.New(ttl, cleanup),
	}
}

// Render returns the cached render of expr, rendering it on first use.
// Pass the method value cr.Render wherever a Renderer is expected.
func (c *CachedRenderer) Render(expr string) (image.Image, error) {
	ctx := context.Background()
	if v, ok := c.cache.Get(expr); ok {
		recordCacheHit(ctx)
		r := v.(renderResult)
		return r.img, r.err
	}
	v, _, _ := c.group.Do(expr, func() (any, error) {
		if v, ok := c.cache.Get(expr); ok {
			recordCacheHit(ctx)
			return v, nil
		}
		start := time.Now()
		img, err := c.render(expr)
		recordCacheMiss(ctx, time.Since(start), err)
		r := renderResult{img: img, err: err}
		c.cache.SetDefault(expr, r)
		return r, nil
	})
	r := v.(renderResult)
	return r.img, r.err
}

// Len returns the number of cached expressions.
func (c *CachedRenderer) Len() int {
	return c.cache.ItemCount()
}

// Flush drops every cached render.
func (c *CachedRenderer) Flush() {
	c.cache.Flush()
}
