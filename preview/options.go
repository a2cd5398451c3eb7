package preview

import (
	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/boolean"
	"github.com/gogpu/glyph/internal/cache"
)

// Option configures a Rebuilder.
type Option func(*options)

type options struct {
	cacheSize int
	workers   int
	build     []glyph.BuildOption
	combine   []boolean.Option
}

func defaultOptions() options {
	return options{cacheSize: cache.DefaultCapacity}
}

// WithCacheSize sets how many built contours are kept. Non-positive
// values are ignored.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// WithTolerance sets the flattening tolerance for both contour operations
// and boolean combination.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		o.build = append(o.build, glyph.WithTolerance(tolerance))
		o.combine = append(o.combine, boolean.WithFlattenTolerance(tolerance))
	}
}

// WithWorkers builds contours on n goroutines. Values below 2 build on
// the calling goroutine. A Rebuilder with workers should be closed.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
