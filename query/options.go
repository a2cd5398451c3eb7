package query

// Screen-space sizes at zoom 1.
const (
	// PointRadius is the drawn radius of an on-curve point.
	PointRadius = 5.0
	// PointStroke is the stroke width around a drawn point.
	PointStroke = 3.0
	// NearestTolerance is how close the pointer must be to a curve for
	// NearestPoint to report it.
	NearestTolerance = 3.5
	// TunniTolerance is how close the pointer must be to a Tunni point or
	// line for ClosestTunniLine to report it.
	TunniTolerance = 5.0
)

// Option configures a query.
type Option func(*options)

type options struct {
	zoom     float64
	mask     PointRef
	masked   bool
	accuracy float64
}

func newOptions(opts []Option) options {
	o := options{zoom: 1, accuracy: 1e-6}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// scaled converts a screen-space size to outline units.
func (o options) scaled(size float64) float64 {
	return size / o.zoom
}

// WithZoom sets the viewport zoom factor. Non-positive values are ignored.
func WithZoom(zoom float64) Option {
	return func(o *options) {
		if zoom > 0 {
			o.zoom = zoom
		}
	}
}

// WithMask excludes one point, typically the one being dragged, from hit
// testing.
func WithMask(ref PointRef) Option {
	return func(o *options) {
		o.mask, o.masked = ref, true
	}
}

// PointRef identifies a point in an outline.
type PointRef struct {
	Contour int
	Point   int
}
