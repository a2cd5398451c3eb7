package glyph

// BuildOption configures how contour operations are expanded.
//
// Example:
//
//	out, err := glyph.Build(c, glyph.WithTolerance(0.1))
type BuildOption func(*buildOptions)

// buildOptions holds optional configuration for Build.
type buildOptions struct {
	tolerance float64
	accuracy  float64
	index     int
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		tolerance: 0.25,
		accuracy:  1e-6,
		index:     -1,
	}
}

func newBuildOptions(opts []BuildOption) buildOptions {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTolerance sets the flattening tolerance used when offsetting and
// stroking. Non-positive values are ignored.
func WithTolerance(tolerance float64) BuildOption {
	return func(o *buildOptions) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}

// WithAccuracy sets the arc-length accuracy. Non-positive values are ignored.
func WithAccuracy(accuracy float64) BuildOption {
	return func(o *buildOptions) {
		if accuracy > 0 {
			o.accuracy = accuracy
		}
	}
}

// WithContourIndex records the contour's index in its outline so that
// errors and log records can name it.
func WithContourIndex(i int) BuildOption {
	return func(o *buildOptions) {
		o.index = i
	}
}
