package boolean

// Option configures Combine.
type Option func(*options)

type options struct {
	tolerance float64
}

func defaultOptions() options {
	return options{tolerance: 0.25}
}

// WithFlattenTolerance sets the maximum distance between a curve and the
// polygon that replaces it. Non-positive values are ignored.
func WithFlattenTolerance(tolerance float64) Option {
	return func(o *options) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}
