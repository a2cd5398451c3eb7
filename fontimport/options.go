package fontimport

// Option configures an import.
type Option func(*options)

type options struct {
	scale     float64
	layerName string
}

func newOptions(opts []Option) options {
	o := options{scale: 1, layerName: "Layer 1"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithScale multiplies every coordinate and the advance width by s.
// Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithLayerName names the imported layer.
func WithLayerName(name string) Option {
	return func(o *options) {
		o.layerName = name
	}
}
