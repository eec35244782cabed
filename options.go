package curvepath

import "log/slog"

// OpOption configures a Boolean path operation (Add, Sub, Intersect, Cut,
// and the rest). Use functional options to override the defaults.
//
// Example:
//
//	// Default accuracy
//	result := curvepath.PathAdd(a, b)
//
//	// Coarser accuracy, for speed on large batch operations
//	result := curvepath.PathAdd(a, b, curvepath.WithAccuracy(0.1))
type OpOption func(*opOptions)

// opOptions holds optional configuration for a Boolean path operation.
type opOptions struct {
	accuracy float64
	logger   *slog.Logger
}

// defaultOpOptions returns the default operation options.
func defaultOpOptions() opOptions {
	return opOptions{
		accuracy: defaultAccuracy,
		logger:   Logger(),
	}
}

// WithAccuracy sets the tolerance used for curve/curve intersection,
// vertex rounding, and short-edge removal within an operation. Smaller
// values produce more exact results at higher cost; the default is 0.01.
// Non-positive values are ignored and the default is kept.
func WithAccuracy(accuracy float64) OpOption {
	return func(o *opOptions) {
		if accuracy > 0 {
			o.accuracy = accuracy
		}
	}
}

// WithLogger stores l in the options of a single operation call; a nil
// l is ignored. The Boolean operations do not log, so the stored logger
// is not read by any of them, and the package-level logger set by
// SetLogger is unaffected.
func WithLogger(l *slog.Logger) OpOption {
	return func(o *opOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// resolveOpOptions applies opts over the defaults and returns the result.
func resolveOpOptions(opts ...OpOption) opOptions {
	o := defaultOpOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
