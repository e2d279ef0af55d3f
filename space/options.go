package space

// DefaultEpsilon is the default movement threshold of the built-in spaces.
const DefaultEpsilon = 1e-4

// Option configures the built-in spaces.
type Option func(o *options)

type options struct {
	epsilon float64
}

// WithEpsilon sets the movement threshold: a center moved when the distance
// between its old and new position exceeds epsilon.
//
// A zero epsilon treats any change as movement.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.epsilon = epsilon
	}
}

func applyOptions(optFns []Option) options {
	o := options{epsilon: DefaultEpsilon}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
