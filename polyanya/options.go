package polyanya

import "github.com/katalvlaran/polynav/tracer"

// options holds a search's configuration, built up by applying each
// Option over defaultOptions in order. Grounded on the module's own functional-
// options convention (triangulate.Options uses a plain struct since every
// field there is independently meaningful; here, as with the teacher's
// dijkstra.Option, most queries want only zero or one override, so
// functional options keep call sites terse).
type options struct {
	maxIterations int
	tracer        tracer.Tracer
}

// Option configures a FindPath/Setup call.
type Option func(*options)

func defaultOptions() options {
	return options{
		maxIterations: 1 << 20,
		tracer:        tracer.Default,
	}
}

// WithMaxIterations caps the number of heap pops the search makes before
// giving up (Step reports StepNotFound and FindPath returns
// (Path{}, false)), defending a caller
// against pathological meshes without requiring the step-iterator form.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithTracer attaches a span tracer to the search; one span named "step"
// is entered around each Step call. The default is a no-op tracer.
func WithTracer(t tracer.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}
