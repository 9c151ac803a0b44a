package tracer

// Tracer receives scoped span notifications from a running search.
// Span is called on entry to a named phase and must return a func to
// call on exit; implementations that don't care about timing can return
// a no-op func.
type Tracer interface {
	Span(name string) func()
}

// Noop is the zero-cost default Tracer: Span does nothing and its
// release func does nothing.
type Noop struct{}

func (Noop) Span(string) func() { return func() {} }

// Default is the package-level Noop instance, used whenever a caller
// does not supply a Tracer.
var Default Tracer = Noop{}
