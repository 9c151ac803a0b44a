// Package tracer defines the single-method span interface polyanya's
// search loop calls into for optional diagnostics (named spans a caller
// can time), and a no-op default so instrumenting a search costs nothing
// unless a caller opts in.
//
// What:
//
//   - Tracer: one method, Span, returning a release func. polyanya's
//     call site is `release := tracer.Span("step"); defer release()`.
//   - Noop: the default Tracer, whose Span does nothing.
//
// Why:
//
//   - polyanya's Option set (WithTracer) needs a hook for callers who
//     want visibility into the search's steps, but the hot path must stay
//     allocation-free when no tracer is attached.
package tracer
