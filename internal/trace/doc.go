// Package trace provides structured tracing for cppfqn commands.
//
// It records command, file, declarator and parser-phase boundaries so slow
// batch runs and surprising parses can be inspected after the fact.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	cppfqn parse --trace=- --trace-level=debug 'int ns::f(int) const'
//
// # Architecture
//
//   - Nop: zero-overhead no-op tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer dumped to stderr when the command ends
//   - MultiTracer: combines multiple tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: no scoped events, heartbeats only
//   - LevelPhase: command and file boundaries
//   - LevelDetail: one span per declarator
//   - LevelDebug: parser phases as well
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeFile, "file:sigs.txt", parentID)
//	defer span.End("")
package trace
