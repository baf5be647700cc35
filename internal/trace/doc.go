// Package trace records what the mizlex driver is doing: vocabulary
// loading, per-article phases (read, strip, split, lex) and directory runs.
//
// Enable tracing via command-line flags:
//
//	mizlex lex --trace=- --trace-level=detail article.miz
//
// Tracers:
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event immediately, as text or NDJSON
//
// Levels: off, error, phase (driver and pass boundaries), detail (per
// article), debug (everything).
//
// Tracers travel through the pipeline in a context.Context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
