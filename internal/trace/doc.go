// Package trace provides a tracing subsystem for nyanfmt.
//
// Трассировка показывает, сколько времени занимает каждый файл и каждая фаза
// (lex, parse, print), и помогает найти зависания при параллельном
// форматировании.
//
// # Usage
//
//	nyanfmt fmt --trace=- --trace-level=phase ./src
//
// # Tracers
//
//   - Nop: no-op tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped on failure
//   - MultiTracer: combines multiple tracers
//
// Heartbeat events carry the number of spans still open ({open=N}).
//
// # Levels and scopes
//
// LevelPhase emits driver and file spans, LevelDetail adds per-phase spans,
// LevelDebug emits everything. LevelError keeps only heartbeats in the ring.
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePhase, "parse", parentID)
//	defer span.End("")
package trace
