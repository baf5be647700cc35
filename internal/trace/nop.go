package trace

// nopTracer is what FromContext returns when no tracer was attached, so
// driver phases can call Start/End unconditionally.
type nopTracer struct{}

// Emit drops the event.
func (nopTracer) Emit(*Event) {}

func (nopTracer) Flush() error { return nil }

func (nopTracer) Close() error { return nil }

// Level is LevelOff, so ShouldEmit rejects every scope.
func (nopTracer) Level() Level { return LevelOff }

// Enabled is false: Begin hands out a span bound to Nop and End returns 0.
func (nopTracer) Enabled() bool { return false }

// Nop is the package-level singleton nop tracer.
var Nop Tracer = nopTracer{}
