package rubywrap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer. The core tracer defaults to a no-op,
// so the package stays silent unless the embedding application routes it to
// a logging backend.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
