package planner

import (
	"github.com/google/uuid"

	"github.com/arcflow/flowplan/element"
)

// TraceArtifact is one snapshot filed when planning aborts with trace
// writing enabled. ID is a fresh UUID per artifact so concurrent plan
// runs sharing a trace.path directory never collide; it is the only
// source of non-determinism in this module and never affects match
// order or mutation order.
type TraceArtifact struct {
	ID    string
	Phase string
	Rule  string
	Graph *element.Graph
	Cause error
}

// TraceWriter receives a TraceArtifact on planning failure. How Graph is
// serialized (DOT or otherwise) is left to the host application; this
// package ships only RingTraceWriter, an in-memory sink for tests.
type TraceWriter interface {
	WriteTrace(TraceArtifact) error
}

// RingTraceWriter retains the last Capacity artifacts, oldest evicted
// first. Capacity <= 0 means unbounded.
type RingTraceWriter struct {
	Capacity int
	items    []TraceArtifact
}

// WriteTrace implements TraceWriter.
func (w *RingTraceWriter) WriteTrace(a TraceArtifact) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	w.items = append(w.items, a)
	if w.Capacity > 0 && len(w.items) > w.Capacity {
		w.items = w.items[len(w.items)-w.Capacity:]
	}

	return nil
}

// Artifacts returns a snapshot of everything currently retained.
func (w *RingTraceWriter) Artifacts() []TraceArtifact {
	out := make([]TraceArtifact, len(w.items))
	copy(out, w.items)

	return out
}
