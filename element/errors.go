package element

import "errors"

// Sentinel errors for the element package. Callers branch on these with
// errors.Is; they are never stringified into a different sentinel.
var (
	// ErrNilElement indicates AddVertex was called with a nil FlowElement.
	ErrNilElement = errors.New("element: nil flow element")

	// ErrVertexNotFound indicates an operation referenced a vertex ID that
	// does not exist in the graph.
	ErrVertexNotFound = errors.New("element: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a scope/edge ID that
	// does not exist in the graph.
	ErrEdgeNotFound = errors.New("element: edge not found")

	// ErrGraphShape indicates an edge operation referenced a missing
	// endpoint.
	ErrGraphShape = errors.New("element: dangling edge or unknown vertex")

	// ErrSelfLoop indicates an operation would introduce a self-loop,
	// which the E-graph invariant forbids unconditionally.
	ErrSelfLoop = errors.New("element: self-loop not permitted")

	// ErrNilComposer indicates RemoveAndContract was invoked on a graph
	// constructed without a Composer.
	ErrNilComposer = errors.New("element: contraction requires a Composer")
)
