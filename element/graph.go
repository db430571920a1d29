package element

import (
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
)

// FlowElement is an opaque vertex value owned by the pipeline-construction
// collaborator (Tap, Pipe, GroupBy, HashJoin, Every, Buffer, ...). The
// planner core never inspects it beyond identity and whatever predicates a
// pattern.ElementExpr chooses to evaluate against it.
type FlowElement any

// Scope is an opaque, directed dataflow annotation carried by an edge. The
// planner core never inspects it beyond identity; composition (under
// contraction) and predicate evaluation are delegated to the collaborator.
type Scope any

// Composer composes the scope of an incoming edge with the scope of an
// outgoing edge when the vertex between them is contracted out of the
// graph (RemoveAndContract). Composition MUST be associative across
// successive contractions: composing A∘B then the result ∘C must equal
// composing A then B∘C, for any chain of vertices removed in sequence.
// Graph does not itself verify this, or that the graph stays acyclic —
// it is a contract on the collaborator, checked only by whatever tests
// the collaborator's own Composer implementation carries.
type Composer interface {
	Compose(in, out Scope) (Scope, error)
}

// edgeIDPrefix / vertexIDPrefix are textual prefixes for generated IDs,
// kept as single bytes so ID minting never needs fmt.Sprintf.
const (
	vertexIDPrefix = 'v'
	edgeIDPrefix   = 'e'
)

type vertexRecord struct {
	id    string
	value FlowElement
	// out/in record edge IDs in insertion order, giving every read of
	// adjacency (Neighbors, Edges-between) a deterministic order without
	// a secondary sort.
	out []string
	in  []string
}

type edgeRecord struct {
	id         string
	from, to   string
	scope      Scope
}

// EdgeView is a read-only snapshot of one directed edge (scope) between two
// vertices. Callers must not mutate Scope in a way that would be visible
// to other holders of the same graph.
type EdgeView struct {
	ID       string
	From, To string
	Scope    Scope
}

// Graph is the E-graph: a directed multigraph of FlowElement vertices and
// Scope edges, with two synthetic bookend vertices (head, tail) installed
// at construction.
//
// Concurrency: muVert guards vertex identity and the head/tail IDs;
// muEdgeAdj guards the edge catalog and per-vertex adjacency lists. Read
// paths take the two locks one after the other; the mutation paths
// (RemoveAndContract, ReplaceElementWith) briefly take one while holding
// the other.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nextVertexID uint64
	nextEdgeID   uint64

	vertices map[string]*vertexRecord
	edges    map[string]*edgeRecord

	composer Composer

	headID, tailID string
}

// NewGraph constructs an empty E-graph with synthetic head and tail
// vertices wrapping the given sentinel FlowElement values, and the given
// Composer used by RemoveAndContract. Composer may be nil if the caller
// never intends to contract this graph; RemoveAndContract then returns
// ErrNilComposer.
func NewGraph(headElement, tailElement FlowElement, composer Composer) *Graph {
	g := &Graph{
		vertices: make(map[string]*vertexRecord),
		edges:    make(map[string]*edgeRecord),
		composer: composer,
	}
	g.headID, _ = g.AddVertex(headElement)
	g.tailID, _ = g.AddVertex(tailElement)

	return g
}

// HeadID returns the ID of the synthetic head bookend.
func (g *Graph) HeadID() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.headID
}

// TailID returns the ID of the synthetic tail bookend.
func (g *Graph) TailID() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.tailID
}

// HasVertex reports whether id names a vertex currently in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Element returns the FlowElement stored at id, or ErrVertexNotFound.
func (g *Graph) Element(id string) (FlowElement, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v.value, nil
}

// VertexIDs returns all vertex IDs in lexical order.
//
// Complexity: O(V log V) — vertex IDs are minted as "v"+decimal, so a
// lexical sort does not match numeric order once past nine vertices;
// callers needing insertion order should use VertexIDsInOrder instead.
// Kept for API symmetry with Edges()-style sorted accessors elsewhere in
// the module; internal callers (indexed.View) use VertexIDsInOrder.
func (g *Graph) VertexIDs() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// nextVID mints a new unique textual vertex ID without fmt allocations,
// mirroring core/methods_edges.go's nextEdgeID helper.
func nextVID(g *Graph) string {
	n := atomic.AddUint64(&g.nextVertexID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, vertexIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// nextEID mints a new unique textual edge ID without fmt allocations.
func nextEID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
