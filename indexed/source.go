package indexed

// Source is the minimal read-only surface a graph must expose to be
// indexed: a base vertex ordering and adjacency by distinct neighbor ID.
// element.Graph, *element.View, and pattern.Graph all implement it.
type Source interface {
	VertexIDsInOrder() []string
	OutNeighbors(id string) []string
	InNeighbors(id string) []string
}

// SearchOrder selects how indexed.New orders vertices before assigning
// dense indices: one of topological, reverse-topological, depth-first,
// or breadth-first.
type SearchOrder int

const (
	// Topological orders vertices so every edge u→v has index(u) <
	// index(v) when the source is acyclic; on a cyclic source every
	// vertex is still ordered, by reversed DFS post-order, without that
	// guarantee for edges on a cycle (see order.go).
	Topological SearchOrder = iota
	// ReverseTopological is Topological reversed.
	ReverseTopological
	// DepthFirst orders vertices by DFS discovery order from the base
	// ordering's first vertex, visiting each connected component in turn.
	DepthFirst
	// BreadthFirst orders vertices by BFS discovery order, likewise
	// covering every component.
	BreadthFirst
)
