// Package element implements the E-graph: the directed multigraph of opaque
// flow elements and scopes that a plan phase rewrites.
//
// Vertex identity is insertion identity, not value equality: AddVertex mints
// a fresh textual ID for every call, so adding the same FlowElement value
// twice produces two distinct vertices — two distinct elements of the
// same kind are always distinct vertices. Edges (scopes) are opaque to
// the graph: composition under contraction and predicate evaluation are
// delegated to the collaborator via Composer.
//
// Graph is safe for concurrent readers and a single concurrent writer, via
// a two-lock discipline (muVert guards vertex identity/config, muEdgeAdj
// guards edges and adjacency). Rules receive a Copy() of the working
// graph and mutate it freely; the original is unaffected.
package element
