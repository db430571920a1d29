// Package pattern implements the P-graph: the directed multigraph of
// element-expressions (node predicate + capture Label) and scope-
// expressions (edge predicate, or the "applies to all" wildcard) that a
// rule matches against an element.Graph.
//
// Unlike element.Graph, pattern.Graph carries no sync.RWMutex: P-graphs
// are built once, before a search begins, by rule authors in a single
// goroutine, and are read-only for the lifetime of every search run
// against them — no matcher state crosses rule boundaries. A two-lock
// concurrency discipline here would guard against a race that cannot
// occur in this package's usage pattern, so it is left out.
package pattern
