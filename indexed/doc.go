// Package indexed wraps an element.Graph or pattern.Graph in a dense
// 0..n-1 integer index, materializing successor/predecessor index tables
// once so the vf2 matcher never re-walks adjacency by string ID during
// search. The index order is the sole source of search determinism:
// two Views built from the same Source with the same SearchOrder
// produce bit-identical index assignments.
//
// Topological and reverse-topological orders come from a post-order
// depth-first walk (reversed for topological, as-is for reverse-
// topological); depth-first is DFS pre-order; breadth-first comes from a
// queue-based walk. Both run against the package-local Source
// interface so element.Graph and pattern.Graph share one
// implementation.
package indexed
