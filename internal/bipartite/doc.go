// Package bipartite decides whether every left vertex of a bipartite
// compatibility graph can be matched to a distinct right vertex — the
// primitive vf2 needs to check that a candidate pattern-edge bundle of
// size k can be assigned, one pattern edge per data edge, to a disjoint
// subset of a data-edge bundle of size m >= k.
//
// PerfectMatch runs Hopcroft-Karp: phased BFS layering followed by
// DFS-based augmenting-path search per phase, the same level-graph-
// then-blocking-flow shape a Dinic max-flow implementation uses,
// generalized from weighted max-flow down to unit-capacity bipartite
// matching. PermutationMatch is the naive factorial enumeration kept
// available behind edge-matching.algorithm=permutation purely for
// regression comparison against PerfectMatch on small bundles;
// production code paths must never reach it on their own.
package bipartite
