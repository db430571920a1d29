// Package vf2 implements the VF2 (Cordella et al., 2004) state-space
// search for subgraph isomorphism, adapted to the planner's directed
// multigraphs: pattern.Graph vertices carry node predicates and capture
// labels, pattern.Graph edges carry predicates over parallel E-graph
// scope bundles, and a found mapping is returned as a match.Match rather
// than a bare index pairing.
//
// This package is hand-written rather than adapted from an existing
// implementation: its state-array bookkeeping (core/in/out arrays,
// monotonic addPair/backTrack stamping) follows the classic VF2
// structure, and its bipartite edge-bundle check delegates to
// internal/bipartite's augmenting-path matcher.
//
// The search is non-induced subgraph matching: an E-graph vertex may
// carry additional edges beyond what the pattern requires; only pattern
// edges must find a corresponding, predicate-satisfying E-graph edge
// bundle. The four neighbour passes isFeasiblePair performs scan both
// P-graph and E-graph adjacency, but only the P-graph passes assert edge
// existence — the E-graph passes exist solely to maintain the terminal-
// set counters the VF2 lookahead bound compares against.
package vf2
