package vf2

import "github.com/arcflow/flowplan/indexed"

// EdgeMatching selects the algorithm used to decide edge-bundle
// compatibility.
type EdgeMatching int

const (
	// Bipartite runs Hopcroft-Karp perfect matching — the mandated,
	// production default.
	Bipartite EdgeMatching = iota
	// Permutation runs factorial permutation enumeration, retained only
	// for regression comparison against Bipartite.
	Permutation
)

// Options configures one FindAll/FindFirst search.
type Options struct {
	// Order controls how both graphs are indexed before the search
	// begins. Zero value is Topological.
	Order indexed.SearchOrder

	// Required, when non-empty, restricts every Primary capture to this
	// set of E-graph vertex IDs.
	Required map[string]bool
	// Excluded E-graph vertex IDs are never feasible matches for any
	// P-graph vertex.
	Excluded map[string]bool
	// Ignored E-graph vertex IDs behave like Excluded for feasibility,
	// but capture handling differs upstream (match.Match never stores
	// Ignore-labelled captures at all — see match.Bind).
	Ignored map[string]bool

	// EdgeMatching selects Bipartite (default) or Permutation.
	EdgeMatching EdgeMatching
}
