// Package transform implements three composable transforms: Contracted
// (repeated find-and-contract to fixed point), SubGraph (contraction
// plus a second pattern match, projected back onto the original element
// graph), and Recursive (repeat any single-step transform to fixed
// point or a bounded iteration cap).
//
// Contraction provenance. removeAndContract deletes a vertex outright —
// it never allocates a merged replacement — so nothing in element.Graph
// records which original elements a surviving vertex "stood for" after
// repeated contraction. Projecting a contracted-graph match back onto
// the original graph needs exactly that record, so this package
// absorbs a contracted vertex's provenance into every surviving
// neighbour it touched, predecessor and successor alike, rather than
// picking one side as the sole heir.
package transform
