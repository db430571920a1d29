// Package match defines the result type the vf2 matcher emits: a total
// mapping from expression-graph vertex IDs to element-graph vertex IDs,
// plus the per-capture-label element sets that downstream transforms,
// assert rules, and partitioners consume.
package match
