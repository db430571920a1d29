// Package flowplan is the rule-driven graph planner core of a data-flow
// compiler.
//
// A flowplan E-graph (package element) models a pipeline as a
// multigraph of opaque flow elements joined by opaque scopes, with a
// sentinel head and tail. A planner (package planner) walks a fixed
// sequence of phases (package rule); in each phase every rule tagged
// for it runs in declaration order against a private copy of the
// current graph. Rules come in three kinds:
//
//   - assert rules raise a PlannerAssertion when a forbidden shape
//     (package pattern) is found;
//   - transformer rules rewrite a matched shape by removal, replacement,
//     or insertion, optionally contracting a surrounding shape first
//     (package transform);
//   - partitioner rules carve the graph into annotated partitions
//     (package partition) without mutating it.
//
// Pattern matching is subgraph isomorphism (package vf2, a VF2-style
// matcher over an ordered search space supplied by package indexed).
//
// None of the above constructs flow elements, defines a rule
// catalogue, or executes a plan; flowplan stops at producing a planned
// E-graph and the sequence of transforms that produced it.
package flowplan
