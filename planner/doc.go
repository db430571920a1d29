// Package planner drives the phase loop: for every PlanPhase in order,
// run each configured rule in declaration order against a deep copy of
// the current graph, installing the rule's returned graph and aborting
// with a wrapped, stack-captured error on the first failure.
// Configuration (search order, recursive iteration cap, edge-matching
// algorithm, trace sink, logger) is resolved once, before planning
// starts.
package planner
