// Package rule adapts the matcher and transforms to the planner's phase
// loop: the three rule kinds — assert, transformer (remove / replace /
// insert), and partitioner — and the PlanPhase enum they are tagged
// with. A Rule's Run receives an already-isolated working graph (the
// driver deep-copies before invoking it) and returns a Transform
// describing what to install.
package rule
