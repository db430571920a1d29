// Package partition implements the planner's partitioner: given a
// parent E-graph and an ExpressionGraphPartitioner, it carves
// the graph into an ordered list of annotated sub-graph views. With no
// expression pattern the whole graph (head/tail masked) is the single
// partition; otherwise each match of the expression pattern against an
// optionally-contracted view of the graph becomes one partition, and its
// capture sets are recorded under caller-chosen annotation labels.
package partition
