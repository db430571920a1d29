package rule

import (
	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/partition"
)

// PartitionerRule carves the working graph into partitions without
// mutating it; the driver records the returned Transform, Partitions
// included, in the transform list that Planner.Run returns.
type PartitionerRule struct {
	RuleName    string
	PhaseValue  PlanPhase
	Partitioner partition.ExpressionGraphPartitioner
}

func (r PartitionerRule) Name() string    { return defaultName(r.RuleName, "partitioner") }
func (r PartitionerRule) Phase() PlanPhase { return r.PhaseValue }

// Run implements Rule.
func (r PartitionerRule) Run(g *element.Graph) (Transform, error) {
	parts, err := r.Partitioner.Partitions(g)
	if err != nil {
		return Transform{}, err
	}

	return Transform{EndGraph: g, Partitions: parts}, nil
}
