package transform

import "github.com/arcflow/flowplan/element"

// DefaultMaxIterations is the recursive transformer's default iteration
// cap.
const DefaultMaxIterations = uint64(1) << 31

// Step is any single-step transform: given the current graph, produce
// the (possibly identical, by pointer) next graph.
type Step func(g *element.Graph) (*element.Graph, error)

// Recursive re-applies Step to its own output until the output is the
// same *element.Graph object as its input (a fixed point) or
// MaxIterations is reached, in which case it returns ErrPlannerLoop.
// MaxIterations of zero uses DefaultMaxIterations.
type Recursive struct {
	Step          Step
	MaxIterations uint64
}

// Apply runs the recursion starting from g.
func (r Recursive) Apply(g *element.Graph) (*element.Graph, error) {
	max := r.MaxIterations
	if max == 0 {
		max = DefaultMaxIterations
	}

	current := g
	for i := uint64(0); i < max; i++ {
		next, err := r.Step(current)
		if err != nil {
			return nil, err
		}
		if next == current {
			return current, nil
		}
		current = next
	}

	return nil, ErrPlannerLoop
}
