package planner

import (
	"fmt"
	"time"

	"github.com/arcflow/flowplan/indexed"
	"github.com/arcflow/flowplan/rule"
	"github.com/arcflow/flowplan/transform"
	"github.com/arcflow/flowplan/vf2"
)

// Config resolves the planner-wide knobs a plan run needs. Option
// constructors validate and panic only on programmer error (nil logger,
// a numeric knob with no meaningful zero); a semantically inconsistent
// configuration is detected by NewPlanner and returned as a
// ConfigError, never a panic.
type Config struct {
	Logger Logger

	traceEnabled bool
	tracePath    string
	traceWriter  TraceWriter

	searchOrder            indexed.SearchOrder
	recursiveMaxIterations uint64
	edgeMatching           vf2.EdgeMatching

	phaseTimeout time.Duration
}

// Option customizes a Config before NewPlanner validates it.
type Option func(*Config)

func newConfig(opts ...Option) *Config {
	cfg := &Config{
		Logger:                 NewNullLogger(),
		searchOrder:            indexed.Topological,
		recursiveMaxIterations: transform.DefaultMaxIterations,
		edgeMatching:           vf2.Bipartite,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLogger overrides the default null logger. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("planner: WithLogger(nil)")
	}

	return func(c *Config) { c.Logger = l }
}

// WithTrace enables trace-artifact emission on planning failure and
// sets the directory a host-provided TraceWriter is expected to use.
// Panics if path is empty; use SetOption("trace.enabled", false) to
// disable tracing instead of calling this with an empty path.
func WithTrace(path string, writer TraceWriter) Option {
	if path == "" {
		panic("planner: WithTrace(\"\")")
	}

	return func(c *Config) {
		c.traceEnabled = true
		c.tracePath = path
		c.traceWriter = writer
	}
}

// WithSearchOrder records a search order on the Config. Run does not
// pass it to rules: each rule searches with the Order in its own
// vf2.Options.
func WithSearchOrder(order indexed.SearchOrder) Option {
	return func(c *Config) { c.searchOrder = order }
}

// WithRecursiveMaxIterations records a fixed-point iteration cap on the
// Config. Panics on zero, which admits no iterations at all. Run does
// not pass the cap to any transform.Recursive; a Recursive uses its own
// MaxIterations field.
func WithRecursiveMaxIterations(n uint64) Option {
	if n == 0 {
		panic("planner: WithRecursiveMaxIterations(0)")
	}

	return func(c *Config) { c.recursiveMaxIterations = n }
}

// WithEdgeMatchingAlgorithm records vf2.Bipartite (default, production)
// or vf2.Permutation (regression comparison only) on the Config. Run
// does not pass it to rules: each rule's searches use the EdgeMatching
// in its own vf2.Options.
func WithEdgeMatchingAlgorithm(alg vf2.EdgeMatching) Option {
	return func(c *Config) { c.edgeMatching = alg }
}

// WithPhaseTimeout bounds wall-clock time between rule invocations.
// Zero, the default, means no ceiling.
func WithPhaseTimeout(d time.Duration) Option {
	return func(c *Config) { c.phaseTimeout = d }
}

// SetOption is the string-keyed escape hatch for the recognized
// options, for callers that store plan configuration as flat key/value
// pairs rather than Go option values.
func (c *Config) SetOption(key string, value any) error {
	switch key {
	case "trace.enabled":
		enabled, ok := value.(bool)
		if !ok {
			return &ConfigError{Reason: "trace.enabled must be a bool"}
		}
		c.traceEnabled = enabled

	case "trace.path":
		path, ok := value.(string)
		if !ok {
			return &ConfigError{Reason: "trace.path must be a string"}
		}
		c.tracePath = path

	case "search.order":
		order, ok := value.(string)
		if !ok {
			return &ConfigError{Reason: "search.order must be a string"}
		}
		parsed, err := parseSearchOrder(order)
		if err != nil {
			return err
		}
		c.searchOrder = parsed

	case "recursive.max-iterations":
		n, ok := toUint64(value)
		if !ok {
			return &ConfigError{Reason: "recursive.max-iterations must be an unsigned integer"}
		}
		if n == 0 {
			return &ConfigError{Reason: "recursive.max-iterations must be > 0"}
		}
		c.recursiveMaxIterations = n

	case "edge-matching.algorithm":
		alg, ok := value.(string)
		if !ok {
			return &ConfigError{Reason: "edge-matching.algorithm must be a string"}
		}
		switch alg {
		case "bipartite":
			c.edgeMatching = vf2.Bipartite
		case "permutation":
			c.edgeMatching = vf2.Permutation
		default:
			return &ConfigError{Reason: fmt.Sprintf("unrecognized edge-matching.algorithm %q", alg)}
		}

	default:
		return &ConfigError{Reason: fmt.Sprintf("unrecognized option %q", key)}
	}

	return nil
}

func parseSearchOrder(s string) (indexed.SearchOrder, error) {
	switch s {
	case "topological":
		return indexed.Topological, nil
	case "reverse":
		return indexed.ReverseTopological, nil
	case "dfs":
		return indexed.DepthFirst, nil
	case "bfs":
		return indexed.BreadthFirst, nil
	default:
		return 0, &ConfigError{Reason: fmt.Sprintf("unrecognized search.order %q", s)}
	}
}

func toUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}

		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}

		return uint64(v), true
	default:
		return 0, false
	}
}

// validate checks cfg against rules for configuration inconsistencies,
// raised only at construction time, never mid-plan.
func (c *Config) validate(rules []rule.Rule) error {
	if c.traceEnabled && c.tracePath == "" && c.traceWriter == nil {
		return &ConfigError{Reason: "trace.enabled is true but neither trace.path nor a TraceWriter was configured"}
	}

	for _, r := range rules {
		pr, ok := r.(rule.PartitionerRule)
		if !ok {
			continue
		}
		if pr.Partitioner.Expression == nil && len(pr.Partitioner.Annotations) > 0 {
			return &ConfigError{Reason: fmt.Sprintf("rule %q configures annotations without a match expression to capture them from", r.Name())}
		}
		if pr.Partitioner.Contraction != nil && pr.Partitioner.Expression == nil {
			return &ConfigError{Reason: fmt.Sprintf("rule %q supplies a contraction expression without a match expression", r.Name())}
		}
	}

	return nil
}
