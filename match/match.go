package match

import "github.com/arcflow/flowplan/pattern"

// Match bundles a found P-graph-to-E-graph vertex mapping with the
// element sets captured under each pattern.Label, in insertion order, so
// that downstream transforms observe deterministic Primary/Secondary
// selection.
type Match struct {
	mapping  map[string]string // P vertex id -> E vertex id
	pOrder   []string          // P vertex ids, in the order they were bound
	captures map[pattern.Label][]string
}

// New returns an empty Match ready to be filled in by the matcher via Bind.
func New() *Match {
	return &Match{
		mapping:  make(map[string]string),
		captures: make(map[pattern.Label][]string),
	}
}

// Bind records that P-graph vertex pID maps to E-graph vertex eID, and
// appends eID to the capture set of label if label is not pattern.Ignore.
func (m *Match) Bind(pID, eID string, label pattern.Label) {
	if _, exists := m.mapping[pID]; !exists {
		m.pOrder = append(m.pOrder, pID)
	}
	m.mapping[pID] = eID
	if label != pattern.Ignore {
		m.captures[label] = append(m.captures[label], eID)
	}
}

// Element returns the E-graph vertex id bound to P-graph vertex pID.
func (m *Match) Element(pID string) (string, bool) {
	eID, ok := m.mapping[pID]

	return eID, ok
}

// Mapping returns a defensive copy of the full P-id -> E-id mapping.
func (m *Match) Mapping() map[string]string {
	out := make(map[string]string, len(m.mapping))
	for k, v := range m.mapping {
		out[k] = v
	}

	return out
}

// Captured returns the ordered E-graph elements captured under label.
// The returned slice is a defensive copy.
func (m *Match) Captured(label pattern.Label) []string {
	return append([]string(nil), m.captures[label]...)
}

// Primary is a convenience accessor for the (expected) single Primary
// capture; ok is false if there is not exactly one.
func (m *Match) Primary() (string, bool) {
	set := m.captures[pattern.Primary]
	if len(set) != 1 {
		return "", false
	}

	return set[0], true
}

// Secondary mirrors Primary for pattern.Secondary.
func (m *Match) Secondary() (string, bool) {
	set := m.captures[pattern.Secondary]
	if len(set) != 1 {
		return "", false
	}

	return set[0], true
}
