package vf2

import (
	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/indexed"
)

// ElementSource is the E-graph surface the matcher needs: indexing plus
// element/scope lookups. *element.Graph and *element.View both satisfy
// it, so a search can run against a masked view without copying.
type ElementSource interface {
	indexed.Source
	Element(id string) (element.FlowElement, error)
	EdgesBetween(fromID, toID string) ([]element.EdgeView, error)
}
