package types

type RefinementKind = string

const (
	FACET_REFINEMENT        RefinementKind = "facet"
	DISJUNCTIVE_REFINEMENT  RefinementKind = "disjunctive"
	HIERARCHICAL_REFINEMENT RefinementKind = "hierarchical"
	EXCLUDE_REFINEMENT      RefinementKind = "exclude"
	NUMERIC_REFINEMENT      RefinementKind = "numeric"
	TAG_REFINEMENT          RefinementKind = "tag"
)

// TagAttribute is the pseudo attribute tags are filed under, so tag
// refinements participate in attribute ordering and allowlists like
// everything else.
const TagAttribute = "_tags"

// Refinement is one active filter value. Identity is (Attribute, Name);
// the external state guarantees no duplicates within a single pass.
// Operator and Value are only set for numeric refinements. Count and
// Exhaustive are filled in from the last result set when one is
// available.
type Refinement struct {
	Kind       RefinementKind `json:"type"`
	Attribute  string         `json:"attributeName"`
	Name       string         `json:"name"`
	Operator   string         `json:"operator,omitempty"`
	Value      float64        `json:"numericValue,omitempty"`
	Count      int            `json:"count,omitempty"`
	Exhaustive bool           `json:"exhaustive,omitempty"`
}
