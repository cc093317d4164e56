package state

import (
	"strconv"

	"github.com/matst80/slask-refine/pkg/types"
)

type ValueRefinement struct {
	Attribute string `json:"attribute"`
	Name      string `json:"name"`
}

type NumericRefinement struct {
	Attribute string  `json:"attribute"`
	Operator  string  `json:"operator"`
	Value     float64 `json:"value"`
}

// Query is the in-repo refinement state. It has value semantics: every
// removal returns a fresh Query and the receiver's backing slices are
// never written to.
type Query struct {
	Facet        []ValueRefinement   `json:"facet,omitempty"`
	Disjunctive  []ValueRefinement   `json:"disjunctive,omitempty"`
	Exclude      []ValueRefinement   `json:"exclude,omitempty"`
	Hierarchical []ValueRefinement   `json:"hierarchical,omitempty"`
	Numeric      []NumericRefinement `json:"numeric,omitempty"`
	Tags         []string            `json:"tags,omitempty"`
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Refinements flattens the state into the generic refinement list.
func (q Query) Refinements() []types.Refinement {
	result := make([]types.Refinement, 0, len(q.Facet)+len(q.Disjunctive)+len(q.Hierarchical)+len(q.Exclude)+len(q.Numeric)+len(q.Tags))
	for _, r := range q.Facet {
		result = append(result, types.Refinement{Kind: types.FACET_REFINEMENT, Attribute: r.Attribute, Name: r.Name})
	}
	for _, r := range q.Disjunctive {
		result = append(result, types.Refinement{Kind: types.DISJUNCTIVE_REFINEMENT, Attribute: r.Attribute, Name: r.Name})
	}
	for _, r := range q.Hierarchical {
		result = append(result, types.Refinement{Kind: types.HIERARCHICAL_REFINEMENT, Attribute: r.Attribute, Name: r.Name})
	}
	for _, r := range q.Exclude {
		result = append(result, types.Refinement{Kind: types.EXCLUDE_REFINEMENT, Attribute: r.Attribute, Name: r.Name})
	}
	for _, r := range q.Numeric {
		result = append(result, types.Refinement{
			Kind:      types.NUMERIC_REFINEMENT,
			Attribute: r.Attribute,
			Name:      formatNumber(r.Value),
			Operator:  r.Operator,
			Value:     r.Value,
		})
	}
	for _, tag := range q.Tags {
		result = append(result, types.Refinement{Kind: types.TAG_REFINEMENT, Attribute: types.TagAttribute, Name: tag})
	}
	return result
}

func without(list []ValueRefinement, attribute string, name string) []ValueRefinement {
	result := make([]ValueRefinement, 0, len(list))
	for _, r := range list {
		if r.Attribute != attribute || r.Name != name {
			result = append(result, r)
		}
	}
	return result
}

func withoutAttribute(list []ValueRefinement, attribute string) []ValueRefinement {
	result := make([]ValueRefinement, 0, len(list))
	for _, r := range list {
		if r.Attribute != attribute {
			result = append(result, r)
		}
	}
	return result
}

func (q Query) RemoveFacet(attribute string, name string) types.State {
	q.Facet = without(q.Facet, attribute, name)
	return q
}

func (q Query) RemoveDisjunctive(attribute string, name string) types.State {
	q.Disjunctive = without(q.Disjunctive, attribute, name)
	return q
}

func (q Query) RemoveExclude(attribute string, name string) types.State {
	q.Exclude = without(q.Exclude, attribute, name)
	return q
}

func (q Query) RemoveNumeric(attribute string, operator string, value float64) types.State {
	result := make([]NumericRefinement, 0, len(q.Numeric))
	for _, r := range q.Numeric {
		if r.Attribute != attribute || r.Operator != operator || r.Value != value {
			result = append(result, r)
		}
	}
	q.Numeric = result
	return q
}

func (q Query) RemoveTag(name string) types.State {
	result := make([]string, 0, len(q.Tags))
	for _, tag := range q.Tags {
		if tag != name {
			result = append(result, tag)
		}
	}
	q.Tags = result
	return q
}

func (q Query) ClearAttribute(attribute string) types.State {
	if attribute == types.TagAttribute {
		q.Tags = nil
		return q
	}
	q.Facet = withoutAttribute(q.Facet, attribute)
	q.Disjunctive = withoutAttribute(q.Disjunctive, attribute)
	q.Exclude = withoutAttribute(q.Exclude, attribute)
	q.Hierarchical = withoutAttribute(q.Hierarchical, attribute)
	numeric := make([]NumericRefinement, 0, len(q.Numeric))
	for _, r := range q.Numeric {
		if r.Attribute != attribute {
			numeric = append(numeric, r)
		}
	}
	q.Numeric = numeric
	return q
}

func (q Query) ClearRefinements(restrictTo []string) types.State {
	if len(restrictTo) == 0 {
		return Query{}
	}
	var state types.State = q
	for _, attribute := range restrictTo {
		state = state.ClearAttribute(attribute)
	}
	return state
}

// FromRefinements rebuilds a Query from a flat refinement list, used
// when a foreign State implementation needs to be encoded to a URL.
func FromRefinements(refinements []types.Refinement) Query {
	q := Query{}
	for _, r := range refinements {
		switch r.Kind {
		case types.FACET_REFINEMENT:
			q.Facet = append(q.Facet, ValueRefinement{Attribute: r.Attribute, Name: r.Name})
		case types.DISJUNCTIVE_REFINEMENT:
			q.Disjunctive = append(q.Disjunctive, ValueRefinement{Attribute: r.Attribute, Name: r.Name})
		case types.HIERARCHICAL_REFINEMENT:
			q.Hierarchical = append(q.Hierarchical, ValueRefinement{Attribute: r.Attribute, Name: r.Name})
		case types.EXCLUDE_REFINEMENT:
			q.Exclude = append(q.Exclude, ValueRefinement{Attribute: r.Attribute, Name: r.Name})
		case types.NUMERIC_REFINEMENT:
			q.Numeric = append(q.Numeric, NumericRefinement{Attribute: r.Attribute, Operator: r.Operator, Value: r.Value})
		case types.TAG_REFINEMENT:
			q.Tags = append(q.Tags, r.Name)
		}
	}
	return q
}
