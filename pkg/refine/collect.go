package refine

import (
	"slices"
	"strings"

	"github.com/matst80/slask-refine/pkg/types"
)

// Collect pulls the active refinements out of the state, orders them
// and applies the allowlist filter. Pure function of its inputs.
//
// Ordering is two-level: refinements on configured attributes come
// first, in configured order, then refinements on unlisted attributes
// in first-seen order. Ties within one attribute are broken by value
// name ascending. Sorting is stable.
//
// When onlyListed is set and attributeNames is non-empty, refinements
// on unlisted attributes are dropped. An empty attributeNames disables
// the filter entirely.
func Collect(res types.Results, state types.State, attributeNames []string, onlyListed bool) []types.Refinement {
	refinements := state.Refinements()

	otherNames := otherAttributeNames(refinements, attributeNames)
	order := make(map[string]int, len(attributeNames)+len(otherNames))
	for i, name := range attributeNames {
		order[name] = i
	}
	for i, name := range otherNames {
		order[name] = len(attributeNames) + i
	}

	sorted := make([]types.Refinement, len(refinements))
	copy(sorted, refinements)
	slices.SortStableFunc(sorted, func(a, b types.Refinement) int {
		if d := order[a.Attribute] - order[b.Attribute]; d != 0 {
			return d
		}
		return strings.Compare(a.Name, b.Name)
	})

	if onlyListed && len(attributeNames) > 0 {
		sorted = slices.DeleteFunc(sorted, func(r types.Refinement) bool {
			return !slices.Contains(attributeNames, r.Attribute)
		})
	}

	if res != nil {
		for i := range sorted {
			if count, exhaustive, ok := res.RefinementCount(sorted[i]); ok {
				sorted[i].Count = count
				sorted[i].Exhaustive = exhaustive
			}
		}
	}
	return sorted
}

// otherAttributeNames lists the attributes seen in the refinements but
// absent from the configured names, deduplicated in first-seen order.
func otherAttributeNames(refinements []types.Refinement, attributeNames []string) []string {
	other := []string{}
	for _, r := range refinements {
		if slices.Contains(attributeNames, r.Attribute) {
			continue
		}
		if !slices.Contains(other, r.Attribute) {
			other = append(other, r.Attribute)
		}
	}
	return other
}
