package refine

import "github.com/matst80/slask-refine/pkg/types"

// ClearFromState returns the state with the given refinement removed.
// The input state is never mutated. An unrecognized kind returns the
// state unchanged together with an UnsupportedRefinementError.
func ClearFromState(state types.State, r types.Refinement) (types.State, error) {
	switch r.Kind {
	case types.FACET_REFINEMENT:
		return state.RemoveFacet(r.Attribute, r.Name), nil
	case types.DISJUNCTIVE_REFINEMENT:
		return state.RemoveDisjunctive(r.Attribute, r.Name), nil
	case types.HIERARCHICAL_REFINEMENT:
		return state.ClearAttribute(r.Attribute), nil
	case types.EXCLUDE_REFINEMENT:
		return state.RemoveExclude(r.Attribute, r.Name), nil
	case types.NUMERIC_REFINEMENT:
		return state.RemoveNumeric(r.Attribute, r.Operator, r.Value), nil
	case types.TAG_REFINEMENT:
		return state.RemoveTag(r.Name), nil
	}
	return state, &types.UnsupportedRefinementError{Kind: r.Kind}
}

// Clear removes the refinement from the helper's live state and kicks
// off a new search. The search outcome is not observed here.
func Clear(helper types.Helper, r types.Refinement) error {
	state, err := ClearFromState(helper.State(), r)
	if err != nil {
		return err
	}
	helper.SetState(state)
	helper.Search()
	return nil
}

// ClearAllFromState drops every refinement whose attribute is in the
// allowlist, or all of them when the allowlist is empty.
func ClearAllFromState(state types.State, restrictTo []string) types.State {
	return state.ClearRefinements(restrictTo)
}

// ClearAll applies the bulk clear to the helper's live state and kicks
// off a new search.
func ClearAll(helper types.Helper, restrictTo []string) {
	helper.SetState(ClearAllFromState(helper.State(), restrictTo))
	helper.Search()
}
