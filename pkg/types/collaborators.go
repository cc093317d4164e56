package types

// State is the refinement state tracked by the external helper. All
// removal operations return a new state value and leave the receiver
// untouched.
type State interface {
	Refinements() []Refinement
	RemoveFacet(attribute string, name string) State
	RemoveDisjunctive(attribute string, name string) State
	RemoveExclude(attribute string, name string) State
	RemoveNumeric(attribute string, operator string, value float64) State
	RemoveTag(name string) State
	// ClearAttribute drops every refinement on the attribute, used for
	// hierarchical refinements which are cleared as a whole subtree.
	ClearAttribute(attribute string) State
	// ClearRefinements drops every refinement whose attribute is in
	// restrictTo. An empty allowlist clears everything.
	ClearRefinements(restrictTo []string) State
}

// Helper owns the live state and the query execution. Search is fire
// and forget, the host re-renders when new results arrive.
type Helper interface {
	State() State
	SetState(state State)
	Search()
}

// Results is a read-only snapshot of the last query response.
type Results interface {
	RefinementCount(r Refinement) (count int, exhaustive bool, ok bool)
}

// CreateURL maps a hypothetical state to a shareable URL.
type CreateURL func(state State) string
