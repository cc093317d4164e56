package connector

import (
	"github.com/matst80/slask-refine/pkg/refine"
	"github.com/matst80/slask-refine/pkg/types"
)

// ClearCommand clears one refinement. Zero-argument trigger with the
// helper and refinement captured explicitly.
type ClearCommand struct {
	helper     types.Helper
	refinement types.Refinement
}

// Refinement returns the captured refinement, so hosts can tell the
// commands apart without reaching into the aligned slices.
func (c ClearCommand) Refinement() types.Refinement {
	return c.refinement
}

// Do removes the refinement from the live state and starts a new
// search.
func (c ClearCommand) Do() error {
	if err := refine.Clear(c.helper, c.refinement); err != nil {
		return err
	}
	noClears.Inc()
	return nil
}

// ClearAllCommand clears every refinement in the captured allowlist, or
// everything when the widget does not restrict attributes. Built once
// at Init and reused across renders.
type ClearAllCommand struct {
	helper       types.Helper
	restrictedTo []string
}

// Do applies the bulk clear and starts a new search.
func (c ClearAllCommand) Do() {
	refine.ClearAll(c.helper, c.restrictedTo)
	noClears.Inc()
}
