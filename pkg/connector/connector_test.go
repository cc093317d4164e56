package connector

import (
	"errors"
	"strings"
	"testing"

	"github.com/matst80/slask-refine/pkg/state"
	"github.com/matst80/slask-refine/pkg/types"
)

type testHelper struct {
	state    types.State
	searches int
}

func (h *testHelper) State() types.State      { return h.state }
func (h *testHelper) SetState(st types.State) { h.state = st }
func (h *testHelper) Search()                 { h.searches++ }

type capture struct {
	rs    *RenderState
	first bool
	calls int
}

func (c *capture) render(rs *RenderState, isFirstRender bool) {
	c.rs = rs
	c.first = isFirstRender
	c.calls++
}

func newTestWidget(t *testing.T, cfg types.Config) (*Widget, *capture) {
	t.Helper()
	c := &capture{}
	w, err := New(cfg, c.render)
	if err != nil {
		t.Fatalf("Expected widget to build, got %v", err)
	}
	return w, c
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(types.Config{Attributes: []types.AttributeSpec{{Label: "no name"}}}, func(*RenderState, bool) {})
	var confErr *types.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Errorf("Expected ConfigurationError, got %v", err)
	}
}

func TestNew_NilRender(t *testing.T) {
	_, err := New(types.Config{}, nil)
	var confErr *types.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Errorf("Expected ConfigurationError, got %v", err)
	}
}

func TestInit_EmptyState(t *testing.T) {
	w, c := newTestWidget(t, types.Config{})
	helper := &testHelper{state: state.Query{}}
	err := w.Init(InitParams{Helper: helper, CreateURL: state.URLFor("/search")})
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if !c.first || c.calls != 1 {
		t.Errorf("Expected one first render, got calls=%d first=%v", c.calls, c.first)
	}
	if c.rs.ClearAllURL != "/search" {
		t.Errorf("Expected clearing nothing to change nothing, got %q", c.rs.ClearAllURL)
	}
	if len(c.rs.Refinements) != 0 {
		t.Errorf("Expected no refinements, got %v", c.rs.Refinements)
	}
}

func TestRender_IndexAlignment(t *testing.T) {
	w, c := newTestWidget(t, types.Config{Attributes: []types.AttributeSpec{{Name: "color"}}})
	helper := &testHelper{state: state.Query{
		Facet: []state.ValueRefinement{
			{Attribute: "color", Name: "red"},
			{Attribute: "color", Name: "blue"},
		},
		Numeric: []state.NumericRefinement{{Attribute: "price", Operator: ">=", Value: 10}},
	}}
	if err := w.Init(InitParams{Helper: helper, CreateURL: state.URLFor("/search")}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	err := w.Render(RenderParams{Helper: helper, State: helper.State(), CreateURL: state.URLFor("/search")})
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if c.first {
		t.Errorf("Expected isFirstRender false on render")
	}
	rs := c.rs
	if len(rs.Refinements) != len(rs.URLs) || len(rs.Refinements) != len(rs.Clear) {
		t.Fatalf("Expected aligned slices, got %d/%d/%d", len(rs.Refinements), len(rs.URLs), len(rs.Clear))
	}
	for i, r := range rs.Refinements {
		if rs.Clear[i].Refinement() != r {
			t.Errorf("Expected command %d to capture %v, got %v", i, r, rs.Clear[i].Refinement())
		}
		if strings.Contains(rs.URLs[i], r.Attribute+"%3A"+r.Name) {
			t.Errorf("Expected URL %d to drop %v, got %q", i, r, rs.URLs[i])
		}
	}
}

func TestRender_SortsConfiguredFirst(t *testing.T) {
	w, c := newTestWidget(t, types.Config{Attributes: []types.AttributeSpec{{Name: "b"}, {Name: "a"}}})
	helper := &testHelper{state: state.Query{
		Facet: []state.ValueRefinement{
			{Attribute: "c", Name: "1"},
			{Attribute: "a", Name: "1"},
			{Attribute: "b", Name: "1"},
		},
	}}
	if err := w.Init(InitParams{Helper: helper, CreateURL: state.URLFor("/search")}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	expected := []string{"b", "a", "c"}
	for i, r := range c.rs.Refinements {
		if r.Attribute != expected[i] {
			t.Errorf("Expected order %v, got %v", expected, c.rs.Refinements)
			break
		}
	}
}

func TestRender_OnlyListedRestrictsClearAll(t *testing.T) {
	w, c := newTestWidget(t, types.Config{
		Attributes:           []types.AttributeSpec{{Name: "color"}},
		OnlyListedAttributes: true,
	})
	helper := &testHelper{state: state.Query{
		Facet: []state.ValueRefinement{
			{Attribute: "color", Name: "red"},
			{Attribute: "brand", Name: "acme"},
		},
	}}
	if err := w.Init(InitParams{Helper: helper, CreateURL: state.URLFor("/search")}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if len(c.rs.Refinements) != 1 || c.rs.Refinements[0].Attribute != "color" {
		t.Errorf("Expected only listed refinements, got %v", c.rs.Refinements)
	}
	// clear all keeps the unlisted brand refinement
	if !strings.Contains(c.rs.ClearAllURL, "brand%3Aacme") {
		t.Errorf("Expected clear-all URL to keep brand, got %q", c.rs.ClearAllURL)
	}
	c.rs.ClearAll.Do()
	left := helper.state.Refinements()
	if len(left) != 1 || left[0].Attribute != "brand" {
		t.Errorf("Expected brand to survive clear all, got %v", left)
	}
}

func TestClearCommand_RemovesAndSearches(t *testing.T) {
	w, c := newTestWidget(t, types.Config{})
	helper := &testHelper{state: state.Query{
		Facet: []state.ValueRefinement{{Attribute: "color", Name: "red"}},
	}}
	if err := w.Init(InitParams{Helper: helper, CreateURL: state.URLFor("/search")}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := c.rs.Clear[0].Do(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if len(helper.state.Refinements()) != 0 {
		t.Errorf("Expected refinement removed, got %v", helper.state.Refinements())
	}
	if helper.searches != 1 {
		t.Errorf("Expected one search, got %d", helper.searches)
	}
}

func TestClearAll_BoundAtInit(t *testing.T) {
	w, c := newTestWidget(t, types.Config{})
	initHelper := &testHelper{state: state.Query{}}
	if err := w.Init(InitParams{Helper: initHelper, CreateURL: state.URLFor("/search")}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	otherHelper := &testHelper{state: state.Query{}}
	if err := w.Render(RenderParams{Helper: otherHelper, State: otherHelper.State(), CreateURL: state.URLFor("/search")}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if c.rs.ClearAll.helper != types.Helper(initHelper) {
		t.Errorf("Expected clear-all command to stay bound to the init helper")
	}
}

type brokenState struct {
	state.Query
}

func (b brokenState) Refinements() []types.Refinement {
	return []types.Refinement{{Kind: "weird", Attribute: "color", Name: "red"}}
}

func TestRender_UnsupportedKindSurfaces(t *testing.T) {
	w, c := newTestWidget(t, types.Config{})
	helper := &testHelper{state: brokenState{}}
	err := w.Init(InitParams{Helper: helper, CreateURL: state.URLFor("/search")})
	var unsupported *types.UnsupportedRefinementError
	if !errors.As(err, &unsupported) {
		t.Errorf("Expected UnsupportedRefinementError, got %v", err)
	}
	if c.calls != 0 {
		t.Errorf("Expected render callback not invoked, got %d calls", c.calls)
	}
}
