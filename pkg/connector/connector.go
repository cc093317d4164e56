package connector

import (
	"github.com/google/uuid"
	"github.com/matst80/slask-refine/pkg/refine"
	"github.com/matst80/slask-refine/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noRenders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskrefine_renders_total",
		Help: "The total number of widget render passes",
	})
	noClears = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskrefine_clears_total",
		Help: "The total number of refinement clear commands executed",
	})
)

// RenderFunc receives the freshly computed render state on every pass.
// isFirstRender is true only for the pass triggered by Init.
type RenderFunc func(rs *RenderState, isFirstRender bool)

// RenderState is rebuilt from scratch on every pass. Refinements, Clear
// and URLs are index-aligned: position i describes the same refinement
// in all three.
type RenderState struct {
	Attributes       map[string]types.AttributeSpec
	ClearAll         ClearAllCommand
	ClearAllPosition string
	ClearAllURL      string
	Refinements      []types.Refinement
	Clear            []ClearCommand
	URLs             []string
	Instance         any
	WidgetParams     types.Config
}

// InitParams is the context for the first lifecycle tick. No results
// exist yet.
type InitParams struct {
	Helper    types.Helper
	CreateURL types.CreateURL
	Instance  any
}

// RenderParams is the context for every subsequent tick.
type RenderParams struct {
	Results   types.Results
	Helper    types.Helper
	State     types.State
	CreateURL types.CreateURL
	Instance  any
}

// Widget lists the currently active refinements and exposes commands to
// clear them one by one or all at once. Init and Render are invoked
// sequentially by the host, never concurrently for the same instance.
type Widget struct {
	id             string
	params         types.Config
	attributeNames []string
	restrictedTo   []string
	attributes     map[string]types.AttributeSpec
	render         RenderFunc
	clearAll       ClearAllCommand
}

// New validates the configuration and builds the widget. Invalid
// options fail here with a ConfigurationError, before any rendering.
func New(cfg types.Config, render RenderFunc) (*Widget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if render == nil {
		return nil, &types.ConfigurationError{Reason: "render function is required"}
	}
	w := &Widget{
		id:             uuid.NewString(),
		params:         cfg,
		attributeNames: cfg.AttributeNames(),
		attributes:     cfg.AttributeMap(),
		render:         render,
	}
	if cfg.OnlyListedAttributes {
		w.restrictedTo = w.attributeNames
	}
	return w, nil
}

// Id returns the instance handle, useful for host-side logging.
func (w *Widget) Id() string {
	return w.id
}

// Init runs the first pass from helper.State() with no results, and
// caches the clear-all command so its identity is stable across later
// renders.
func (w *Widget) Init(p InitParams) error {
	w.clearAll = ClearAllCommand{helper: p.Helper, restrictedTo: w.restrictedTo}
	return w.renderPass(nil, p.Helper, p.Helper.State(), p.CreateURL, p.Instance, true)
}

// Render runs one pass from the supplied results and state.
func (w *Widget) Render(p RenderParams) error {
	return w.renderPass(p.Results, p.Helper, p.State, p.CreateURL, p.Instance, false)
}

func (w *Widget) renderPass(res types.Results, helper types.Helper, state types.State, createURL types.CreateURL, instance any, first bool) error {
	refinements := refine.Collect(res, state, w.attributeNames, w.params.OnlyListedAttributes)

	clears := make([]ClearCommand, len(refinements))
	urls := make([]string, len(refinements))
	for i, r := range refinements {
		cleared, err := refine.ClearFromState(state, r)
		if err != nil {
			return err
		}
		clears[i] = ClearCommand{helper: helper, refinement: r}
		urls[i] = createURL(cleared)
	}

	noRenders.Inc()
	w.render(&RenderState{
		Attributes:       w.attributes,
		ClearAll:         w.clearAll,
		ClearAllPosition: w.params.ClearAllPosition,
		ClearAllURL:      createURL(refine.ClearAllFromState(state, w.restrictedTo)),
		Refinements:      refinements,
		Clear:            clears,
		URLs:             urls,
		Instance:         instance,
		WidgetParams:     w.params,
	}, first)
	return nil
}
