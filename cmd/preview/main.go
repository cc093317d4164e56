package main

import (
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/matst80/slask-refine/pkg/common"
	"github.com/matst80/slask-refine/pkg/connector"
	"github.com/matst80/slask-refine/pkg/state"
	"github.com/matst80/slask-refine/pkg/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var listenAddr = ":8080"

func init() {
	if addr, ok := os.LookupEnv("LISTEN_ADDR"); ok {
		listenAddr = addr
	}
}

// memoryHelper is a stand-in for a real search helper. Search only
// logs, the interesting part is the state handling.
type memoryHelper struct {
	state types.State
}

func (h *memoryHelper) State() types.State {
	return h.state
}

func (h *memoryHelper) SetState(state types.State) {
	h.state = state
}

func (h *memoryHelper) Search() {
	log.Printf("search triggered with %d refinements", len(h.state.Refinements()))
}

// staticResults serves canned counts keyed by attribute:name.
type staticResults map[string]int

func (r staticResults) RefinementCount(ref types.Refinement) (int, bool, bool) {
	count, ok := r[ref.Attribute+":"+ref.Name]
	return count, ok, ok
}

type app struct {
	mu        sync.Mutex
	helper    *memoryHelper
	widget    *connector.Widget
	results   staticResults
	createURL types.CreateURL
	last      *connector.RenderState
}

// refinementView is the serializable slice of the render state.
type refinementView struct {
	ClearAllPosition string             `json:"clearAllPosition,omitempty"`
	ClearAllURL      string             `json:"clearAllUrl"`
	Refinements      []types.Refinement `json:"refinements"`
	URLs             []string           `json:"urls"`
}

func (a *app) handleRefinements(r *http.Request) (any, error) {
	query, err := state.ParseQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.helper.SetState(query)
	if err := a.widget.Render(connector.RenderParams{
		Results:   a.results,
		Helper:    a.helper,
		State:     a.helper.State(),
		CreateURL: a.createURL,
	}); err != nil {
		return nil, err
	}
	return refinementView{
		ClearAllPosition: a.last.ClearAllPosition,
		ClearAllURL:      a.last.ClearAllURL,
		Refinements:      a.last.Refinements,
		URLs:             a.last.URLs,
	}, nil
}

func main() {
	a := &app{
		helper: &memoryHelper{state: state.Query{}},
		results: staticResults{
			"color:red":  12,
			"color:blue": 7,
			"brand:acme": 31,
			"_tags:sale": 112,
		},
		createURL: state.URLFor("/search"),
	}

	widget, err := connector.New(types.Config{
		Attributes: []types.AttributeSpec{
			{Name: "color", Label: "Color"},
			{Name: "brand", Label: "Brand"},
			{Name: "price", Label: "Price"},
		},
		ClearAllPosition: types.CLEAR_ALL_BEFORE,
	}, func(rs *connector.RenderState, isFirstRender bool) {
		a.last = rs
	})
	if err != nil {
		log.Fatalf("Failed to create widget: %v", err)
	}
	a.widget = widget

	if err := widget.Init(connector.InitParams{
		Helper:    a.helper,
		CreateURL: a.createURL,
	}); err != nil {
		log.Fatalf("Failed to init widget: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/refinements", common.JsonHandler(a.handleRefinements))
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: common.DurationFromEnv("READ_HEADER_TIMEOUT", 5*time.Second),
	}
	common.RunServerWithShutdown(server, "refinement preview", common.DurationFromEnv("SHUTDOWN_TIMEOUT", 15*time.Second))
}
