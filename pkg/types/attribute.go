package types

import "fmt"

// AttributeSpec configures how one attribute's refinements are shown.
// Order in Config.Attributes defines display priority.
type AttributeSpec struct {
	Name          string                      `json:"name"`
	Label         string                      `json:"label,omitempty"`
	Template      string                      `json:"template,omitempty"`
	TransformData func(Refinement) Refinement `json:"-"`
}

const (
	CLEAR_ALL_BEFORE = "before"
	CLEAR_ALL_AFTER  = "after"
	CLEAR_ALL_HIDDEN = ""
)

// Config is the construction-time widget configuration. Immutable once
// the widget is built.
type Config struct {
	Attributes           []AttributeSpec `json:"attributes"`
	OnlyListedAttributes bool            `json:"onlyListedAttributes"`
	ClearAllPosition     string          `json:"clearAllPosition,omitempty"`
}

const configUsage = `Usage:
  connector.New(types.Config{
    Attributes: []types.AttributeSpec{{Name: ..., Label: ..., Template: ..., TransformData: ...}},
    OnlyListedAttributes: bool,
    ClearAllPosition: "before" | "after" | "",
  }, renderFn)`

// Validate checks the config shape before any rendering can happen.
// Any violation is fatal to widget creation.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Attributes))
	for i, attr := range c.Attributes {
		if attr.Name == "" {
			return &ConfigurationError{
				Reason: fmt.Sprintf("attribute at index %d is missing a name", i),
				Usage:  configUsage,
			}
		}
		if _, ok := seen[attr.Name]; ok {
			return &ConfigurationError{
				Reason: fmt.Sprintf("duplicate attribute name %q", attr.Name),
				Usage:  configUsage,
			}
		}
		seen[attr.Name] = struct{}{}
	}
	switch c.ClearAllPosition {
	case CLEAR_ALL_BEFORE, CLEAR_ALL_AFTER, CLEAR_ALL_HIDDEN:
	default:
		return &ConfigurationError{
			Reason: fmt.Sprintf("clearAllPosition %q is not one of \"before\", \"after\" or \"\"", c.ClearAllPosition),
			Usage:  configUsage,
		}
	}
	return nil
}

// AttributeNames returns the configured names in display order.
func (c *Config) AttributeNames() []string {
	names := make([]string, len(c.Attributes))
	for i, attr := range c.Attributes {
		names[i] = attr.Name
	}
	return names
}

// AttributeMap indexes the specs by name for O(1) lookup while
// rendering.
func (c *Config) AttributeMap() map[string]AttributeSpec {
	byName := make(map[string]AttributeSpec, len(c.Attributes))
	for _, attr := range c.Attributes {
		byName[attr.Name] = attr
	}
	return byName
}
