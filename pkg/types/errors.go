package types

import "fmt"

// ConfigurationError is raised when widget options fail validation.
// Construction time only, never during rendering.
type ConfigurationError struct {
	Reason string
	Usage  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid widget options: %s\n%s", e.Reason, e.Usage)
}

// UnsupportedRefinementError means the external state reported a
// refinement kind the clear dispatch does not recognize. Integration
// bug, surfaced to the host as is.
type UnsupportedRefinementError struct {
	Kind RefinementKind
}

func (e *UnsupportedRefinementError) Error() string {
	return fmt.Sprintf("unsupported refinement type %q", e.Kind)
}
