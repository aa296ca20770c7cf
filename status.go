package atexit

import "fmt"

// Status describes where a Registry is in its lifecycle.
type Status uint8

const (
	// StatusInert means no registration has been attempted yet; the shutdown
	// hook still points at a no-op.
	StatusInert Status = iota
	// StatusArmed means at least one registration was attempted and the hook
	// now triggers the finalizer pass.
	StatusArmed
	// StatusFired means the terminal finalizer pass has run.
	StatusFired
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusInert:
		return "Inert"
	case StatusArmed:
		return "Armed"
	case StatusFired:
		return "Fired"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}
