package types

// State represents the build state of a load balancer.
//
// States follow a single transition:
//
//	StateUnbuilt → StateBuilt
//	StateUnbuilt → StateFailed
//
// Both Built and Failed are terminal; a new configuration requires a new balancer.
type State int

const (
	// StateUnbuilt indicates the task list has not been generated yet.
	StateUnbuilt State = iota

	// StateBuilt indicates the local task list is cached.
	StateBuilt

	// StateFailed indicates the build aborted with a fatal error.
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "Unbuilt"
	case StateBuilt:
		return "Built"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
