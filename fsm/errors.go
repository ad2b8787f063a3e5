package fsm

import "fmt"

// UnknownStateError represents a transition request to a state that was never added.
// ChangeState logs it and reports false instead of returning it.
type UnknownStateError struct {
	Owner string
	State StateID
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("state %q is not registered on machine for %s", e.State, e.Owner)
}
