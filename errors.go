package shopkit

import "fmt"

// NilServiceError represents an attempt to register a nil service.
type NilServiceError struct {
	Type string
}

func (e *NilServiceError) Error() string {
	return fmt.Sprintf("nil service provided for type: %s", e.Type)
}

// NotRegisteredError represents a strict resolution of an absent service contract.
type NotRegisteredError struct {
	Type string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("no service registered for type: %s", e.Type)
}

// ResolutionCastError represents a registered instance that cannot be viewed as the requested contract.
type ResolutionCastError struct {
	Expected string
	Got      string
}

func (e *ResolutionCastError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

// InjectionFieldError represents a single dependency field that could not be injected.
type InjectionFieldError struct {
	Target   string
	Field    string
	Optional bool
	Err      error
}

func (e *InjectionFieldError) Error() string {
	return fmt.Sprintf("injection failed for field %s on %s: %v", e.Field, e.Target, e.Err)
}

func (e *InjectionFieldError) Unwrap() error {
	return e.Err
}
