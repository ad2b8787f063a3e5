package shopkit

import (
	"io"
	"reflect"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Package shopkit provides the service registry and dependency injection used by
// every gameplay owner in the shop simulation.

// Registry maps a service contract type to exactly one instance.
// It is safe for concurrent use and never calls into the instances it stores.
type Registry struct {
	bindings  map[reflect.Type]any
	mu        sync.RWMutex
	typeNames sync.Map
	log       logrus.FieldLogger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(log logrus.FieldLogger) *Registry {
	if log == nil {
		log = discardLogger()
	}
	return &Registry{
		bindings: make(map[reflect.Type]any, 32),
		log:      log,
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func contractOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (r *Registry) typeName(t reflect.Type) string {
	if cached, ok := r.typeNames.Load(t); ok {
		return cached.(string)
	}
	name := t.String()
	r.typeNames.Store(t, name)
	return name
}

// isNil reports whether v is nil or a typed nil of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Register stores service under the contract T, replacing any previous instance.
// Returns NilServiceError if service is nil.
func Register[T any](r *Registry, service T) error {
	return r.register(contractOf[T](), service)
}

// Resolve returns the instance registered for T.
// Returns NotRegisteredError if T is absent.
func Resolve[T any](r *Registry) (T, error) {
	var zero T
	contract := contractOf[T]()

	raw, ok := r.lookup(contract)
	if !ok {
		err := &NotRegisteredError{Type: r.typeName(contract)}
		r.log.WithField("service", err.Type).Error(err.Error())
		return zero, err
	}
	typed, ok := raw.(T)
	if !ok {
		err := &ResolutionCastError{Expected: r.typeName(contract), Got: reflect.TypeOf(raw).String()}
		r.log.WithField("service", err.Expected).Error(err.Error())
		return zero, err
	}
	return typed, nil
}

// TryResolve returns the instance registered for T and whether it was found.
func TryResolve[T any](r *Registry) (T, bool) {
	var zero T
	raw, ok := r.lookup(contractOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// MustResolve is like Resolve but panics when T cannot be resolved.
// Bootstrap code that cannot run without T uses it to crash loudly.
func MustResolve[T any](r *Registry) T {
	svc, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return svc
}

// IsRegistered reports whether an instance is registered for T.
func IsRegistered[T any](r *Registry) bool {
	_, ok := r.lookup(contractOf[T]())
	return ok
}

// Unregister removes the instance registered for T, if any.
func Unregister[T any](r *Registry) {
	contract := contractOf[T]()
	r.mu.Lock()
	delete(r.bindings, contract)
	r.mu.Unlock()
}

// Clear removes all registrations and drops the cached type names.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.bindings = make(map[reflect.Type]any, 32)
	r.typeNames.Clear()
	r.mu.Unlock()
}

// Len returns the number of registered contracts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// Services returns the sorted names of all registered contracts.
func (r *Registry) Services() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.bindings))
	for contract := range r.bindings {
		names = append(names, r.typeName(contract))
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (r *Registry) register(contract reflect.Type, service any) error {
	if isNil(service) {
		err := &NilServiceError{Type: r.typeName(contract)}
		r.log.WithField("service", err.Type).Error(err.Error())
		return err
	}

	r.mu.Lock()
	_, replaced := r.bindings[contract]
	r.bindings[contract] = service
	r.mu.Unlock()

	if replaced {
		r.log.WithField("service", r.typeName(contract)).Warn("service re-registered, previous instance replaced")
	}
	return nil
}

func (r *Registry) lookup(contract reflect.Type) (any, bool) {
	r.mu.RLock()
	instance, ok := r.bindings[contract]
	r.mu.RUnlock()
	return instance, ok
}
