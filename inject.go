package shopkit

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

var errNilDestination = errors.New("nil destination field")

// Injector populates the dependency fields of one target from a Registry.
// Each field is resolved independently; a failed field is left at its zero value
// and recorded without stopping the remaining fields.
type Injector struct {
	registry *Registry
	target   string
	log      logrus.FieldLogger
	failures []*InjectionFieldError
}

// Inject runs target's dependency declarations against reg.
// A nil target is logged and skipped. Field failures are logged and collected
// on the returned Injector, never propagated.
func Inject(reg *Registry, target Injectable) *Injector {
	if isNil(target) {
		reg.log.Error("injection target is nil, skipping")
		return &Injector{registry: reg, log: reg.log}
	}

	name := reflect.TypeOf(target).String()
	in := &Injector{
		registry: reg,
		target:   name,
		log:      reg.log.WithField("target", name),
	}
	target.Dependencies(in)
	return in
}

// TryInject is Inject with panic containment.
// It returns false if a dependency declaration panicked.
func TryInject(reg *Registry, target Injectable) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			reg.log.WithField("panic", rec).Error("injection aborted")
			ok = false
		}
	}()
	Inject(reg, target)
	return true
}

// Required resolves T into dst. A missing service is logged at error level.
func Required[T any](in *Injector, field string, dst *T) bool {
	return bind(in, field, dst, false)
}

// Optional resolves T into dst. A missing service is logged at warning level.
func Optional[T any](in *Injector, field string, dst *T) bool {
	return bind(in, field, dst, true)
}

func bind[T any](in *Injector, field string, dst *T, optional bool) bool {
	if dst == nil {
		in.fail(field, optional, errNilDestination)
		return false
	}

	contract := contractOf[T]()
	raw, ok := in.registry.lookup(contract)
	if !ok {
		in.fail(field, optional, &NotRegisteredError{Type: in.registry.typeName(contract)})
		return false
	}
	typed, ok := raw.(T)
	if !ok {
		in.fail(field, optional, &ResolutionCastError{
			Expected: in.registry.typeName(contract),
			Got:      reflect.TypeOf(raw).String(),
		})
		return false
	}
	*dst = typed
	return true
}

func (in *Injector) fail(field string, optional bool, cause error) {
	err := &InjectionFieldError{Target: in.target, Field: field, Optional: optional, Err: cause}
	in.failures = append(in.failures, err)

	entry := in.log.WithField("field", field)
	if optional {
		entry.Warn(err.Error())
		return
	}
	entry.Error(err.Error())
}

// Failures returns the field failures recorded so far.
func (in *Injector) Failures() []*InjectionFieldError {
	if in == nil {
		return nil
	}
	return in.failures
}

// Err joins all field failures, or returns nil if every field was injected.
func (in *Injector) Err() error {
	if in == nil || len(in.failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(in.failures))
	for _, f := range in.failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

// RequiredErr returns an error only if a required field failed.
func (in *Injector) RequiredErr() error {
	if in == nil {
		return nil
	}
	for _, f := range in.failures {
		if !f.Optional {
			return fmt.Errorf("%s: %w", in.target, f)
		}
	}
	return nil
}
