package shape

import (
	"fmt"
	"reflect"
)

// Built-in requirement names. They are evaluated before any custom requirement
// and in this order.
const (
	RequirePresent    = "present"
	RequireImplements = "implements"
	RequireIdentity   = "identity"
)

// Requirement is a single structural predicate applied to a candidate value.
type Requirement struct {
	Name  string
	Check func(v any) bool
}

// Shape is a named structural type. It is immutable once defined and safe for
// concurrent use.
type Shape struct {
	name    string
	iface   reflect.Type
	builtin []Requirement
	custom  []Requirement
}

// Define creates a shape from an interface type and optional extra requirements.
// Requirements with a nil Check are ignored.
func Define(name string, iface reflect.Type, reqs ...Requirement) (*Shape, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if iface == nil || iface.Kind() != reflect.Interface {
		return nil, ErrNotInterface
	}

	s := &Shape{name: name, iface: iface}
	s.builtin = []Requirement{
		{Name: RequirePresent, Check: present},
		{Name: RequireImplements, Check: s.implements},
		{Name: RequireIdentity, Check: identity},
	}
	for _, r := range reqs {
		if r.Check != nil {
			s.custom = append(s.custom, r)
		}
	}
	return s, nil
}

// Of is the generic form of Define. T must be an interface type.
// Panics on misuse so that invalid shape definitions fail at package init.
func Of[T any](name string, reqs ...Requirement) *Shape {
	s, err := Define(name, reflect.TypeFor[T](), reqs...)
	if err != nil {
		panic(fmt.Errorf("%w: %s", err, name))
	}
	return s
}

func (s *Shape) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Conforms reports whether v satisfies every requirement of the shape.
func (s *Shape) Conforms(v any) bool {
	return s.Check(v) == nil
}

// Check returns nil when v conforms, otherwise a *MismatchError.
// An absent value fails on the presence requirement alone. Custom requirements
// only run once every built-in requirement has passed.
func (s *Shape) Check(v any) error {
	if s == nil {
		return &MismatchError{Shape: "<nil>", Type: fmt.Sprintf("%T", v)}
	}

	mismatch := &MismatchError{Shape: s.name, Type: fmt.Sprintf("%T", v)}
	if !present(v) {
		mismatch.Failed = append(mismatch.Failed, RequirePresent)
		return mismatch
	}

	for _, r := range s.builtin[1:] {
		if !r.Check(v) {
			mismatch.Failed = append(mismatch.Failed, r.Name)
		}
	}
	if len(mismatch.Failed) > 0 {
		return mismatch
	}

	for _, r := range s.custom {
		if !r.Check(v) {
			mismatch.Failed = append(mismatch.Failed, r.Name)
		}
	}
	if len(mismatch.Failed) > 0 {
		return mismatch
	}
	return nil
}

// Conforms is the package-level form of (*Shape).Conforms.
func Conforms(s *Shape, v any) bool {
	return s.Conforms(v)
}

func (s *Shape) implements(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Implements(s.iface)
}

func present(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

// identity inspects the value rather than its type: a struct holding an
// interface field is only comparable if the stored dynamic value is.
func identity(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Comparable()
}
