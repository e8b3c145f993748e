// Package shape provides structural conformance checks for Go values.
//
// A Shape names an interface type plus an optional list of extra requirements.
// A value conforms to a Shape when it is present (not nil, not a typed nil),
// its dynamic type implements the interface, and that type is comparable so
// the value can be tracked by identity in a set. Conformance is decided by the
// value's method set alone, so any type qualifies regardless of how it was
// constructed.
//
// # Usage
//
//	type Notifier interface{ Notify(msg string) error }
//
//	var NotifierShape = shape.Of[Notifier]("notifier")
//
//	if err := NotifierShape.Check(v); err != nil {
//	    // err is a *shape.MismatchError listing the failed requirements
//	}
//
// Extra requirements can be attached at definition time:
//
//	s := shape.Of[Notifier]("notifier", shape.Requirement{
//	    Name:  "pointer",
//	    Check: func(v any) bool { return reflect.TypeOf(v).Kind() == reflect.Pointer },
//	})
//
// # Error Handling
//
// Define returns ErrEmptyName or ErrNotInterface on misuse; Of panics in the
// same situations. Check returns a *MismatchError which can be detected with
// IsMismatch or errors.As.
package shape
