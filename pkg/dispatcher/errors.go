package dispatcher

import (
	"errors"
	"fmt"
)

// ErrInvalidType is matched by every validation error of this package
// through errors.Is, regardless of which check failed.
var ErrInvalidType = errors.New("dispatcher: invalid type")

// ShapeMismatchError is returned when a value is not a dispatcher subscription.
type ShapeMismatchError struct {
	Value any
	// Err holds the *shape.MismatchError with the failed requirements.
	Err error
}

func (e *ShapeMismatchError) Error() string {
	return "dispatcher: must be a dispatcher subscription"
}

func (e *ShapeMismatchError) Unwrap() error {
	return e.Err
}

func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrInvalidType
}

// InvalidArgumentError is returned when an update is not an object or when
// a subscriptions argument is not a Set.
type InvalidArgumentError struct {
	Argument string
	Expected string
	Value    any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("dispatcher: %s must be %s", e.Argument, e.Expected)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidType
}

// DeliveryError wraps an error returned by a subscription's handler.
type DeliveryError struct {
	Position     int
	Subscription Subscription
	Err          error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("dispatcher: subscription %T at position %d failed: %v", e.Subscription, e.Position, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func errNotObject(v any) error {
	return &InvalidArgumentError{Argument: "update", Expected: "an Object", Value: v}
}

func errNotSet(v any) error {
	return &InvalidArgumentError{Argument: "subscriptions", Expected: "a Set", Value: v}
}

func IsShapeMismatch(err error) bool {
	var e *ShapeMismatchError
	return errors.As(err, &e)
}

func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

func IsDeliveryError(err error) bool {
	var e *DeliveryError
	return errors.As(err, &e)
}
