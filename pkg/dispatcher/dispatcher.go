package dispatcher

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/etchedjs/dispatcher/pkg/logger"
)

// Dispatcher is a registry of subscriptions that synchronously fans out updates.
//
// All methods are safe for concurrent use. Dispatch delivers to a snapshot of
// the registry taken when the pass begins, so a handler may subscribe or
// unsubscribe on the same Dispatcher; the change applies to later passes.
type Dispatcher struct {
	name   string
	logger *slog.Logger
	policy ErrorPolicy

	mu            sync.RWMutex
	subscriptions *Set
}

// New creates a dispatcher with an empty registry.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		name:          "dispatcher",
		logger:        logger.Discard(),
		policy:        FailFast,
		subscriptions: &Set{index: make(map[any]int)},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With(logger.Component("dispatcher"), logger.Dispatcher(d.name))
	return d
}

// NewWithSubscriptions creates a dispatcher whose registry starts as a copy of set.
func NewWithSubscriptions(set *Set, opts ...Option) (*Dispatcher, error) {
	d := New(opts...)
	if err := d.SetSubscriptions(set); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dispatcher) Name() string {
	return d.name
}

// Subscribe adds sub to the registry. Adding a registered subscription is a no-op.
// Returns a *ShapeMismatchError without touching the registry if sub is not
// a valid subscription.
func (d *Dispatcher) Subscribe(sub Subscription) error {
	if err := validateSubscription(sub); err != nil {
		return err
	}

	d.mu.Lock()
	before := d.subscriptions.Len()
	_ = d.subscriptions.Add(sub) // comparability already checked by the shape
	after := d.subscriptions.Len()
	d.mu.Unlock()

	if after != before {
		d.logger.Debug("subscription added", logger.Subscribers(after))
	}
	return nil
}

// Unsubscribe removes sub from the registry. Removing an unknown subscription
// is a no-op, but sub is still validated first.
func (d *Dispatcher) Unsubscribe(sub Subscription) error {
	if err := validateSubscription(sub); err != nil {
		return err
	}

	d.mu.Lock()
	removed := d.subscriptions.Delete(sub)
	after := d.subscriptions.Len()
	d.mu.Unlock()

	if removed {
		d.logger.Debug("subscription removed", logger.Subscribers(after))
	}
	return nil
}

// SetSubscriptions replaces the whole registry with a copy of set.
// Every element is validated first; on any failure the registry is unchanged.
func (d *Dispatcher) SetSubscriptions(set *Set) error {
	if set == nil {
		return errNotSet(set)
	}
	if err := validateAll(set.items); err != nil {
		return err
	}

	next := set.Clone()

	d.mu.Lock()
	d.subscriptions = next
	d.mu.Unlock()

	d.logger.Debug("subscriptions replaced", logger.Subscribers(next.Len()))
	return nil
}

// Subscriptions returns a copy of the registry.
func (d *Dispatcher) Subscriptions() *Set {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.subscriptions.Clone()
}

// Has reports whether sub is registered.
func (d *Dispatcher) Has(sub Subscription) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.subscriptions.Has(sub)
}

// Len returns the number of registered subscriptions.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.subscriptions.Len()
}

// Dispatch delivers update to every registered subscription.
// See DispatchTo for validation and error semantics.
func (d *Dispatcher) Dispatch(ctx context.Context, update any) error {
	if !isObject(update) {
		return errNotObject(update)
	}

	d.mu.RLock()
	snapshot := d.subscriptions.Values()
	d.mu.RUnlock()

	return d.deliver(ctx, update, snapshot)
}

// DispatchTo delivers update to the subscriptions in subs instead of the registry.
//
// Validation happens before any delivery and in this order: update must be an
// object (not nil, a primitive, or a nil reference), subs must be non-nil, and
// every element of subs must be a valid subscription. A failed check returns
// an error matching ErrInvalidType and notifies nobody.
//
// Subscriptions are then invoked one at a time in insertion order, each with
// the same update value, in the caller's goroutine. Handler errors are wrapped
// in *DeliveryError and treated according to the ErrorPolicy. Handler panics
// are not recovered.
func (d *Dispatcher) DispatchTo(ctx context.Context, update any, subs *Set) error {
	if !isObject(update) {
		return errNotObject(update)
	}
	if subs == nil {
		return errNotSet(subs)
	}
	return d.deliver(ctx, update, subs.Values())
}

func (d *Dispatcher) deliver(ctx context.Context, update any, targets []any) error {
	if err := validateAll(targets); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	id := uuid.NewString()
	ctx = WithDispatchID(ctx, id)
	log := d.logger.With(logger.DispatchID(id))

	var errs []error
	for i, v := range targets {
		sub := v.(Subscription)
		if err := sub.Handle(ctx, update); err != nil {
			derr := &DeliveryError{Position: i, Subscription: sub, Err: err}
			log.DebugContext(ctx, "delivery failed",
				logger.Position(i),
				logger.Policy(d.policy.String()),
				logger.Error(err),
			)
			if d.policy != Collect {
				return derr
			}
			errs = append(errs, derr)
		}
	}

	log.DebugContext(ctx, "dispatch completed",
		logger.UpdateType(update),
		logger.Subscribers(len(targets)),
		logger.Errors(errs...),
	)
	return errors.Join(errs...)
}

func validateAll(values []any) error {
	for _, v := range values {
		if err := validateSubscription(v); err != nil {
			return err
		}
	}
	return nil
}

// isObject rejects nil, primitives and nil references.
func isObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.UnsafePointer:
		return false
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
