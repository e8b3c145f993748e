package dispatcher

import (
	"context"

	"github.com/etchedjs/dispatcher/pkg/shape"
)

// Subscription is anything that can receive an update.
// Registration is by identity, so implementations are usually pointers.
type Subscription interface {
	Handle(ctx context.Context, update any) error
}

// SubscriptionShape is the structural check applied at every registry
// boundary: the value must be non-nil, implement Subscription and be
// comparable.
var SubscriptionShape = shape.Of[Subscription]("dispatcher subscription")

// IsSubscription reports whether v conforms to SubscriptionShape.
func IsSubscription(v any) bool {
	return SubscriptionShape.Conforms(v)
}

// FuncSubscription adapts a plain function into a Subscription.
type FuncSubscription struct {
	fn func(ctx context.Context, update any) error
}

// Func wraps fn. Every call returns a distinct subscription, so the same
// function can be registered twice through two wrappers.
// A nil fn yields a subscription that ignores updates.
func Func(fn func(ctx context.Context, update any) error) *FuncSubscription {
	return &FuncSubscription{fn: fn}
}

func (f *FuncSubscription) Handle(ctx context.Context, update any) error {
	if f.fn == nil {
		return nil
	}
	return f.fn(ctx, update)
}

func validateSubscription(v any) error {
	if err := SubscriptionShape.Check(v); err != nil {
		return &ShapeMismatchError{Value: v, Err: err}
	}
	return nil
}
