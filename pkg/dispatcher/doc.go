// Package dispatcher provides an in-process publish/subscribe dispatcher: a
// registry of subscriptions that are notified synchronously with update payloads.
//
// A Subscription is any comparable, non-nil value with a
// Handle(ctx, update) error method. Conformance is structural and checked at
// runtime with SubscriptionShape on every boundary that accepts subscriptions:
// Subscribe, Unsubscribe, SetSubscriptions and DispatchTo. Registration is by
// identity, so the same value registered twice is stored once, and the same
// value may be registered with several dispatchers.
//
// # Usage
//
//	d := dispatcher.New()
//
//	audit := dispatcher.Func(func(ctx context.Context, update any) error {
//	    fmt.Println("audit:", update)
//	    return nil
//	})
//	if err := d.Subscribe(audit); err != nil {
//	    return err
//	}
//
//	if err := d.Dispatch(ctx, &OrderPlaced{ID: "42"}); err != nil {
//	    return err
//	}
//
// # Delivery
//
// Dispatch validates everything before notifying anyone. The update must be an
// object: nil, booleans, numbers, strings and nil references are rejected. Every
// subscription is then invoked exactly once, in registration order, with the
// same update value, in the caller's goroutine. There is no retry, buffering or
// cancellation; ctx is passed to handlers and carries a per-pass id readable
// with DispatchIDFromContext.
//
// By default the first handler error stops the pass (FailFast) and is returned
// as a *DeliveryError. With WithErrorPolicy(Collect) every subscription is
// notified and all handler errors are returned joined. Panics are never recovered.
//
// # Concurrency
//
// The registry is guarded by a lock and each pass delivers to a snapshot taken
// before the first handler runs. A handler may call Subscribe or Unsubscribe on
// the dispatcher that is notifying it; the change is visible from the next pass.
//
// # Error Handling
//
// Validation errors match ErrInvalidType with errors.Is:
//
//   - *ShapeMismatchError: a value is not a dispatcher subscription.
//   - *InvalidArgumentError: the update is not an object or a subscriptions
//     argument is not a Set.
//
// Handler failures are reported as *DeliveryError, which unwraps to the
// handler's error.
//
// # Configuration
//
// LoadConfig reads DISPATCHER_NAME and DISPATCHER_ERROR_POLICY through package
// config, and NewFromConfig applies them.
package dispatcher
