package dispatcher

import "context"

type dispatchIDKey struct{}

// WithDispatchID returns a copy of ctx carrying the id of a dispatch pass.
func WithDispatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, dispatchIDKey{}, id)
}

// DispatchIDFromContext returns the id of the dispatch pass delivering to the
// current handler, or "" outside a dispatch.
func DispatchIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(dispatchIDKey{}).(string)
	return id
}

// DispatchIDKey returns the context key under which the dispatch id is stored,
// for use with logger.WithContextValue.
func DispatchIDKey() any {
	return dispatchIDKey{}
}
