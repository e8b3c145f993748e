package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Dispatcher records the dispatcher name under the key "dispatcher".
func Dispatcher(name string) slog.Attr {
	return slog.String("dispatcher", name)
}

// DispatchID records the identifier of a single dispatch pass under the key "dispatch_id".
// If id is nil, it returns an empty Attr.
func DispatchID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("dispatch_id", id)
}

// Subscribers records a subscriber count under the key "subscribers".
func Subscribers(n int) slog.Attr {
	return slog.Int("subscribers", n)
}

// Position records the zero-based delivery position under the key "position".
func Position(i int) slog.Attr {
	return slog.Int("position", i)
}

// UpdateType records the dynamic Go type of an update payload under the key "update_type".
func UpdateType(update any) slog.Attr {
	return slog.String("update_type", fmt.Sprintf("%T", update))
}

// Policy records an error policy name under the key "policy".
func Policy(name string) slog.Attr {
	return slog.String("policy", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
