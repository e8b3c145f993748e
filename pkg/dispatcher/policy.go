package dispatcher

import (
	"errors"
	"fmt"
)

// ErrorPolicy decides what happens when a subscription's handler returns an error.
type ErrorPolicy int

const (
	// FailFast stops the pass at the first handler error. Subscriptions after
	// the failing one are not notified.
	FailFast ErrorPolicy = iota
	// Collect notifies every subscription and returns all handler errors joined.
	Collect
)

var ErrUnknownPolicy = errors.New("dispatcher: unknown error policy")

func (p ErrorPolicy) String() string {
	switch p {
	case FailFast:
		return "fail_fast"
	case Collect:
		return "collect"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

// ParseErrorPolicy accepts "fail_fast" (or "failfast") and "collect".
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "fail_fast", "failfast":
		return FailFast, nil
	case "collect":
		return Collect, nil
	default:
		return FailFast, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

func (p ErrorPolicy) MarshalText() ([]byte, error) {
	if p != FailFast && p != Collect {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
	return []byte(p.String()), nil
}

func (p *ErrorPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseErrorPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
