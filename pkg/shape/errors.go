package shape

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName    = errors.New("shape: name cannot be empty")
	ErrNotInterface = errors.New("shape: descriptor must be an interface type")
)

// MismatchError describes why a value does not conform to a shape.
type MismatchError struct {
	Shape  string
	Type   string
	Failed []string
}

func (e *MismatchError) Error() string {
	if len(e.Failed) == 0 {
		return fmt.Sprintf("shape: %s does not conform to %s", e.Type, e.Shape)
	}
	return fmt.Sprintf("shape: %s does not conform to %s: failed %s", e.Type, e.Shape, strings.Join(e.Failed, ", "))
}

// Has reports whether the named requirement is among the failed ones.
func (e *MismatchError) Has(requirement string) bool {
	for _, name := range e.Failed {
		if name == requirement {
			return true
		}
	}
	return false
}

func IsMismatch(err error) bool {
	var e *MismatchError
	return errors.As(err, &e)
}
