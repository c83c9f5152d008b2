package inject

import (
	"errors"
	"fmt"
)

// ErrArgumentType is returned by Value when an argument has a different type.
var ErrArgumentType = errors.New("argument has unexpected type")

// Args holds named arguments.
type Args map[string]any

// Value returns the argument called name as a T. A nil argument yields the zero T.
func Value[T any](args Args, name string) (T, error) {
	var zero T

	raw, ok := args[name]
	if !ok {
		return zero, fmt.Errorf("%w %q", ErrMissingArgument, name)
	}

	if raw == nil {
		return zero, nil
	}

	value, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %T", ErrArgumentType, name, raw, zero)
	}

	return value, nil
}

// clone deep copies mappings and sequences produced by resolution.
func clone(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[key] = clone(child)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, child := range typed {
			out[i] = clone(child)
		}

		return out
	default:
		return value
	}
}
