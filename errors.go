package jsonrule

import (
	"encoding/json"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrInvalidType is matched by every [TypeError].
	ErrInvalidType = errors.New("invalid JSON type")

	// ErrMissing is reported for an expected object key that is absent.
	ErrMissing = errors.New("is required")

	// ErrUnknownKey is reported by strict object rules for keys they do not bind.
	ErrUnknownKey = errors.New("is not allowed")
)

// ValidationErrors maps object keys to their errors. It is an alias for
// [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors

// TypeError reports a JSON value whose shape does not match what a rule expects.
type TypeError struct {
	Value    any
	Expected string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value of unexpected type found: %s, expected %s", jsonKind(e.Value), e.Expected)
}

// Is makes errors.Is(err, ErrInvalidType) true for every TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrInvalidType
}

func typeError(value any, expected string) error {
	return &TypeError{Value: value, Expected: expected}
}

// ItemError carries the position of a failing array item.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// jsonKind names the JSON shape of v for error messages.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return fmt.Sprintf("%T(%s)", v, s)
	}
	return fmt.Sprintf("%T", v)
}
