package jsonrule

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

// ScalarRule is the rule behind [String], [Int], [Float], [Bool] and [Any].
// It decodes one JSON scalar and then applies its checks.
type ScalarRule[T any] struct {
	expected string
	decode   func(any) (T, bool)
	encode   func(T) any
	base     func() *openapi3.Schema
	checks   []Check
}

// String accepts JSON strings.
func String(checks ...Check) *ScalarRule[string] {
	return &ScalarRule[string]{
		expected: "string",
		decode: func(v any) (string, bool) {
			s, ok := v.(string)
			return s, ok
		},
		encode: func(s string) any { return s },
		base:   openapi3.NewStringSchema,
		checks: checks,
	}
}

// Int accepts JSON numbers with no fractional part that fit in an int64.
func Int(checks ...Check) *ScalarRule[int64] {
	return &ScalarRule[int64]{
		expected: "integer",
		decode:   toInt64,
		encode:   func(i int64) any { return i },
		base:     openapi3.NewInt64Schema,
		checks:   checks,
	}
}

// Float accepts any JSON number.
func Float(checks ...Check) *ScalarRule[float64] {
	return &ScalarRule[float64]{
		expected: "number",
		decode:   toFloat64,
		encode:   func(f float64) any { return f },
		base:     openapi3.NewFloat64Schema,
		checks:   checks,
	}
}

// Bool accepts JSON booleans.
func Bool(checks ...Check) *ScalarRule[bool] {
	return &ScalarRule[bool]{
		expected: "boolean",
		decode: func(v any) (bool, bool) {
			b, ok := v.(bool)
			return b, ok
		},
		encode: func(b bool) any { return b },
		base:   openapi3.NewBoolSchema,
		checks: checks,
	}
}

// Any accepts every JSON value unchanged, null included.
func Any(checks ...Check) *ScalarRule[any] {
	return &ScalarRule[any]{
		expected: "any value",
		decode:   func(v any) (any, bool) { return v, true },
		encode:   func(v any) any { return v },
		base:     openapi3.NewSchema,
		checks:   checks,
	}
}

// Validate decodes value and applies the checks.
func (r *ScalarRule[T]) Validate(value any) (T, error) {
	v, ok := r.decode(value)
	if !ok {
		var zero T
		return zero, typeError(value, r.expected)
	}
	if err := validateChecks(v, r.checks); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Dump returns value as its JSON representation. Checks are not applied.
func (r *ScalarRule[T]) Dump(value T) (any, error) {
	return r.encode(value), nil
}

// Schema implements [Schemer].
func (r *ScalarRule[T]) Schema() *openapi3.Schema {
	return describedSchema(r.base(), r.checks)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return floatToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > math.MaxInt64 {
			return 0, false
		}
		return int64(rv.Uint()), true
	}
	return 0, false
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}
