package jsonrule

import (
	"github.com/Gobd/jsonrule/batch"
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule converts an untyped JSON value into T and back. Validate receives
	// values shaped like the output of encoding/json: map[string]any, []any,
	// string, float64, json.Number, bool or nil.
	//
	// Rules are shared between goroutines (see [ConcurrentArray]), so
	// implementations must be safe for concurrent use.
	Rule[T any] interface {
		Validate(value any) (T, error)
		Dump(value T) (any, error)
	}

	// Schemer is implemented by rules that can describe the JSON they accept.
	Schemer interface {
		Schema() *openapi3.Schema
	}

	// Check is a constraint applied to a value after a rule has decoded it.
	// Describe records the constraint on the value's OpenAPI schema.
	Check interface {
		Validate(value any) error
		Describe(schema *openapi3.Schema) error
	}

	// CheckFunc validates a decoded value and returns an error if invalid.
	CheckFunc func(value any) error

	// InvalidItemHandler is called with the position and error of an array
	// item that failed its rule. Returning nil drops the item and keeps
	// going; returning an error fails the whole array with that error.
	InvalidItemHandler = batch.FailureHandler
)
