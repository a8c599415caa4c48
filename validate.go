package jsonrule

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/getkin/kin-openapi/openapi3"
)

// Unmarshal parses JSON from b and converts it with rule. Numbers are kept
// as [json.Number] so integers beyond 2^53 survive.
func Unmarshal[T any](rule Rule[T], b []byte) (T, error) {
	return Decode(rule, bytes.NewReader(b))
}

// Decode reads one JSON value from r and converts it with rule. Use this
// instead of [Unmarshal] when reading directly from an [io.Reader] such as
// an HTTP request body.
func Decode[T any](rule Rule[T], r io.Reader) (T, error) {
	var raw any
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		var zero T
		return zero, err
	}
	return rule.Validate(raw)
}

// Marshal dumps value with rule and encodes the result as JSON.
func Marshal[T any](rule Rule[T], value T) ([]byte, error) {
	raw, err := rule.Dump(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

type preprocessRule[T any] struct {
	Rule[T]
	fn func(any) any
}

// Preprocess returns a rule that rewrites the raw JSON value with fn before
// handing it to rule. Dump is unchanged.
//
//	jsonrule.Preprocess(jsonrule.String(jsonrule.Length(1, 0)), transform.TrimSpace)
func Preprocess[T any](rule Rule[T], fn func(any) any) Rule[T] {
	return preprocessRule[T]{rule, fn}
}

func (r preprocessRule[T]) Validate(value any) (T, error) {
	return r.Rule.Validate(r.fn(value))
}

func (r preprocessRule[T]) Schema() *openapi3.Schema {
	return SchemaOf(r.Rule)
}
