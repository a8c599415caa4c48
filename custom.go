package jsonrule

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type custom struct {
	f    CheckFunc
	desc string
}

// Custom returns a check that uses f for validation and desc for documentation.
func Custom(f CheckFunc, desc string) Check {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (c custom) Describe(schema *openapi3.Schema) error {
	appendDescription(schema, c.desc)
	return nil
}

func (c custom) Validate(value any) error {
	return c.f(value)
}

type funcRule[T any] struct {
	validate func(any) (T, error)
	dump     func(T) (any, error)
	schema   *openapi3.Schema
}

// Func builds a rule from a pair of closures. A nil dump returns the value
// unchanged. schema may be nil; Schema returns a copy of it each time.
func Func[T any](validate func(any) (T, error), dump func(T) (any, error), schema *openapi3.Schema) Rule[T] {
	return &funcRule[T]{validate: validate, dump: dump, schema: schema}
}

func (r *funcRule[T]) Validate(value any) (T, error) {
	return r.validate(value)
}

func (r *funcRule[T]) Dump(value T) (any, error) {
	if r.dump == nil {
		return value, nil
	}
	return r.dump(value)
}

func (r *funcRule[T]) Schema() *openapi3.Schema {
	if r.schema == nil {
		return openapi3.NewSchema()
	}
	s := *r.schema
	return &s
}
