package jsonrule

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type nullableRule[T any] struct {
	rule Rule[T]
}

// Nullable maps JSON null to a nil pointer and everything else through rule.
func Nullable[T any](rule Rule[T]) Rule[*T] {
	return nullableRule[T]{rule}
}

func (r nullableRule[T]) Validate(value any) (*T, error) {
	if value == nil {
		return nil, nil
	}
	v, err := r.rule.Validate(value)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r nullableRule[T]) Dump(value *T) (any, error) {
	if value == nil {
		return nil, nil
	}
	return r.rule.Dump(*value)
}

func (r nullableRule[T]) Schema() *openapi3.Schema {
	s := *SchemaOf(r.rule)
	s.Nullable = true
	return &s
}
