package jsonrule

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredCheck struct {
	validation.RequiredRule
}

// Required is a check that a decoded value is not empty: no blank strings,
// empty arrays or empty objects. Use [Expect] for key presence.
var Required Check = requiredCheck{validation.Required}

func (requiredCheck) Describe(schema *openapi3.Schema) error {
	switch {
	case schema.Type.Is(openapi3.TypeString):
		schema.MinLength = max(schema.MinLength, 1)
	case schema.Type.Is(openapi3.TypeArray):
		schema.MinItems = max(schema.MinItems, 1)
	case schema.Type.Is(openapi3.TypeObject):
		schema.MinProps = max(schema.MinProps, 1)
	}
	schema.Nullable = false
	return nil
}

type notNilCheck struct {
	validation.Rule
}

// NotNil is a check that a pointer, typically from [Nullable], is set.
var NotNil Check = notNilCheck{validation.NotNil}

func (notNilCheck) Describe(schema *openapi3.Schema) error {
	schema.Nullable = false
	return nil
}

type absentCheck struct {
	validation.Rule
	skipNil bool
}

// Nil is a check that a value is nil. Pair it with [Nullable] and [When] for
// fields that must be null in some states.
var Nil Check = absentCheck{validation.Nil, false}

// Empty is a check that a non-nil value is empty.
var Empty Check = absentCheck{validation.Empty, true}

func (c absentCheck) Describe(schema *openapi3.Schema) error {
	if c.skipNil {
		appendDescription(schema, "empty")
	} else {
		appendDescription(schema, "null")
	}
	return nil
}
