package jsonrule

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Documentation-only checks: they never fail and only annotate the schema.

type describe struct {
	desc string
}

// Describe returns a check that appends desc to the schema description.
func Describe(desc string) Check {
	return &describe{desc: desc}
}

func (c *describe) Describe(schema *openapi3.Schema) error {
	appendDescription(schema, c.desc)
	return nil
}

func (c *describe) Validate(_ any) error {
	return nil
}

type defaulter struct {
	a any
}

// Default returns a check that sets the schema default value.
func Default(a any) Check {
	return defaulter{a: a}
}

func (c defaulter) Describe(schema *openapi3.Schema) error {
	schema.Default = c.a
	return nil
}

func (c defaulter) Validate(_ any) error {
	return nil
}

type example struct {
	ex any
}

// Example returns a check that sets the schema example value.
func Example(ex any) Check {
	return &example{ex: ex}
}

func (c *example) Describe(schema *openapi3.Schema) error {
	schema.Example = c.ex
	return nil
}

func (c *example) Validate(_ any) error {
	return nil
}

type deprecate struct{}

// Deprecate returns a check that marks the value deprecated in the schema.
func Deprecate() Check {
	return deprecate{}
}

func (deprecate) Describe(schema *openapi3.Schema) error {
	schema.Deprecated = true
	return nil
}

func (deprecate) Validate(_ any) error {
	return nil
}
