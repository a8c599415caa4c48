package jsonrule

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaOf returns the OpenAPI schema of a rule. Rules that do not implement
// [Schemer] are described by an empty schema, which accepts anything.
func SchemaOf(rule any) *openapi3.Schema {
	if s, ok := rule.(Schemer); ok {
		if schema := s.Schema(); schema != nil {
			return schema
		}
	}
	return openapi3.NewSchema()
}

// NewSchemaRef wraps the schema of rule in a [openapi3.SchemaRef] ready to be
// placed in a document.
func NewSchemaRef(rule any) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", SchemaOf(rule))
}
