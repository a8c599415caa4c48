package jsonrule

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Each returns a check that applies checks to every element of an array or
// every value of a map. Errors are keyed by index or map key.
func Each(checks ...Check) Check {
	rules := make([]validation.Rule, len(checks))
	for i, c := range checks {
		rules[i] = c
	}
	return &eachCheck{
		validation.Each(rules...),
		checks,
	}
}

type eachCheck struct {
	validation.EachRule
	checks []Check
}

// Describe annotates the item or value schema when there is one.
func (c *eachCheck) Describe(schema *openapi3.Schema) error {
	target := schema
	switch {
	case schema.Items != nil && schema.Items.Value != nil:
		target = schema.Items.Value
	case schema.AdditionalProperties.Schema != nil && schema.AdditionalProperties.Schema.Value != nil:
		target = schema.AdditionalProperties.Schema.Value
	}
	return describeChecks(target, c.checks)
}
