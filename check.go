package jsonrule

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// validateChecks applies checks in order and returns the first failure.
func validateChecks(value any, checks []Check) error {
	for _, c := range checks {
		if err := c.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

func describeChecks(schema *openapi3.Schema, checks []Check) error {
	for _, c := range checks {
		if err := c.Describe(schema); err != nil {
			return err
		}
	}
	return nil
}

// describedSchema is the common tail of every Schema method: start from base
// and let the checks annotate it. Describe errors are dropped because a
// schema is documentation; a broken Describe still leaves a usable schema.
func describedSchema(base *openapi3.Schema, checks []Check) *openapi3.Schema {
	_ = describeChecks(base, checks)
	return base
}

func appendDescription(schema *openapi3.Schema, desc string) {
	if desc == "" {
		return
	}
	if schema.Description != "" && !strings.HasSuffix(schema.Description, " ") {
		schema.Description += " "
	}
	schema.Description += desc
}

// By wraps any ozzo-validation rule as a Check, documented by desc.
func By(rule validation.Rule, desc string) Check {
	return ozzoCheck{rule, desc}
}

type ozzoCheck struct {
	validation.Rule
	desc string
}

func (c ozzoCheck) Describe(schema *openapi3.Schema) error {
	appendDescription(schema, c.desc)
	return nil
}
