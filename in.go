package jsonrule

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// In returns a check that a decoded value equals one of values. The values
// must have the type the rule decodes to: strings for [String], int64 for
// [Int], float64 for [Float]. Empty values pass; use [Required] to reject
// them. The schema lists values as its enum.
func In(values ...any) Check {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("'%v'", v)
	}
	msg := "must be one of " + strings.Join(quoted, ", ")
	return &inCheck{
		rule:   validation.In(values...).Error(msg),
		values: values,
	}
}

type inCheck struct {
	rule   validation.InRule
	values []any
}

// Validate reports the rejected value after the allowed ones.
func (c *inCheck) Validate(value any) error {
	err := c.rule.Validate(value)
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w got '%v'", err, value)
}

func (c *inCheck) Describe(schema *openapi3.Schema) error {
	schema.Enum = c.values
	return nil
}
