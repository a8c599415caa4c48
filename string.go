package jsonrule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type stringCheck struct {
	validation.StringRule
	desc   string
	format string
}

// NewStringCheckWithError returns a string check with a custom error and
// schema description.
func NewStringCheckWithError(validator func(string) bool, err validation.Error, desc string) Check {
	return stringCheck{
		StringRule: validation.NewStringRuleWithError(validator, err),
		desc:       desc,
	}
}

// NewStringCheck returns a string check using desc as both the error message
// and the schema description.
func NewStringCheck(validator func(string) bool, desc string) Check {
	return stringCheck{
		StringRule: validation.NewStringRule(validator, desc),
		desc:       desc,
	}
}

// Format wraps an ozzo string rule (such as those in ozzo's is package) and
// records format on the schema.
func Format(rule validation.StringRule, format string) Check {
	return stringCheck{StringRule: rule, format: format}
}

// DecimalMax returns a check that limits the number of decimal places in a
// numeric string.
func DecimalMax(i uint) Check {
	desc := fmt.Sprintf("no more than %d decimals", i)
	return stringCheck{
		StringRule: validation.NewStringRule(func(s string) bool {
			_, frac, ok := strings.Cut(s, ".")
			return !ok || len(frac) <= int(i)
		}, desc),
		desc: desc,
	}
}

func (c stringCheck) Describe(schema *openapi3.Schema) error {
	appendDescription(schema, c.desc)
	if c.format != "" {
		schema.Format = c.format
	}
	return nil
}

type matchCheck struct {
	validation.MatchRule
	re *regexp.Regexp
}

// Match returns a check that a string matches re.
func Match(re *regexp.Regexp) Check {
	return matchCheck{validation.Match(re), re}
}

func (c matchCheck) Describe(schema *openapi3.Schema) error {
	schema.Pattern = c.re.String()
	return nil
}
