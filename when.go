package jsonrule

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// WhenCheck validates conditionally: it applies one set of checks when the
// condition holds for the value, and an optional alternative set (via
// [WhenCheck.Else]) otherwise. Use [When] to create one.
type WhenCheck struct {
	cond       func(value any) bool
	desc       string
	whenChecks []Check
	elseChecks []Check
}

// When returns a check that applies checks only when cond reports true for
// the value being checked. desc names the condition in the schema.
func When(cond func(value any) bool, desc string, checks ...Check) *WhenCheck {
	return &WhenCheck{
		cond:       cond,
		desc:       desc,
		whenChecks: checks,
	}
}

// Else returns a copy of r that applies checks when the condition is false.
func (r *WhenCheck) Else(checks ...Check) *WhenCheck {
	cp := *r
	cp.elseChecks = checks
	return &cp
}

func (r *WhenCheck) Validate(value any) error {
	if r.cond(value) {
		return validateChecks(value, r.whenChecks)
	}
	return validateChecks(value, r.elseChecks)
}

// summarize describes checks onto a scratch schema of the same type and
// returns a human-readable summary of what they set.
func summarize(typ *openapi3.Types, checks []Check) (string, error) {
	if len(checks) == 0 {
		return "", nil
	}

	scratch := &openapi3.Schema{Type: typ}
	if err := describeChecks(scratch, checks); err != nil {
		return "", err
	}

	var parts []string

	if scratch.Description != "" {
		parts = append(parts, scratch.Description)
	}
	if scratch.Format != "" {
		parts = append(parts, "format "+scratch.Format)
	}
	if scratch.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("min length %d", scratch.MinLength))
	}
	if scratch.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("max length %d", *scratch.MaxLength))
	}
	if scratch.MinItems > 0 {
		parts = append(parts, fmt.Sprintf("min items %d", scratch.MinItems))
	}
	if scratch.Min != nil {
		parts = append(parts, fmt.Sprintf("min %g", *scratch.Min))
	}
	if scratch.Max != nil {
		parts = append(parts, fmt.Sprintf("max %g", *scratch.Max))
	}
	if len(scratch.Enum) > 0 {
		vals := make([]string, len(scratch.Enum))
		for i, v := range scratch.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if scratch.Pattern != "" {
		parts = append(parts, "matching "+scratch.Pattern)
	}
	if scratch.UniqueItems {
		parts = append(parts, "unique")
	}

	return strings.Join(parts, ", "), nil
}

// Describe appends a summary of both branches to the schema description.
// The schema's own constraints are left alone since neither branch always
// applies.
func (r *WhenCheck) Describe(schema *openapi3.Schema) error {
	desc, err := summarize(schema.Type, r.whenChecks)
	if err != nil {
		return err
	}
	if desc != "" {
		if r.desc != "" {
			desc = fmt.Sprintf("when %s: %s", r.desc, desc)
		}
		appendDescription(schema, desc)
	}

	desc, err = summarize(schema.Type, r.elseChecks)
	if err != nil {
		return err
	}
	if desc != "" {
		appendDescription(schema, "else: "+desc)
	}
	return nil
}
