package jsonrule

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateRule decodes strings in a fixed layout into [time.Time].
// Use [Date] to create one, then chain [DateRule.Min] and [DateRule.Max] to
// constrain the accepted range.
type DateRule struct {
	layout   string
	min, max time.Time
	checks   []Check
}

// Date creates a rule for strings formatted with layout.
func Date(layout string, checks ...Check) *DateRule {
	return &DateRule{layout: layout, checks: checks}
}

// Min sets the earliest accepted date.
func (r *DateRule) Min(t time.Time) *DateRule {
	r.min = t
	return r
}

// Max sets the latest accepted date.
func (r *DateRule) Max(t time.Time) *DateRule {
	r.max = t
	return r
}

func (r *DateRule) Validate(value any) (time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, typeError(value, "date string")
	}
	rng := validation.Date(r.layout)
	if !r.min.IsZero() {
		rng = rng.Min(r.min)
	}
	if !r.max.IsZero() {
		rng = rng.Max(r.max)
	}
	if err := rng.Validate(s); err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(r.layout, s)
	if err != nil {
		return time.Time{}, err
	}
	if err := validateChecks(t, r.checks); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func (r *DateRule) Dump(value time.Time) (any, error) {
	return value.Format(r.layout), nil
}

// Schema implements [Schemer] by setting the format and date range.
func (r *DateRule) Schema() *openapi3.Schema {
	schema := openapi3.NewStringSchema()
	switch r.layout {
	case time.RFC3339, time.RFC3339Nano:
		schema.Format = "date-time"
	case time.DateOnly:
		schema.Format = "date"
	default:
		schema.Format = r.layout
	}
	if !r.min.IsZero() {
		appendDescription(schema, "> "+r.min.Format(r.layout))
	}
	if !r.max.IsZero() {
		appendDescription(schema, "< "+r.max.Format(r.layout))
	}
	return describedSchema(schema, r.checks)
}
