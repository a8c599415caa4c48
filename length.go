package jsonrule

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthCheck struct {
	validation.LengthRule
	min, max int
	runes    bool
}

// Length returns a check that a string's rune length is within [lo, hi].
// A hi of zero means no upper bound.
func Length(lo, hi int) Check {
	return &lengthCheck{validation.RuneLength(lo, hi), lo, hi, true}
}

// Count returns a check that an array or map holds between lo and hi
// elements. A hi of zero means no upper bound.
func Count(lo, hi int) Check {
	return &lengthCheck{validation.Length(lo, hi), lo, hi, false}
}

func (c *lengthCheck) Describe(schema *openapi3.Schema) error {
	lo := uint64(c.min)
	var hi *uint64
	if c.max > 0 {
		v := uint64(c.max)
		hi = &v
	}
	switch {
	case c.runes:
		schema.MinLength, schema.MaxLength = lo, hi
	case schema.Type.Is(openapi3.TypeObject):
		schema.MinProps, schema.MaxProps = lo, hi
	default:
		schema.MinItems, schema.MaxItems = lo, hi
	}
	return nil
}
