package jsonrule

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// KeyIn returns a check that every key of a map is one of values.
func KeyIn(values ...string) Check {
	return &keyInCheck{values}
}

type keyInCheck struct {
	values []string
}

func (c *keyInCheck) Describe(schema *openapi3.Schema) error {
	appendDescription(schema, fmt.Sprintf("keys must be in (%s)", strings.Join(c.values, ",")))
	return nil
}

func (c *keyInCheck) Validate(value any) error {
	rv := reflect.Indirect(reflect.ValueOf(value))
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return errors.New("must be an object")
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !slices.Contains(c.values, k) {
			return fmt.Errorf("key '%s' not allowed", k)
		}
	}
	return nil
}
