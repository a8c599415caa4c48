package jsonrule

import (
	"errors"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

type uniqueCheck struct {
	key  func(elem any) any
	desc string
}

// Unique returns a check that all elements of a slice are distinct under key.
// A nil key compares the elements themselves, which must then be comparable,
// including any values held in interface fields.
func Unique(key func(elem any) any, desc string) Check {
	return uniqueCheck{key: key, desc: desc}
}

func (c uniqueCheck) Describe(schema *openapi3.Schema) error {
	schema.UniqueItems = true
	appendDescription(schema, c.desc)
	return nil
}

func (c uniqueCheck) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil
	}
	rv = reflect.Indirect(rv)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seen := make(map[any]struct{}, rv.Len())
		for i := range rv.Len() {
			k := rv.Index(i).Interface()
			if c.key != nil {
				k = c.key(k)
			}
			if k != nil && !reflect.ValueOf(k).Comparable() {
				return errors.New("elements are not comparable")
			}
			if _, dup := seen[k]; dup {
				return errors.New("not unique")
			}
			seen[k] = struct{}{}
		}
	default:
		return errors.New("must be slice")
	}
	return nil
}
