package jsonrule

import (
	"maps"
	"reflect"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// MapRule reads objects keyed by unknown ids, such as
// {"<id1>": {...}, "<id2>": {...}}, into a slice. Keys are bound to items by
// the validateKey and dumpKey closures. Items come out in key order.
type MapRule[T any] struct {
	item        Rule[T]
	validateKey func(item *T, key string) error
	dumpKey     func(item T) (string, error)
}

// Map returns a rule that validates every value of an object with item and
// hands its key to validateKey. Dump asks dumpKey for each item's key; items
// sharing a key overwrite each other in slice order.
func Map[T any](item Rule[T], validateKey func(item *T, key string) error, dumpKey func(item T) (string, error)) *MapRule[T] {
	return &MapRule[T]{item: item, validateKey: validateKey, dumpKey: dumpKey}
}

// Validate stops at the first failing key and reports it as a
// [ValidationErrors] with that single key.
func (r *MapRule[T]) Validate(value any) ([]T, error) {
	obj, ok := asObject(value)
	if !ok {
		return nil, typeError(value, "object")
	}
	out := make([]T, 0, len(obj))
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		v, err := r.item.Validate(obj[key])
		if err == nil {
			err = r.validateKey(&v, key)
		}
		if err != nil {
			return nil, ValidationErrors{key: err}
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *MapRule[T]) Dump(value []T) (any, error) {
	out := make(map[string]any, len(value))
	for i, item := range value {
		key, err := r.dumpKey(item)
		if err != nil {
			return nil, &ItemError{Index: i, Err: err}
		}
		v, err := r.item.Dump(item)
		if err != nil {
			return nil, &ItemError{Index: i, Err: err}
		}
		out[key] = v
	}
	return out, nil
}

// Schema implements [Schemer].
func (r *MapRule[T]) Schema() *openapi3.Schema {
	return openapi3.NewObjectSchema().WithAdditionalProperties(SchemaOf(r.item))
}

// DictRule converts a JSON object into a map[string]T.
type DictRule[T any] struct {
	item   Rule[T]
	checks []Check
}

// Dict returns a rule for objects whose values all satisfy item. checks run
// on the assembled map, so [KeyIn] and [Count] apply.
func Dict[T any](item Rule[T], checks ...Check) *DictRule[T] {
	return &DictRule[T]{item: item, checks: checks}
}

// Validate reports every failing key at once as a [ValidationErrors].
func (r *DictRule[T]) Validate(value any) (map[string]T, error) {
	obj, ok := asObject(value)
	if !ok {
		return nil, typeError(value, "object")
	}
	out := make(map[string]T, len(obj))
	errs := ValidationErrors{}
	for key, raw := range obj {
		v, err := r.item.Validate(raw)
		if err != nil {
			errs[key] = err
			continue
		}
		out[key] = v
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if err := validateChecks(out, r.checks); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DictRule[T]) Dump(value map[string]T) (any, error) {
	out := make(map[string]any, len(value))
	errs := ValidationErrors{}
	for key, item := range value {
		v, err := r.item.Dump(item)
		if err != nil {
			errs[key] = err
			continue
		}
		out[key] = v
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// Schema implements [Schemer].
func (r *DictRule[T]) Schema() *openapi3.Schema {
	return describedSchema(openapi3.NewObjectSchema().WithAdditionalProperties(SchemaOf(r.item)), r.checks)
}

// asObject returns value as a string-keyed map when it is object-shaped.
func asObject(value any) (map[string]any, bool) {
	if obj, ok := value.(map[string]any); ok {
		return obj, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	obj := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		obj[iter.Key().String()] = iter.Value().Interface()
	}
	return obj, true
}
