package jsonrule

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

// ArrayRule validates JSON arrays item by item, in order, on the calling
// goroutine. See [ConcurrentArray] for the parallel variant.
type ArrayRule[T any] struct {
	item      Rule[T]
	onInvalid InvalidItemHandler
	checks    []Check
}

// Array returns a rule for arrays whose items satisfy item. checks run on
// the assembled slice.
func Array[T any](item Rule[T], checks ...Check) *ArrayRule[T] {
	return &ArrayRule[T]{item: item, checks: checks}
}

// InvalidItem returns a copy of r that consults h for failing items instead
// of failing with an [ItemError].
func (r *ArrayRule[T]) InvalidItem(h InvalidItemHandler) *ArrayRule[T] {
	cp := *r
	cp.onInvalid = h
	return &cp
}

func (r *ArrayRule[T]) Validate(value any) ([]T, error) {
	items, ok := asArray(value)
	if !ok {
		return nil, typeError(value, "array")
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := r.item.Validate(item)
		if err != nil {
			if err = r.invalid(i, err); err != nil {
				return nil, err
			}
			continue
		}
		out = append(out, v)
	}
	if err := validateChecks(out, r.checks); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ArrayRule[T]) Dump(value []T) (any, error) {
	out := make([]any, 0, len(value))
	for i, item := range value {
		v, err := r.item.Dump(item)
		if err != nil {
			if err = r.invalid(i, err); err != nil {
				return nil, err
			}
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *ArrayRule[T]) invalid(index int, err error) error {
	if r.onInvalid == nil {
		return &ItemError{Index: index, Err: err}
	}
	return r.onInvalid(index, err)
}

// Schema implements [Schemer].
func (r *ArrayRule[T]) Schema() *openapi3.Schema {
	return describedSchema(openapi3.NewArraySchema().WithItems(SchemaOf(r.item)), r.checks)
}

// asArray returns value as a slice of elements when it is array-shaped.
// Typed Go slices are accepted so dumped values can be validated again.
// Nil slices are not arrays.
func asArray(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, items != nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
