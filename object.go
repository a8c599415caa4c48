package jsonrule

import (
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ObjectField binds one key of a JSON object to a field of T.
// Create one with [Expect] or [Optional].
type ObjectField[T any] struct {
	name     string
	required bool
	decode   func(raw any, dst *T) error
	check    func(dst *T) error
	encode   func(src *T) (any, bool, error)
	schema   func() *openapi3.Schema
}

// Expect binds a key that must be present. at returns the field of T that
// receives the decoded value; checks run on the field after decoding.
//
//	jsonrule.Expect("name", jsonrule.String(), func(u *User) *string { return &u.Name })
func Expect[T, F any](name string, rule Rule[F], at func(*T) *F, checks ...Check) ObjectField[T] {
	return bindField(name, true, rule, at, checks)
}

// Optional binds a key that may be absent or null; the field then keeps its
// zero value. Dump leaves out nil pointers, slices and maps.
func Optional[T, F any](name string, rule Rule[F], at func(*T) *F, checks ...Check) ObjectField[T] {
	return bindField(name, false, rule, at, checks)
}

func bindField[T, F any](name string, required bool, rule Rule[F], at func(*T) *F, checks []Check) ObjectField[T] {
	return ObjectField[T]{
		name:     name,
		required: required,
		decode: func(raw any, dst *T) error {
			v, err := rule.Validate(raw)
			if err != nil {
				return err
			}
			*at(dst) = v
			return nil
		},
		check: func(dst *T) error {
			return validateChecks(*at(dst), checks)
		},
		encode: func(src *T) (any, bool, error) {
			v := *at(src)
			if !required {
				if _, isNil := validation.Indirect(v); isNil {
					return nil, false, nil
				}
			}
			out, err := rule.Dump(v)
			return out, true, err
		},
		schema: func() *openapi3.Schema {
			s := *SchemaOf(rule)
			return describedSchema(&s, checks)
		},
	}
}

// ObjectRule converts JSON objects into values of T field by field.
type ObjectRule[T any] struct {
	fields    []ObjectField[T]
	normalize []func(any)
	strict    bool
}

// Object returns a rule built from field bindings. Keys not bound by any
// field are ignored unless [ObjectRule.Strict] is set.
func Object[T any](fields ...ObjectField[T]) *ObjectRule[T] {
	return &ObjectRule[T]{fields: fields}
}

// Normalize returns a copy of r that calls fns with a *T after every field
// has decoded and before field checks run. Functions from the transform
// package fit here. See also [Normalizer].
func (r *ObjectRule[T]) Normalize(fns ...func(any)) *ObjectRule[T] {
	cp := *r
	cp.normalize = slices.Concat(r.normalize, fns)
	return &cp
}

// Strict returns a copy of r that rejects keys no field binds.
func (r *ObjectRule[T]) Strict() *ObjectRule[T] {
	cp := *r
	cp.strict = true
	return &cp
}

// Validate decodes every field, runs normalizers, then checks every field
// that decoded. Absent or null optional fields are not checked. All failing keys are reported together as a
// [ValidationErrors].
func (r *ObjectRule[T]) Validate(value any) (T, error) {
	var out, zero T
	obj, ok := asObject(value)
	if !ok {
		return zero, typeError(value, "object")
	}

	errs := ValidationErrors{}
	if r.strict {
		for key := range obj {
			if !r.binds(key) {
				errs[key] = ErrUnknownKey
			}
		}
	}
	decoded := make([]bool, len(r.fields))
	for i, f := range r.fields {
		raw, present := obj[f.name]
		if !present || (raw == nil && !f.required) {
			if f.required {
				errs[f.name] = ErrMissing
			}
			continue
		}
		if err := f.decode(raw, &out); err != nil {
			errs[f.name] = err
			continue
		}
		decoded[i] = true
	}

	normalize(&out, r.normalize)
	for i, f := range r.fields {
		if !decoded[i] {
			continue
		}
		if err := f.check(&out); err != nil {
			errs[f.name] = err
		}
	}
	if err := errs.Filter(); err != nil {
		return zero, err
	}
	return out, nil
}

func (r *ObjectRule[T]) Dump(value T) (any, error) {
	out := make(map[string]any, len(r.fields))
	errs := ValidationErrors{}
	for _, f := range r.fields {
		v, ok, err := f.encode(&value)
		switch {
		case err != nil:
			errs[f.name] = err
		case ok:
			out[f.name] = v
		}
	}
	if err := errs.Filter(); err != nil {
		return nil, err
	}
	return out, nil
}

// Schema implements [Schemer].
func (r *ObjectRule[T]) Schema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for _, f := range r.fields {
		schema.WithProperty(f.name, f.schema())
		if f.required {
			schema.Required = append(schema.Required, f.name)
		}
	}
	if r.strict {
		schema.WithoutAdditionalProperties()
	}
	return schema
}

func (r *ObjectRule[T]) binds(key string) bool {
	return slices.ContainsFunc(r.fields, func(f ObjectField[T]) bool { return f.name == key })
}
