package transform

import (
	"reflect"
	"strings"
)

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct
// recursively, including nested structs, pointer fields, slices and map values.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructToLower runs [strings.ToLower] on all string fields in the struct recursively.
func StructToLower(v any) {
	StructStringFunc(v, strings.ToLower)
}

// StructStringFunc applies f to every string field of the struct v points to.
// Interface fields are left alone.
func StructStringFunc(v any, f func(string) string) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rewrite(rv.Elem(), f)
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

// rewrite applies f to every settable string reachable from v.
func rewrite(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(f(v.String()))
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if field := v.Field(i); field.CanSet() {
				rewrite(field, f)
			}
		}
	case reflect.Pointer:
		if !v.IsNil() {
			rewrite(v.Elem(), f)
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			rewrite(v.Index(i), f)
		}
	case reflect.Map:
		// Map values aren't addressable; copy, rewrite, put back.
		iter := v.MapRange()
		for iter.Next() {
			val := iter.Value()
			if val.Kind() == reflect.Pointer {
				rewrite(val, f)
				continue
			}
			if val.Kind() != reflect.String && val.Kind() != reflect.Struct {
				continue
			}
			cp := reflect.New(val.Type()).Elem()
			cp.Set(val)
			rewrite(cp, f)
			v.SetMapIndex(iter.Key(), cp)
		}
	}
}

// TrimSpace returns a copy of the raw JSON value v with every string trimmed.
func TrimSpace(v any) any {
	return StringFunc(v, strings.TrimSpace)
}

// ToLower returns a copy of the raw JSON value v with every string lowercased.
func ToLower(v any) any {
	return StringFunc(v, strings.ToLower)
}

// StringFunc returns a copy of the raw JSON value v (as produced by
// encoding/json) with f applied to every string. Object keys are kept as is.
// The input is not modified.
func StringFunc(v any, f func(string) string) any {
	switch t := v.(type) {
	case string:
		return f(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = StringFunc(item, f)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = StringFunc(item, f)
		}
		return out
	}
	return v
}
