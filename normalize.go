package jsonrule

// Normalizer is implemented by types that tidy themselves after decoding.
// An [ObjectRule] calls Normalize on its *T once every field has decoded,
// before functions given to [ObjectRule.Normalize] and before field checks.
// Nested objects are normalized by their own rules, depth first.
type Normalizer interface {
	Normalize()
}

func normalize[T any](out *T, fns []func(any)) {
	if n, ok := any(out).(Normalizer); ok {
		n.Normalize()
	}
	for _, fn := range fns {
		fn(out)
	}
}
