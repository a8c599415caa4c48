package jsonrule

import (
	"context"

	"github.com/Gobd/jsonrule/batch"
	"github.com/getkin/kin-openapi/openapi3"
)

// ConcurrentArrayRule validates and dumps the items of a JSON array in
// parallel, one goroutine per item unless a limit is configured.
//
// Failing items are handled by the [batch.OnFailure] handler given at
// construction. Without one, failing items are silently left out, so the
// result can be shorter than the input. A handler that returns an error
// fails the whole call with exactly that error; when several items escalate,
// the first escalation to complete is returned. Every item always runs to
// completion. Successful values keep their input order.
//
// The item rule is called from many goroutines at once and must be safe for
// concurrent use.
type ConcurrentArrayRule[T any] struct {
	item   Rule[T]
	runner *batch.Runner
	checks []Check
}

// ConcurrentArray returns a rule for arrays whose items satisfy item,
// processed in parallel according to opts.
//
//	rule := jsonrule.ConcurrentArray(userRule,
//	    batch.OnFailure(func(i int, err error) error {
//	        return fmt.Errorf("user %d: %w", i, err)
//	    }),
//	    batch.WithLimit(16),
//	)
func ConcurrentArray[T any](item Rule[T], opts ...batch.Option) *ConcurrentArrayRule[T] {
	return &ConcurrentArrayRule[T]{
		item:   item,
		runner: batch.New(opts...),
	}
}

// Checks returns a copy of r that applies checks to the assembled slice.
func (r *ConcurrentArrayRule[T]) Checks(checks ...Check) *ConcurrentArrayRule[T] {
	cp := *r
	cp.checks = append(append([]Check(nil), r.checks...), checks...)
	return &cp
}

// Validate is ValidateContext with a background context.
func (r *ConcurrentArrayRule[T]) Validate(value any) ([]T, error) {
	return r.ValidateContext(context.Background(), value)
}

// ValidateContext converts a JSON array into []T. A value that is not an
// array fails before any item is started.
func (r *ConcurrentArrayRule[T]) ValidateContext(ctx context.Context, value any) ([]T, error) {
	items, ok := asArray(value)
	if !ok {
		return nil, typeError(value, "array")
	}
	out, err := batch.RunContext(ctx, r.runner, items, func(_ int, item any) (T, error) {
		return r.item.Validate(item)
	})
	if err != nil {
		return nil, err
	}
	if err := validateChecks(out, r.checks); err != nil {
		return nil, err
	}
	return out, nil
}

// Dump is DumpContext with a background context.
func (r *ConcurrentArrayRule[T]) Dump(value []T) (any, error) {
	return r.DumpContext(context.Background(), value)
}

// DumpContext converts value into a JSON array ([]any).
func (r *ConcurrentArrayRule[T]) DumpContext(ctx context.Context, value []T) (any, error) {
	out, err := batch.RunContext(ctx, r.runner, value, func(_ int, item T) (any, error) {
		return r.item.Dump(item)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Schema implements [Schemer].
func (r *ConcurrentArrayRule[T]) Schema() *openapi3.Schema {
	return describedSchema(openapi3.NewArraySchema().WithItems(SchemaOf(r.item)), r.checks)
}
