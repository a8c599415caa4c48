package batch

import (
	"context"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Op transforms the item at index. It is called once per item, possibly from
// many goroutines at the same time.
type Op[In, Out any] func(index int, in In) (Out, error)

// Runner holds the policy shared by every run: failure handler, concurrency
// cap, logger and tracer. A Runner is immutable once built and may be used by
// any number of concurrent runs.
type Runner struct {
	onFailure FailureHandler
	limit     int
	logger    *zap.Logger
	tp        trace.TracerProvider
	name      string
}

// New builds a Runner. Without options failures are swallowed and every item
// gets its own goroutine.
func New(opts ...Option) *Runner {
	r := &Runner{
		limit:  -1,
		logger: zap.NewNop(),
		name:   defaultName,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(zap.String("runner", r.name))
	return r
}

// Run applies op to every item and returns the successful values in input
// order. See [RunContext].
func Run[In, Out any](r *Runner, items []In, op Op[In, Out]) ([]Out, error) {
	return RunContext(context.Background(), r, items, op)
}

// RunContext applies op to every item and returns the successful values in
// input order, or the first escalated error. Swallowed items are omitted, so
// the result may be shorter than items.
//
// ctx parents the run's span and gates enqueuing: once ctx is done no new
// item is started, already running items finish, and ctx.Err() is returned
// unless an escalation was recorded first. A nil r behaves like New().
func RunContext[In, Out any](ctx context.Context, r *Runner, items []In, op Op[In, Out]) ([]Out, error) {
	if r == nil {
		r = New()
	}
	n := len(items)
	if n == 0 {
		return []Out{}, nil
	}

	_, span := r.tracer().Start(ctx, r.name, trace.WithAttributes(
		attribute.Int("batch.items", n),
		attribute.Int("batch.limit", r.limit),
	))
	defer span.End()

	var (
		g         errgroup.Group
		handlerMu sync.Mutex
		values    = make([]Out, n)
		ok        = make([]bool, n)
		succeeded atomic.Int64
		swallowed atomic.Int64
		stopErr   error
	)
	g.SetLimit(r.limit)

	for i := range items {
		if err := ctx.Err(); err != nil {
			stopErr = err
			break
		}
		g.Go(func() error {
			v, err := op(i, items[i])
			if err == nil {
				// Each goroutine owns slot i; Wait publishes the writes.
				values[i] = v
				ok[i] = true
				succeeded.Add(1)
				return nil
			}
			if esc := r.fail(&handlerMu, i, err); esc != nil {
				return esc
			}
			swallowed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = stopErr
	}
	span.SetAttributes(
		attribute.Int64("batch.succeeded", succeeded.Load()),
		attribute.Int64("batch.swallowed", swallowed.Load()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]Out, 0, succeeded.Load())
	for i, done := range ok {
		if done {
			out = append(out, values[i])
		}
	}
	return out, nil
}

// fail routes an item failure through the handler. It returns the escalated
// error, or nil when the failure was swallowed.
func (r *Runner) fail(mu *sync.Mutex, index int, err error) error {
	if r.onFailure == nil {
		r.logger.Debug("item swallowed", zap.Int("index", index), zap.Error(err))
		return nil
	}

	esc := func() error {
		mu.Lock()
		defer mu.Unlock()
		return r.onFailure(index, err)
	}()
	if esc != nil {
		r.logger.Debug("item escalated",
			zap.Int("index", index),
			zap.NamedError("cause", err),
			zap.Error(esc),
		)
		return esc
	}
	r.logger.Debug("item swallowed", zap.Int("index", index), zap.Error(err))
	return nil
}
