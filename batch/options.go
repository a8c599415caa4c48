package batch

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const defaultName = "jsonrule.batch"

// FailureHandler decides what happens to an item whose operation failed.
// Returning nil swallows the failure; returning an error escalates it.
// Calls are serialized within a single run, but a handler shared between
// concurrent runs must be safe for concurrent use.
type FailureHandler func(index int, err error) error

// Option configures a [Runner].
type Option func(*Runner)

// OnFailure installs the handler consulted for every failing item.
func OnFailure(h FailureHandler) Option {
	return func(r *Runner) {
		r.onFailure = h
	}
}

// WithLimit caps the number of items processed at the same time.
// Zero or a negative value means no cap.
func WithLimit(n int) Option {
	return func(r *Runner) {
		if n <= 0 {
			n = -1
		}
		r.limit = n
	}
}

// WithLogger sets the logger used for per-item outcomes. Nil restores the
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l == nil {
			l = zap.NewNop()
		}
		r.logger = l
	}
}

// WithTracerProvider sets where run spans are sent. Defaults to the global
// provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Runner) {
		r.tp = tp
	}
}

// WithName sets the span name and the logger name of a runner.
func WithName(name string) Option {
	return func(r *Runner) {
		if name != "" {
			r.name = name
		}
	}
}

func (r *Runner) tracer() trace.Tracer {
	tp := r.tp
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer("github.com/Gobd/jsonrule/batch")
}
