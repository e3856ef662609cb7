package bisect

import "github.com/hupe1980/bisect/executor"

// Options configure a single batch call.
type Options struct {
	// Executor runs the per-query work. Defaults to
	// executor.Sequential, which is the right choice for small
	// batches; switch to executor.Parallel or a shared executor.Pool
	// for large ones.
	Executor executor.Executor

	// Logger receives structured logs for the call. Defaults to a
	// no-op logger.
	Logger *Logger

	// MetricsCollector records operation metrics for the call.
	// Defaults to a no-op collector.
	MetricsCollector MetricsCollector
}

// Option mutates the per-call Options.
type Option func(*Options)

// WithExecutor selects the execution engine for a batch call.
// Passing nil keeps the sequential default.
func WithExecutor(exec executor.Executor) Option {
	return func(o *Options) {
		if exec != nil {
			o.Executor = exec
		}
	}
}

// WithParallel is shorthand for WithExecutor(executor.Parallel{}):
// fan the batch out across GOMAXPROCS goroutines with default grain.
func WithParallel() Option {
	return WithExecutor(executor.Parallel{})
}

// WithLogger configures structured logging for a batch call.
// Passing nil keeps logging disabled.
func WithLogger(logger *Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithMetricsCollector configures a metrics collector for a batch
// call. Passing nil keeps metrics disabled.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bisect.BasicMetricsCollector{}
//	_ = bisect.LowerBoundBatch(ctx, data, queries, out,
//	    bisect.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *Options) {
		if mc != nil {
			o.MetricsCollector = mc
		}
	}
}

func applyOptions(optFns []Option) Options {
	o := Options{
		Executor:         executor.Sequential{},
		Logger:           NoopLogger(),
		MetricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
