package bisect

import (
	"context"

	"github.com/hupe1980/bisect/executor"
	"github.com/hupe1980/bisect/internal/buffer"
	"github.com/hupe1980/bisect/internal/scalar"
)

// searchFunc computes the result for a single query against the full
// sorted sequence. The three variants below are the complete set; all
// public operations reduce to them.
type searchFunc[T, R any] func(data []T, value T, less Less[T]) R

func lowerBoundOp[T any](data []T, value T, less Less[T]) int {
	return scalar.LowerBound(data, value, less)
}

func upperBoundOp[T any](data []T, value T, less Less[T]) int {
	return scalar.UpperBound(data, value, less)
}

// containsOp tests equivalence under the ordering, not value equality:
// the element at the lower bound must not be ordered after the query.
func containsOp[T any](data []T, value T, less Less[T]) bool {
	i := scalar.LowerBound(data, value, less)
	return i < len(data) && !less(value, data[i])
}

// Pooled scratch buffers for the scalar bridge and the equal-range
// composition. One pool per result type.
var (
	positionBuffers = buffer.NewPool[int]()
	foundBuffers    = buffer.NewPool[bool]()
)

// dispatchBatch applies fn to every query via the executor, writing
// out[i] for values[i]. out must have at least len(values) entries;
// this is a caller precondition and is not checked.
func dispatchBatch[T, R any](ctx context.Context, exec executor.Executor, data, values []T, out []R, less Less[T], fn searchFunc[T, R]) error {
	if len(values) == 0 {
		return nil
	}
	return exec.ForEach(ctx, len(values), func(i int) {
		out[i] = fn(data, values[i], less)
	})
}

// dispatchScalar runs a single query as a length-1 batch so the scalar
// and batch paths share one implementation. The query lives on the
// stack; the output slot is pooled and released on every exit path.
func dispatchScalar[T, R any](data []T, value T, less Less[T], pool *buffer.Pool[R], fn searchFunc[T, R]) R {
	values := [1]T{value}

	out := pool.Acquire(1)
	defer pool.Release(out)

	// Sequential never fails on a live context.
	_ = dispatchBatch(context.Background(), executor.Sequential{}, data, values[:], out, less, fn)

	return out[0]
}
