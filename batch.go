package bisect

import (
	"cmp"
	"context"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bisect/executor"
)

// LowerBoundBatch computes the lower bound of every value in values
// against data, writing out[i] for values[i]. out must have at least
// len(values) entries; data must be sorted ascending. Queries are
// independent, so any configured executor may run them in any order or
// concurrently.
//
// A zero-length values slice is a no-op. The returned error is nil
// unless the executor was interrupted (context cancellation, pool
// shutdown); on error the output is not fully written.
func LowerBoundBatch[T cmp.Ordered](ctx context.Context, data, values []T, out []int, optFns ...Option) error {
	return LowerBoundBatchFunc(ctx, data, values, out, cmp.Less[T], optFns...)
}

// LowerBoundBatchFunc is LowerBoundBatch under an explicit ordering.
func LowerBoundBatchFunc[T any](ctx context.Context, data, values []T, out []int, less Less[T], optFns ...Option) error {
	o := applyOptions(optFns)

	start := time.Now()
	err := dispatchBatch(ctx, o.Executor, data, values, out, less, lowerBoundOp[T])

	o.MetricsCollector.RecordBatch(OpLowerBound, len(values), time.Since(start), err)
	o.Logger.LogBatch(ctx, OpLowerBound, len(values), err)

	return err
}

// UpperBoundBatch computes the upper bound of every value in values
// against data, writing out[i] for values[i]. See LowerBoundBatch for
// the batch contract.
func UpperBoundBatch[T cmp.Ordered](ctx context.Context, data, values []T, out []int, optFns ...Option) error {
	return UpperBoundBatchFunc(ctx, data, values, out, cmp.Less[T], optFns...)
}

// UpperBoundBatchFunc is UpperBoundBatch under an explicit ordering.
func UpperBoundBatchFunc[T any](ctx context.Context, data, values []T, out []int, less Less[T], optFns ...Option) error {
	o := applyOptions(optFns)

	start := time.Now()
	err := dispatchBatch(ctx, o.Executor, data, values, out, less, upperBoundOp[T])

	o.MetricsCollector.RecordBatch(OpUpperBound, len(values), time.Since(start), err)
	o.Logger.LogBatch(ctx, OpUpperBound, len(values), err)

	return err
}

// ContainsBatch tests membership of every value in values against
// data, writing out[i] for values[i]. See LowerBoundBatch for the
// batch contract.
func ContainsBatch[T cmp.Ordered](ctx context.Context, data, values []T, out []bool, optFns ...Option) error {
	return ContainsBatchFunc(ctx, data, values, out, cmp.Less[T], optFns...)
}

// ContainsBatchFunc is ContainsBatch under an explicit ordering.
func ContainsBatchFunc[T any](ctx context.Context, data, values []T, out []bool, less Less[T], optFns ...Option) error {
	o := applyOptions(optFns)

	start := time.Now()
	err := dispatchBatch(ctx, o.Executor, data, values, out, less, containsOp[T])

	o.MetricsCollector.RecordBatch(OpContains, len(values), time.Since(start), err)
	o.Logger.LogBatch(ctx, OpContains, len(values), err)

	return err
}

// EqualRangeBatch computes the equal range of every value in values
// against data, writing out[i] for values[i]. Each range is the
// composition of an independent lower- and upper-bound pass over the
// whole batch. See LowerBoundBatch for the batch contract.
func EqualRangeBatch[T cmp.Ordered](ctx context.Context, data, values []T, out []Range, optFns ...Option) error {
	return EqualRangeBatchFunc(ctx, data, values, out, cmp.Less[T], optFns...)
}

// EqualRangeBatchFunc is EqualRangeBatch under an explicit ordering.
func EqualRangeBatchFunc[T any](ctx context.Context, data, values []T, out []Range, less Less[T], optFns ...Option) error {
	o := applyOptions(optFns)

	start := time.Now()
	err := equalRangeBatch(ctx, o.Executor, data, values, out, less)

	o.MetricsCollector.RecordBatch(OpEqualRange, len(values), time.Since(start), err)
	o.Logger.LogBatch(ctx, OpEqualRange, len(values), err)

	return err
}

// equalRangeBatch runs the two bound passes into pooled scratch
// buffers and zips them into out.
func equalRangeBatch[T any](ctx context.Context, exec executor.Executor, data, values []T, out []Range, less Less[T]) error {
	if len(values) == 0 {
		return nil
	}

	lo := positionBuffers.Acquire(len(values))
	defer positionBuffers.Release(lo)

	hi := positionBuffers.Acquire(len(values))
	defer positionBuffers.Release(hi)

	if err := dispatchBatch(ctx, exec, data, values, lo, less, lowerBoundOp[T]); err != nil {
		return err
	}
	if err := dispatchBatch(ctx, exec, data, values, hi, less, upperBoundOp[T]); err != nil {
		return err
	}

	for i := range values {
		out[i] = Range{Start: lo[i], End: hi[i]}
	}

	return nil
}

// ContainsSet tests membership of every value in values against data
// and packs the results into a bit set, one bit per query index. For
// large batches this is 8x denser than a []bool and composes directly
// with set operations on the result.
func ContainsSet[T cmp.Ordered](ctx context.Context, data, values []T, optFns ...Option) (*bitset.BitSet, error) {
	return ContainsSetFunc(ctx, data, values, cmp.Less[T], optFns...)
}

// ContainsSetFunc is ContainsSet under an explicit ordering.
func ContainsSetFunc[T any](ctx context.Context, data, values []T, less Less[T], optFns ...Option) (*bitset.BitSet, error) {
	o := applyOptions(optFns)

	found := foundBuffers.Acquire(len(values))
	defer foundBuffers.Release(found)

	start := time.Now()
	err := dispatchBatch(ctx, o.Executor, data, values, found, less, containsOp[T])

	o.MetricsCollector.RecordBatch(OpContains, len(values), time.Since(start), err)
	o.Logger.LogBatch(ctx, OpContains, len(values), err)

	if err != nil {
		return nil, err
	}

	// Bit sets are not safe for concurrent writes, so packing stays
	// on the calling goroutine.
	set := bitset.New(uint(len(values)))
	for i, ok := range found {
		if ok {
			set.Set(uint(i))
		}
	}

	return set, nil
}
