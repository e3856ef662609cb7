// Package bisect provides batched positional search over sorted
// sequences.
//
// Given a slice sorted ascending and one or more query values, bisect
// computes for each query the order-preserving insertion position
// (lower or upper bound), whether the value is present, or the span of
// equivalent elements. Every query is an independent pure computation,
// so a batch can run sequentially, on a goroutine fan-out, or on a
// shared worker pool without changing results.
//
// # Quick Start
//
// Scalar searches on naturally ordered types:
//
//	data := []int{1, 3, 3, 3, 5, 7}
//	bisect.LowerBound(data, 3)   // 1
//	bisect.UpperBound(data, 3)   // 4
//	bisect.Contains(data, 4)     // false
//	bisect.EqualRange(data, 3)   // {Start: 1, End: 4}
//
// Batched searches write one result per query into a caller-supplied
// output slice:
//
//	queries := []int{0, 3, 8}
//	out := make([]int, len(queries))
//	_ = bisect.LowerBoundBatch(ctx, data, queries, out)  // [0 1 6]
//
// # Execution Engines
//
// Batch calls default to a sequential loop. Large batches can fan out
// with a per-call engine:
//
//	_ = bisect.LowerBoundBatch(ctx, data, queries, out,
//	    bisect.WithParallel())
//
// or share a long-lived worker pool across calls:
//
//	pool := executor.NewPool(8)
//	defer pool.Close()
//	_ = bisect.ContainsBatch(ctx, data, queries, found,
//	    bisect.WithExecutor(pool))
//
// # Orderings
//
// Every operation has a Func variant taking an explicit strict weak
// ordering, for element types without a natural order or sequences
// sorted by a custom key:
//
//	byLen := func(a, b string) bool { return len(a) < len(b) }
//	bisect.LowerBoundFunc(words, "four", byLen)
//
// # Preconditions
//
// The input must be sorted ascending under the ordering in use, the
// ordering must be a strict weak ordering, and batch output slices
// must be at least as long as the query slice. None of these are
// checked at runtime; violating them yields unspecified results.
package bisect
