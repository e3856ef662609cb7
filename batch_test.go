package bisect

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bisect/executor"
)

func TestBatchSearch(t *testing.T) {
	ctx := context.Background()
	data := []int{1, 3, 3, 3, 5, 7}

	t.Run("LowerBound", func(t *testing.T) {
		queries := []int{0, 3, 8}
		out := make([]int, len(queries))

		err := LowerBoundBatch(ctx, data, queries, out)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 6}, out)
	})

	t.Run("UpperBound", func(t *testing.T) {
		queries := []int{0, 3, 8}
		out := make([]int, len(queries))

		err := UpperBoundBatch(ctx, data, queries, out)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 4, 6}, out)
	})

	t.Run("Contains", func(t *testing.T) {
		queries := []int{0, 3, 8}
		out := make([]bool, len(queries))

		err := ContainsBatch(ctx, data, queries, out)
		require.NoError(t, err)
		assert.Equal(t, []bool{false, true, false}, out)
	})

	t.Run("EqualRange", func(t *testing.T) {
		queries := []int{0, 3, 8}
		out := make([]Range, len(queries))

		err := EqualRangeBatch(ctx, data, queries, out)
		require.NoError(t, err)
		assert.Equal(t, []Range{
			{Start: 0, End: 0},
			{Start: 1, End: 4},
			{Start: 6, End: 6},
		}, out)
	})

	t.Run("ZeroLengthBatch", func(t *testing.T) {
		out := []int{-1, -1}

		err := LowerBoundBatch(ctx, data, nil, out)
		require.NoError(t, err)
		assert.Equal(t, []int{-1, -1}, out, "zero-length batch must not touch the output")
	})

	t.Run("EmptySequence", func(t *testing.T) {
		queries := []int{1, 2, 3}
		out := make([]int, len(queries))

		err := UpperBoundBatch(ctx, nil, queries, out)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0}, out)
	})

	t.Run("DescendingFunc", func(t *testing.T) {
		desc := []int{7, 5, 3, 3, 3, 1}
		greater := func(a, b int) bool { return a > b }
		queries := []int{8, 3, 0}
		out := make([]int, len(queries))

		err := LowerBoundBatchFunc(ctx, desc, queries, out, greater)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 6}, out)
	})
}

func TestBatchOrderPreservation(t *testing.T) {
	ctx := context.Background()

	rng := rand.New(rand.NewSource(1))
	data := make([]int, 1000)
	for i := range data {
		data[i] = rng.Intn(500)
	}
	sort.Ints(data)

	queries := make([]int, 5000)
	for i := range queries {
		queries[i] = rng.Intn(600) - 50
	}

	engines := map[string]executor.Executor{
		"sequential": executor.Sequential{},
		"parallel":   executor.Parallel{MinPerWorker: 1},
	}

	for name, exec := range engines {
		t.Run(name, func(t *testing.T) {
			out := make([]int, len(queries))
			err := LowerBoundBatch(ctx, data, queries, out, WithExecutor(exec))
			require.NoError(t, err)

			for i, q := range queries {
				require.Equal(t, LowerBound(data, q), out[i], "query %d", i)
			}
		})
	}
}

func TestScalarBatchAgreement(t *testing.T) {
	ctx := context.Background()
	data := []int{1, 3, 3, 3, 5, 7}

	for v := -1; v <= 9; v++ {
		lower := make([]int, 1)
		upper := make([]int, 1)
		found := make([]bool, 1)
		ranges := make([]Range, 1)

		require.NoError(t, LowerBoundBatch(ctx, data, []int{v}, lower))
		require.NoError(t, UpperBoundBatch(ctx, data, []int{v}, upper))
		require.NoError(t, ContainsBatch(ctx, data, []int{v}, found))
		require.NoError(t, EqualRangeBatch(ctx, data, []int{v}, ranges))

		assert.Equal(t, LowerBound(data, v), lower[0])
		assert.Equal(t, UpperBound(data, v), upper[0])
		assert.Equal(t, Contains(data, v), found[0])
		assert.Equal(t, EqualRange(data, v), ranges[0])
	}
}

func TestContainsSet(t *testing.T) {
	ctx := context.Background()
	data := []int{1, 3, 3, 3, 5, 7}

	t.Run("PacksMembership", func(t *testing.T) {
		queries := []int{0, 3, 8, 5, 2, 7}

		set, err := ContainsSet(ctx, data, queries)
		require.NoError(t, err)

		assert.False(t, set.Test(0))
		assert.True(t, set.Test(1))
		assert.False(t, set.Test(2))
		assert.True(t, set.Test(3))
		assert.False(t, set.Test(4))
		assert.True(t, set.Test(5))
		assert.Equal(t, uint(3), set.Count())
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		set, err := ContainsSet(ctx, data, nil)
		require.NoError(t, err)
		assert.Equal(t, uint(0), set.Count())
	})

	t.Run("Canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		set, err := ContainsSet(canceled, data, []int{1, 2, 3})
		require.Error(t, err)
		assert.Nil(t, set)
	})
}

func TestBatchCancellation(t *testing.T) {
	data := []int{1, 3, 3, 3, 5, 7}
	queries := []int{0, 3, 8}
	out := make([]int, len(queries))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := LowerBoundBatch(ctx, data, queries, out)
	require.ErrorIs(t, err, context.Canceled)

	err = EqualRangeBatch(ctx, data, queries, make([]Range, len(queries)))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBatchMetrics(t *testing.T) {
	ctx := context.Background()
	data := []int{1, 3, 3, 3, 5, 7}
	queries := []int{0, 3, 8}

	metrics := &BasicMetricsCollector{}

	require.NoError(t, LowerBoundBatch(ctx, data, queries, make([]int, 3), WithMetricsCollector(metrics)))
	require.NoError(t, UpperBoundBatch(ctx, data, queries, make([]int, 3), WithMetricsCollector(metrics)))
	require.NoError(t, ContainsBatch(ctx, data, queries, make([]bool, 3), WithMetricsCollector(metrics)))
	require.NoError(t, EqualRangeBatch(ctx, data, queries, make([]Range, 3), WithMetricsCollector(metrics)))

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.LowerBoundBatches)
	assert.Equal(t, int64(1), stats.UpperBoundBatches)
	assert.Equal(t, int64(1), stats.ContainsBatches)
	assert.Equal(t, int64(1), stats.EqualRangeBatches)
	assert.Equal(t, int64(12), stats.QueryCount)
	assert.Equal(t, int64(0), stats.ErrorCount)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, LowerBoundBatch(canceled, data, queries, make([]int, 3), WithMetricsCollector(metrics)))

	assert.Equal(t, int64(1), metrics.GetStats().ErrorCount)
}

func TestBatchWithPool(t *testing.T) {
	ctx := context.Background()

	pool := executor.NewPool(4)
	defer pool.Close()

	rng := rand.New(rand.NewSource(2))
	data := make([]int, 512)
	for i := range data {
		data[i] = rng.Intn(256)
	}
	sort.Ints(data)

	queries := make([]int, 2000)
	for i := range queries {
		queries[i] = rng.Intn(300) - 20
	}

	out := make([]int, len(queries))
	require.NoError(t, UpperBoundBatch(ctx, data, queries, out, WithExecutor(pool)))

	for i, q := range queries {
		require.Equal(t, UpperBound(data, q), out[i], "query %d", i)
	}
}
