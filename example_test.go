package bisect_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/bisect"
	"github.com/hupe1980/bisect/executor"
)

func ExampleLowerBound() {
	data := []int{1, 3, 3, 3, 5, 7}

	fmt.Println(bisect.LowerBound(data, 3))
	fmt.Println(bisect.UpperBound(data, 3))
	// Output:
	// 1
	// 4
}

func ExampleEqualRange() {
	data := []int{1, 3, 3, 3, 5, 7}

	r := bisect.EqualRange(data, 3)
	fmt.Println(r.Start, r.End, r.Len())
	// Output:
	// 1 4 3
}

func ExampleLowerBoundBatch() {
	ctx := context.Background()
	data := []int{1, 3, 3, 3, 5, 7}

	queries := []int{0, 3, 8}
	out := make([]int, len(queries))
	if err := bisect.LowerBoundBatch(ctx, data, queries, out); err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output:
	// [0 1 6]
}

func ExampleContainsBatch() {
	ctx := context.Background()
	data := []int{1, 3, 3, 3, 5, 7}

	queries := []int{0, 3, 8}
	found := make([]bool, len(queries))
	if err := bisect.ContainsBatch(ctx, data, queries, found, bisect.WithParallel()); err != nil {
		panic(err)
	}

	fmt.Println(found)
	// Output:
	// [false true false]
}

func ExampleWithExecutor() {
	ctx := context.Background()
	data := []int{1, 3, 3, 3, 5, 7}

	pool := executor.NewPool(4)
	defer pool.Close()

	queries := []int{2, 5}
	out := make([]int, len(queries))
	if err := bisect.UpperBoundBatch(ctx, data, queries, out, bisect.WithExecutor(pool)); err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output:
	// [1 5]
}

func ExampleLowerBoundFunc() {
	byLen := func(a, b string) bool { return len(a) < len(b) }
	words := []string{"a", "go", "tea", "four", "seven"}

	fmt.Println(bisect.LowerBoundFunc(words, "tip", byLen))
	// Output:
	// 2
}
