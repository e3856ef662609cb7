package bisect

import "cmp"

// Less reports whether a is ordered strictly before b. It must be a
// strict weak ordering (irreflexive, transitive, consistent) and must
// agree with the order of the searched sequence.
type Less[T any] func(a, b T) bool

// Op identifies a search operation for logging and metrics.
type Op string

// The closed set of search operations.
const (
	OpLowerBound Op = "lower_bound"
	OpUpperBound Op = "upper_bound"
	OpContains   Op = "contains"
	OpEqualRange Op = "equal_range"
)

// Range is the half-open span [Start, End) of positions holding
// elements equivalent to a query value.
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements in the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range holds no elements.
func (r Range) Empty() bool { return r.Start >= r.End }

// LowerBound returns the smallest index i in data such that data[i] is
// not ordered before value, or len(data) if every element is. data
// must be sorted ascending. With duplicates present, this is the first
// position of the run equivalent to value.
func LowerBound[T cmp.Ordered](data []T, value T) int {
	return LowerBoundFunc(data, value, cmp.Less[T])
}

// LowerBoundFunc is LowerBound under an explicit ordering.
func LowerBoundFunc[T any](data []T, value T, less Less[T]) int {
	return dispatchScalar(data, value, less, positionBuffers, lowerBoundOp[T])
}

// UpperBound returns the smallest index i in data such that value is
// ordered before data[i], or len(data) if no element is. data must be
// sorted ascending. With duplicates present, this is one past the last
// position of the run equivalent to value, so
// UpperBound(v) - LowerBound(v) counts the occurrences of v.
func UpperBound[T cmp.Ordered](data []T, value T) int {
	return UpperBoundFunc(data, value, cmp.Less[T])
}

// UpperBoundFunc is UpperBound under an explicit ordering.
func UpperBoundFunc[T any](data []T, value T, less Less[T]) int {
	return dispatchScalar(data, value, less, positionBuffers, upperBoundOp[T])
}

// Contains reports whether data holds an element equivalent to value
// under the ordering. data must be sorted ascending.
func Contains[T cmp.Ordered](data []T, value T) bool {
	return ContainsFunc(data, value, cmp.Less[T])
}

// ContainsFunc is Contains under an explicit ordering.
func ContainsFunc[T any](data []T, value T, less Less[T]) bool {
	return dispatchScalar(data, value, less, foundBuffers, containsOp[T])
}

// EqualRange returns the span of positions holding elements equivalent
// to value. It composes two independent searches; the lower and upper
// bound are each found from scratch.
func EqualRange[T cmp.Ordered](data []T, value T) Range {
	return EqualRangeFunc(data, value, cmp.Less[T])
}

// EqualRangeFunc is EqualRange under an explicit ordering.
func EqualRangeFunc[T any](data []T, value T, less Less[T]) Range {
	return Range{
		Start: LowerBoundFunc(data, value, less),
		End:   UpperBoundFunc(data, value, less),
	}
}
