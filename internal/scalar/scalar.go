// Package scalar implements the single-position search primitive that
// all higher-level operations are built on. It walks one sorted range
// for one value in O(log n).
package scalar

// LowerBound returns the smallest index i in data such that
// !less(data[i], value), or len(data) if no such index exists.
// data must be sorted ascending with respect to less.
func LowerBound[T any](data []T, value T, less func(a, b T) bool) int {
	lo, hi := 0, len(data)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(data[mid], value) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// UpperBound returns the smallest index i in data such that
// less(value, data[i]), or len(data) if no such index exists.
// data must be sorted ascending with respect to less.
func UpperBound[T any](data []T, value T, less func(a, b T) bool) int {
	lo, hi := 0, len(data)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(value, data[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
