package soix

import "cmp"

// lowerBound returns the smallest index i in [0, len(a)] such that
// a[i] is not less than v, or len(a) if every element compares less.
// a must be sorted ascending. Equal elements are found, not skipped.
func lowerBound[T cmp.Ordered](a []T, v T) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
