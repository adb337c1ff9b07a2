// Package intutils provides utilities for working with ints
package intutils

// Contains returns whether value is an element of ints
func Contains(ints []int, value int) bool {
	return Index(ints, value) >= 0
}

// Index returns the index of the first occurrence of value in ints, or
// -1 if value is not present
func Index(ints []int, value int) int {
	for i, val := range ints {
		if val == value {
			return i
		}
	}
	return -1
}
