package utils

// FindIndex returns the index of the first occurrence of item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// CountFunc counts the elements satisfying keep.
func CountFunc[T any](slice []T, keep func(T) bool) int {
	count := 0
	for _, v := range slice {
		if keep(v) {
			count++
		}
	}
	return count
}
