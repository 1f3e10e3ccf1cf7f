package utils

// FindIndex returns the position of item in slice, or -1 if absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Remove deletes the first occurrence of item, keeping the order of the
// remaining elements. It reports whether anything was removed.
func Remove[T comparable](slice []T, item T) ([]T, bool) {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice, false
	}
	copy(slice[i:], slice[i+1:])
	var zero T
	slice[len(slice)-1] = zero
	return slice[:len(slice)-1], true
}
