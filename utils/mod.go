package utils

// FindIndex returns the position of item in slice, or -1 if it is absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Mod returns a modulo m in the range [0, m), unlike the % operator which keeps the sign of a.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
