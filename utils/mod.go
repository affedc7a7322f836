package utils

import "golang.org/x/exp/rand"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Choose picks an element uniformly at random. slice must not be empty.
func Choose[T any](rng *rand.Rand, slice []T) T {
	return slice[rng.Intn(len(slice))]
}
