package character

// maxTauntDraws bounds the rejection sampling in PickTaunt.
const maxTauntDraws = 16

// PickTaunt returns a uniformly random index in [0,n) that differs from
// prev whenever n > 1. With a single clip it returns 0, and with no clips -1.
func PickTaunt(rng Rand, n, prev int) int {
	switch {
	case n <= 0:
		return -1
	case n == 1:
		return 0
	}
	for range maxTauntDraws {
		if i := rng.IntN(n); i != prev {
			return i
		}
	}
	// Draw from the n-1 other slots directly.
	i := rng.IntN(n - 1)
	if i >= prev {
		i++
	}
	return i
}
