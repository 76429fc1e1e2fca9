package scoring

// clamp bounds v to the closed interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampScore bounds a score to [0, 100].
func clampScore(v float64) float64 {
	return clamp(v, 0, 100)
}

// ratio divides num by den, returning 0 when the denominator is not positive.
func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// candidate pairs an availability check with a score computation. Layers with
// fallback chains evaluate candidates in priority order and score the first
// available one; a fully-unavailable chain scores zero.
type candidate struct {
	available bool
	score     func() float64
}

// firstAvailable returns the score of the first available candidate, or 0.
func firstAvailable(candidates []candidate) float64 {
	for _, c := range candidates {
		if c.available {
			return c.score()
		}
	}
	return 0
}
