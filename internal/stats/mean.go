package stats

// HarmonicMean returns 2ab/(a+b), or 0 when both a and b are 0.
func HarmonicMean(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}
