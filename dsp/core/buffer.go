package core

// Clone returns a copy of src. A nil src yields an empty, non-nil slice.
func Clone(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)

	return out
}

// Reverse returns a reversed copy of src.
func Reverse(src []float64) []float64 {
	n := len(src)
	out := make([]float64, n)

	for i, v := range src {
		out[n-1-i] = v
	}

	return out
}

// CountTrue returns the number of set entries in mask.
func CountTrue(mask []bool) int {
	n := 0

	for _, m := range mask {
		if m {
			n++
		}
	}

	return n
}

// SameLength reports whether every slice has the length of first.
func SameLength(first []float64, rest ...[]float64) bool {
	for _, r := range rest {
		if len(r) != len(first) {
			return false
		}
	}

	return true
}
