package bulletin

// Swap returns a copy of s with the elements at i and j exchanged. Every other
// element keeps its position. Indices outside s leave the copy unchanged.
func Swap[T any](s []T, i, j int) []T {
	out := make([]T, len(s))
	copy(out, s)
	if i < 0 || j < 0 || i >= len(s) || j >= len(s) {
		return out
	}
	out[i], out[j] = out[j], out[i]
	return out
}
