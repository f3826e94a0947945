package chord

// Scale is the fixed set of root spellings, one per semitone starting at A.
var Scale = [12]string{"A", "Bb", "B", "C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab"}

// IndexOf returns the position of root in Scale, or -1.
func IndexOf(root string) int {
	for i, r := range Scale {
		if r == root {
			return i
		}
	}
	return -1
}

// Shift moves root by steps semitones around the scale. Roots outside the
// scale come back unchanged.
func Shift(root string, steps int) string {
	idx := IndexOf(root)
	if idx == -1 {
		return root
	}
	n := len(Scale)
	return Scale[((idx+steps)%n+n)%n]
}
