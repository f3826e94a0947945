package chord

import "github.com/jsphweid/chordgrid/model"

// Transpose shifts the root of c. Suffixes are kept as they are and
// unrecognized chords are never reinterpreted.
func Transpose(c model.Chord, steps int) model.Chord {
	if !c.Recognized() {
		return c
	}
	return model.Chord{Root: Shift(c.Root, steps), Suffix: c.Suffix}
}

func TransposeMeasure(m model.Measure, steps int) model.Measure {
	m.Chord = Transpose(m.Chord, steps)
	m.Second = Transpose(m.Second, steps)
	return m
}
