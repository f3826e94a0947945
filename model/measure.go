package model

// Measure is one grid cell. A split measure holds two chords placed on
// either side of the cell's diagonal; Second is unused otherwise.
type Measure struct {
	Split  bool  `json:"split"`
	Chord  Chord `json:"chord"`
	Second Chord `json:"second"`
	Oval   bool  `json:"oval"`
}

func (m Measure) Filled() bool {
	if m.Split {
		return !m.Chord.Empty() || !m.Second.Empty()
	}
	return !m.Chord.Empty()
}

// Chords returns the chords the measure displays, one or two.
func (m Measure) Chords() []Chord {
	if m.Split {
		return []Chord{m.Chord, m.Second}
	}
	return []Chord{m.Chord}
}
