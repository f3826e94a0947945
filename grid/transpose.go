package grid

import (
	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/model"
	"go.uber.org/zap"
)

// Transpose shifts every recognized chord of the song by steps semitones.
func (m *Model) Transpose(steps int) {
	transposeParts(m.song.Parts, steps)
	m.changed("transpose", zap.Int("steps", steps))
}

// TransposeSong is the pure form of Model.Transpose.
func TransposeSong(song model.Song, steps int) model.Song {
	c := song.Clone()
	transposeParts(c.Parts, steps)
	return c
}

func transposeParts(parts []model.Part, steps int) {
	for i := range parts {
		for j, measure := range parts[i].Measures {
			parts[i].Measures[j] = chord.TransposeMeasure(measure, steps)
		}
	}
}
