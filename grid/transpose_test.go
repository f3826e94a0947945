package grid

import (
	"testing"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/stretchr/testify/assert"
)

func TestTransposeUpThenDownRestoresSong(t *testing.T) {
	m := New()
	p := m.AddPart(PartDefaults{MeasuresTotal: 6})
	fill(m, p.ID, "Am7", "N.C.", "bbmaj7", "", "%")
	m.SetMeasure(p.ID, 5, chord.ParseMeasure("F#m7b5 | B7", true, true))
	before := m.Song()

	m.Transpose(1)
	up := m.Song()

	assert := assert.New(t)
	assert.Equal("Bbm7", up.Parts[0].Measures[0].Chord.String())
	assert.Equal("N.C.", up.Parts[0].Measures[1].Chord.String())
	assert.Equal("Bmaj7", up.Parts[0].Measures[2].Chord.String())
	assert.Equal("", up.Parts[0].Measures[3].Chord.String())
	assert.Equal("%", up.Parts[0].Measures[4].Chord.String())
	assert.Equal("Gm7b5", up.Parts[0].Measures[5].Chord.String())
	assert.Equal("C7", up.Parts[0].Measures[5].Second.String())

	m.Transpose(-1)
	assert.Equal(before, m.Song())
}

func TestTransposeSongIsPure(t *testing.T) {
	m := New()
	p := m.AddPart(PartDefaults{MeasuresTotal: 1})
	fill(m, p.ID, "G")
	song := m.Song()

	shifted := TransposeSong(song, 2)

	assert := assert.New(t)
	assert.Equal("A", shifted.Parts[0].Measures[0].Chord.String())
	assert.Equal("G", song.Parts[0].Measures[0].Chord.String())
	assert.Equal(song, TransposeSong(shifted, -2))
}
