package chord

import (
	"testing"

	"github.com/jsphweid/chordgrid/model"
	"github.com/stretchr/testify/assert"
)

func TestTransposeKeepsSuffix(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Chord{Root: "Bb", Suffix: "m7"}, Transpose(Parse("Am7"), 1))
	assert.Equal(model.Chord{Root: "Ab", Suffix: "/C"}, Transpose(Parse("A/C"), -1))
}

func TestTransposeSkipsUnrecognized(t *testing.T) {
	c := Parse("N.C.")
	assert.Equal(t, c, Transpose(c, 5))
	assert.Equal(t, model.Chord{}, Transpose(model.Chord{}, 1))
}

func TestTransposeMeasureShiftsBothChords(t *testing.T) {
	m := ParseMeasure("C | Am", true, true)
	up := TransposeMeasure(m, 2)

	assert := assert.New(t)
	assert.Equal("D", up.Chord.String())
	assert.Equal("Bm", up.Second.String())
	assert.True(up.Oval)
	assert.Equal(m, TransposeMeasure(up, -2))
}
