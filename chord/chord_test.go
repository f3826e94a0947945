package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/chordgrid/model"
	"github.com/stretchr/testify/assert"
)

func TestPrefersTwoCharacterRoots(t *testing.T) {
	c := Parse("Bb7")

	assert := assert.New(t)
	assert.Equal("Bb", c.Root)
	assert.Equal("7", c.Suffix)
}

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want model.Chord
	}{
		{"C", model.Chord{Root: "C"}},
		{"Am", model.Chord{Root: "A", Suffix: "m"}},
		{"F#m7b5", model.Chord{Root: "F#", Suffix: "m7b5"}},
		{"  Ebmaj7  ", model.Chord{Root: "Eb", Suffix: "maj7"}},
		{"c#m", model.Chord{Root: "C#", Suffix: "m"}},
		{"ab", model.Chord{Root: "Ab"}},
		{"bbm", model.Chord{Root: "Bb", Suffix: "m"}},
		{"dMaj7", model.Chord{Root: "D", Suffix: "Maj7"}},
		{"Db", model.Chord{Root: "D", Suffix: "b"}},
		{"G/B", model.Chord{Root: "G", Suffix: "/B"}},
		{"N.C.", model.Chord{Suffix: "N.C."}},
		{"%", model.Chord{Suffix: "%"}},
		{"", model.Chord{}},
		{"   ", model.Chord{}},
	}

	for _, c := range cases {
		name := fmt.Sprintf("parse %q", c.raw)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, Parse(c.raw))
		})
	}
}

func TestNormalizeMatchesParse(t *testing.T) {
	inputs := []string{"C", "am7", "bb", "Bb", "f#sus4", "E7#9", " g ", "x", "N.C.", "H7", ""}

	for _, raw := range inputs {
		t.Run(fmt.Sprintf("normalize %q", raw), func(t *testing.T) {
			assert := assert.New(t)
			c := Parse(raw)
			normalized := Normalize(raw)
			if c.Recognized() {
				assert.Equal(c.Root+c.Suffix, normalized)
			}
			assert.Equal(normalized, Normalize(normalized))
		})
	}
}

func TestNormalizeLeavesUnrecognizedText(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("N.C.", Normalize("  N.C. "))
	assert.Equal("Am", Normalize("am"))
	assert.Equal("", Normalize(""))
}

func TestParseSplit(t *testing.T) {
	cases := []struct {
		raw  string
		a, b string
	}{
		{"C | Am", "C", "Am"},
		{"C Am", "C", "Am"},
		{"C", "C", ""},
		{"", "", ""},
		{"C,Am", "C", "Am"},
		{"C;Am", "C", "Am"},
		{"C,Am|G", "C,Am", "G"},
		{"C;Am,G", "C;Am", "G"},
		{"C | Am | G", "C", "Am"},
		{"C   Am  G", "C", "Am"},
		{"| G7", "", "G7"},
		{"dm7 , g7", "Dm7", "G7"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("split %q", c.raw), func(t *testing.T) {
			a, b := ParseSplit(c.raw)
			assert := assert.New(t)
			assert.Equal(Parse(c.a), a)
			assert.Equal(Parse(c.b), b)
		})
	}
}

func TestParseMeasure(t *testing.T) {
	assert := assert.New(t)

	m := ParseMeasure("C | Am", true, true)
	assert.Equal(model.Measure{Split: true, Chord: Parse("C"), Second: Parse("Am"), Oval: true}, m)

	m = ParseMeasure("C | Am", false, false)
	assert.Equal(model.Measure{Chord: model.Chord{Root: "C", Suffix: " | Am"}}, m)
	assert.True(m.Filled())

	m = ParseMeasure("  ", true, false)
	assert.False(m.Filled())
}

func TestMeasureTextRoundTrip(t *testing.T) {
	assert := assert.New(t)

	split := ParseMeasure("g7;c", true, false)
	assert.Equal("G7 | C", MeasureText(split))
	assert.Equal(split, ParseMeasure(MeasureText(split), true, false))

	simple := ParseMeasure("f#m", false, true)
	assert.Equal(model.MeasureEdit{Text: "F#m", Oval: true}, Edit(simple))
}
