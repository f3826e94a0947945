package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/chordgrid/grid"
	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chordgrid.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(":8080", c.Addr)
	assert.Equal([]string{"*"}, c.CORSOrigins)
	assert.Equal(8, c.NameLimit)
	assert.Equal(512, c.MaxMeasures)
	assert.Equal(500*time.Millisecond, c.ExportDebounce)
	assert.Len(c.Song.Parts, 2)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
addr: 127.0.0.1:9000
name_limit: 12
max_measures: 64
export_debounce: 2s
song:
  title: Blue Bossa
  tempo: 140
  parts:
    - name: head a
      measures_per_line: 4
      measures:
        - Cm7
        - Cm7
        - Fm7
        - chords: "Dm7b5 | G7"
          split: true
          oval: true
`)
	c, err := Load(path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("127.0.0.1:9000", c.Addr)
	assert.Equal(12, c.NameLimit)
	assert.Equal(64, c.MaxMeasures)
	assert.Equal(2*time.Second, c.ExportDebounce)
	assert.Equal("Blue Bossa", c.Song.Title)
	assert.Len(c.Song.Parts, 1)
	assert.Equal(MeasureSeed{Chords: "Dm7b5 | G7", Split: true, Oval: true}, c.Song.Parts[0].Measures[3])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CHORDGRID_ADDR", ":7000")
	t.Setenv("CHORDGRID_CORS_ORIGINS", "http://localhost:3000, https://grids.example")
	t.Setenv("CHORDGRID_EXPORT_PATH", "/tmp/sheet.html")

	c, err := Load(writeConfig(t, "addr: \":9000\"\n"))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(":7000", c.Addr)
	assert.Equal([]string{"http://localhost:3000", "https://grids.example"}, c.CORSOrigins)
	assert.Equal("/tmp/sheet.html", c.ExportPath)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "addr: [unclosed\n"))
	assert.Error(t, err)
}

func TestScalarMeasureSeed(t *testing.T) {
	path := writeConfig(t, `
song:
  parts:
    - measures: ["C | Am", "F"]
`)
	c, err := Load(path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]MeasureSeed{{Chords: "C | Am", Split: true}, {Chords: "F"}}, c.Song.Parts[0].Measures)
}

func TestApplyDefaultSong(t *testing.T) {
	g := grid.New()
	DefaultSong().Apply(g)
	song := g.Song()

	assert := assert.New(t)
	assert.Equal(120, song.Tempo)
	assert.Len(song.Parts, 2)
	assert.Equal("INTRO", song.Parts[0].Name)
	assert.Equal(8, song.Parts[0].MeasuresTotal)
	assert.Equal(4, song.Parts[0].MeasuresPerLine)
	assert.Equal("COUPLET", song.Parts[1].Name)
	assert.Equal(16, song.Parts[1].MeasuresTotal)
	assert.Equal(8, song.Parts[1].MeasuresPerLine)
}

func TestApplySeededMeasures(t *testing.T) {
	seed := SongSeed{
		Title: "Blue Bossa",
		Parts: []PartSeed{
			{Name: "a", Measures: []MeasureSeed{{Chords: "cm7"}, {Chords: "Dm7b5 | G7", Split: true, Oval: true}}},
			{Name: "b", MeasuresTotal: 1, Measures: []MeasureSeed{{Chords: "Eb"}, {Chords: "dropped"}}},
		},
	}
	g := grid.New()
	seed.Apply(g)
	song := g.Song()

	assert := assert.New(t)
	assert.Equal(120, song.Tempo)
	assert.Equal(2, song.Parts[0].MeasuresTotal)
	assert.Equal("Cm7", song.Parts[0].Measures[0].Chord.String())
	assert.True(song.Parts[0].Measures[1].Split)
	assert.Equal("G7", song.Parts[0].Measures[1].Second.String())
	assert.Len(song.Parts[1].Measures, 1)
	assert.Equal("Eb", song.Parts[1].Measures[0].Chord.String())
}
