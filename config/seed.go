package config

import (
	"strings"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/grid"
	"gopkg.in/yaml.v3"
)

// SongSeed is the song a new editing session starts from.
type SongSeed struct {
	Title string     `yaml:"title"`
	Tempo int        `yaml:"tempo"`
	Parts []PartSeed `yaml:"parts"`
}

type PartSeed struct {
	Name            string        `yaml:"name"`
	MeasuresTotal   int           `yaml:"measures_total"`
	MeasuresPerLine int           `yaml:"measures_per_line"`
	Measures        []MeasureSeed `yaml:"measures"`
}

// MeasureSeed is written either as a mapping with chords/split/oval keys or
// as a bare string, in which case a "|" makes it a split measure.
type MeasureSeed struct {
	Chords string `yaml:"chords"`
	Split  bool   `yaml:"split"`
	Oval   bool   `yaml:"oval"`
}

func (m *MeasureSeed) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		m.Chords = value.Value
		m.Split = strings.Contains(value.Value, "|")
		return nil
	}
	type plain MeasureSeed
	return value.Decode((*plain)(m))
}

func DefaultSong() SongSeed {
	return SongSeed{
		Tempo: constants.DefaultTempo,
		Parts: []PartSeed{
			{Name: "INTRO", MeasuresTotal: 8, MeasuresPerLine: 4},
			{Name: "COUPLET", MeasuresTotal: 16, MeasuresPerLine: 8},
		},
	}
}

// Apply adds the seeded header and parts to g. A part without an explicit
// total gets one measure per seeded measure; extra seeded measures are
// dropped.
func (s SongSeed) Apply(g *grid.Model) {
	tempo := s.Tempo
	if tempo <= 0 {
		tempo = constants.DefaultTempo
	}
	g.SetHeader(s.Title, tempo)

	for _, ps := range s.Parts {
		total := ps.MeasuresTotal
		if total <= 0 && len(ps.Measures) > 0 {
			total = len(ps.Measures)
		}
		p := g.AddPart(grid.PartDefaults{
			Name:            ps.Name,
			MeasuresTotal:   total,
			MeasuresPerLine: ps.MeasuresPerLine,
		})
		for i, ms := range ps.Measures {
			if i >= p.MeasuresTotal {
				break
			}
			g.SetMeasure(p.ID, i, chord.ParseMeasure(ms.Chords, ms.Split, ms.Oval))
		}
	}
}
