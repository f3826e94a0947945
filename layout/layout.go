package layout

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/model"
	"github.com/jsphweid/chordgrid/util"
)

// Cell is one measure as the grid displays it. For split measures Text sits
// above the diagonal and Second below it.
type Cell struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Second string `json:"second,omitempty"`
	Filled bool   `json:"filled"`
	Split  bool   `json:"split"`
	Oval   bool   `json:"oval"`
}

type Part struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	MeasuresTotal   int      `json:"measures_total"`
	MeasuresPerLine int      `json:"measures_per_line"`
	Rows            [][]Cell `json:"rows"`
}

type Sheet struct {
	Title string `json:"title"`
	Tempo string `json:"tempo"`
	Parts []Part `json:"parts"`
}

// Rows lays the measures of p out in lines of MeasuresPerLine cells. The
// last line holds whatever is left over.
func Rows(p model.Part) [][]Cell {
	perLine := util.Clamp(p.MeasuresPerLine, constants.MinMeasuresPerLine, constants.MaxMeasuresPerLine)
	// Rows accepts any model.Part, not only ones built by grid.Model
	total := util.Min(p.MeasuresTotal, len(p.Measures))
	if total <= 0 {
		return [][]Cell{}
	}

	rows := make([][]Cell, util.CeilDiv(total, perLine))
	for r := range rows {
		start := r * perLine
		end := util.Min(start+perLine, total)
		row := make([]Cell, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, project(i, p.Measures[i]))
		}
		rows[r] = row
	}
	return rows
}

func project(index int, m model.Measure) Cell {
	c := Cell{
		Index:  index,
		Text:   m.Chord.String(),
		Filled: m.Filled(),
		Split:  m.Split,
		Oval:   m.Oval,
	}
	if m.Split {
		c.Second = m.Second.String()
	}
	return c
}

func Project(p model.Part) Part {
	return Part{
		ID:              p.ID,
		Label:           Label(p.Name),
		MeasuresTotal:   p.MeasuresTotal,
		MeasuresPerLine: p.MeasuresPerLine,
		Rows:            Rows(p),
	}
}

// Label is the name shown in a part's left column.
func Label(name string) string {
	if name == "" {
		return constants.DefaultPartName
	}
	return strings.ToUpper(name)
}

func ProjectSong(s model.Song) Sheet {
	sheet := Sheet{
		Title: strings.ToUpper(s.Title),
		Tempo: fmt.Sprintf("%d BPM", s.Tempo),
		Parts: make([]Part, 0, len(s.Parts)),
	}
	if sheet.Title == "" {
		sheet.Title = constants.DefaultTitle
	}
	if s.Tempo <= 0 {
		sheet.Tempo = fmt.Sprintf("%d BPM", constants.DefaultTempo)
	}
	for _, p := range s.Parts {
		sheet.Parts = append(sheet.Parts, Project(p))
	}
	return sheet
}
