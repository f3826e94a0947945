package model

type Part struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	MeasuresTotal   int       `json:"measures_total"`
	MeasuresPerLine int       `json:"measures_per_line"`
	Measures        []Measure `json:"measures"`
}

func (p Part) Clone() Part {
	c := p
	c.Measures = make([]Measure, len(p.Measures))
	copy(c.Measures, p.Measures)
	return c
}

type Song struct {
	Title string `json:"title"`
	Tempo int    `json:"tempo"`
	Parts []Part `json:"parts"`
}

func (s Song) Clone() Song {
	c := s
	c.Parts = make([]Part, len(s.Parts))
	for i, p := range s.Parts {
		c.Parts[i] = p.Clone()
	}
	return c
}
