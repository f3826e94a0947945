package layout

import (
	"sort"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/model"
)

type Summary struct {
	Parts        int
	Measures     int
	Filled       int
	Split        int
	Oval         int
	Chords       int
	Unrecognized []string
	// occurrences per recognized root
	Roots map[string]int
}

func Summarize(s model.Song) Summary {
	sum := Summary{Parts: len(s.Parts), Roots: make(map[string]int)}
	seen := make(map[string]bool)
	for _, p := range s.Parts {
		for _, m := range p.Measures {
			sum.Measures++
			if m.Filled() {
				sum.Filled++
			}
			if m.Split {
				sum.Split++
			}
			if m.Oval {
				sum.Oval++
			}
			for _, c := range m.Chords() {
				if c.Empty() {
					continue
				}
				sum.Chords++
				if c.Recognized() {
					sum.Roots[c.Root]++
				} else if !seen[c.Suffix] {
					seen[c.Suffix] = true
					sum.Unrecognized = append(sum.Unrecognized, c.Suffix)
				}
			}
		}
	}
	sort.Strings(sum.Unrecognized)
	return sum
}

// RootsInOrder lists the roots that occur, in scale order.
func (s Summary) RootsInOrder() []string {
	var res []string
	for _, r := range chord.Scale {
		if s.Roots[r] > 0 {
			res = append(res, r)
		}
	}
	return res
}
