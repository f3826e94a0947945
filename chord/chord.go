package chord

import (
	"strings"

	"github.com/jsphweid/chordgrid/model"
)

// Parse splits raw chord text into a scale root and the suffix after it.
// Two-character roots win over one-character ones so "Bb7" is Bb + "7".
func Parse(raw string) model.Chord {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Chord{}
	}

	root := matchRoot(raw)
	if root == "" {
		return model.Chord{Suffix: raw}
	}
	return model.Chord{Root: root, Suffix: raw[len(root):]}
}

// Normalize returns the chord with its root spelled as in Scale, or the
// trimmed input when no root is recognized.
func Normalize(raw string) string {
	return Parse(raw).String()
}

func matchRoot(s string) string {
	if root := literalRoot(s); root != "" {
		return root
	}
	// lowercase entry: only the first letter is touched, "bbm" -> Bb + "m"
	return literalRoot(upperFirst(s))
}

func literalRoot(s string) string {
	for _, n := range []int{2, 1} {
		if len(s) >= n && IndexOf(s[:n]) != -1 {
			return s[:n]
		}
	}
	return ""
}

func upperFirst(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

var splitSeparators = []string{"|", ",", ";"}

// ParseSplit reads the text of a two-chord measure. The first separator
// present among "|", ",", ";" wins; without one the text is split on
// whitespace. Only the first two tokens are kept and a missing second token
// is an empty chord.
func ParseSplit(raw string) (model.Chord, model.Chord) {
	raw = strings.TrimSpace(raw)

	var tokens []string
	if sep := splitSeparator(raw); sep != "" {
		tokens = strings.Split(raw, sep)
	} else {
		tokens = strings.Fields(raw)
	}

	var a, b string
	if len(tokens) > 0 {
		a = tokens[0]
	}
	if len(tokens) > 1 {
		b = tokens[1]
	}
	return Parse(a), Parse(b)
}

func splitSeparator(raw string) string {
	for _, sep := range splitSeparators {
		if strings.Contains(raw, sep) {
			return sep
		}
	}
	return ""
}

// ParseMeasure builds a measure from the edit dialog's fields.
func ParseMeasure(raw string, split, oval bool) model.Measure {
	if split {
		a, b := ParseSplit(raw)
		return model.Measure{Split: true, Chord: a, Second: b, Oval: oval}
	}
	return model.Measure{Chord: Parse(raw), Oval: oval}
}

// MeasureText is the inverse of ParseMeasure used to prefill the dialog.
func MeasureText(m model.Measure) string {
	if m.Split {
		return m.Chord.String() + " | " + m.Second.String()
	}
	return m.Chord.String()
}

// Edit renders m in the dialog's form.
func Edit(m model.Measure) model.MeasureEdit {
	return model.MeasureEdit{Text: MeasureText(m), Split: m.Split, Oval: m.Oval}
}
