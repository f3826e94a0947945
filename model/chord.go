package model

// Chord is a root from the chromatic scale plus whatever text follows it.
// An empty Root means the text was not recognized and Suffix holds it verbatim.
type Chord struct {
	Root   string `json:"root,omitempty" yaml:"root,omitempty"`
	Suffix string `json:"suffix" yaml:"suffix"`
}

func (c Chord) String() string {
	return c.Root + c.Suffix
}

func (c Chord) Recognized() bool {
	return c.Root != ""
}

func (c Chord) Empty() bool {
	return c.Root == "" && c.Suffix == ""
}
