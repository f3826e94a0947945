package model

type AddPartRequestBody struct {
	Name            string `json:"name"`
	MeasuresTotal   int    `json:"measures_total"`
	MeasuresPerLine int    `json:"measures_per_line"`
}

type RenameRequestBody struct {
	Name string `json:"name"`
}

type ResizeRequestBody struct {
	MeasuresTotal   int `json:"measures_total"`
	MeasuresPerLine int `json:"measures_per_line"`
}

// MeasureEdit is the free-text form of a measure used by the edit dialog.
type MeasureEdit struct {
	Text  string `json:"text"`
	Split bool   `json:"split"`
	Oval  bool   `json:"oval"`
}

type TransposeRequestBody struct {
	Steps int `json:"steps"`
}

type HeaderRequestBody struct {
	Title string `json:"title"`
	Tempo int    `json:"tempo"`
}

type ParseResponse struct {
	Input      string `json:"input"`
	Root       string `json:"root"`
	Suffix     string `json:"suffix"`
	Normalized string `json:"normalized"`
	Recognized bool   `json:"recognized"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
