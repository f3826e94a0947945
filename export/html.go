package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/jsphweid/chordgrid/layout"
)

//go:embed templates/*
var templates embed.FS

var sheetTemplate = template.Must(template.New("sheet.html.tmpl").
	Funcs(template.FuncMap{"measureClass": measureClass}).
	ParseFS(templates, "templates/sheet.html.tmpl"))

func measureClass(c layout.Cell) string {
	class := "measure"
	if c.Split {
		class += " split"
	}
	if c.Filled {
		class += " filled"
	}
	return class
}

// WriteHTML renders sheet as a standalone printable page.
func WriteHTML(w io.Writer, sheet layout.Sheet) error {
	if err := sheetTemplate.Execute(w, sheet); err != nil {
		return fmt.Errorf("export: couldn't render sheet: %w", err)
	}
	return nil
}

// WriteHTMLFile writes through a temp file next to path and renames it
// into place.
func WriteHTMLFile(path string, sheet layout.Sheet) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".chordgrid-*.html")
	if err != nil {
		return fmt.Errorf("export: couldn't create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("export: couldn't chmod temp file: %w", err)
	}
	if err := WriteHTML(tmp, sheet); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: couldn't close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("export: couldn't write %s: %w", path, err)
	}
	return nil
}
