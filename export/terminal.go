package export

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/chordgrid/layout"
	"github.com/jsphweid/chordgrid/util"
)

const cellWidth = 11

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	tempoStyle = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Bold(true).Width(10).PaddingTop(1)
	cellStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(cellWidth).
			Align(lipgloss.Center)
	emptyCellStyle = cellStyle.BorderForeground(lipgloss.Color("240"))
)

// Terminal draws sheet as boxed rows for a terminal. Split measures read
// "A╲B" and oval chords are wrapped in parentheses.
func Terminal(sheet layout.Sheet) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(sheet.Title))
	sb.WriteString("  ")
	sb.WriteString(tempoStyle.Render(sheet.Tempo))
	sb.WriteString("\n\n")

	for _, p := range sheet.Parts {
		sb.WriteString(terminalPart(p))
		sb.WriteString("\n")
	}
	return sb.String()
}

func terminalPart(p layout.Part) string {
	rows := make([]string, 0, len(p.Rows))
	for _, row := range p.Rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			style := cellStyle
			if !c.Filled {
				style = emptyCellStyle
			}
			cells = append(cells, style.Render(cellText(c)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(p.Label), grid)
}

func cellText(c layout.Cell) string {
	text := oval(c.Text, c.Oval)
	if c.Split {
		text = oval(c.Text, c.Oval) + "╲" + oval(c.Second, c.Oval)
	}
	if lipgloss.Width(text) > cellWidth {
		text = util.TruncateRunes(text, cellWidth-1) + "…"
	}
	return text
}

func oval(text string, on bool) string {
	if !on || text == "" {
		return text
	}
	return "(" + text + ")"
}
