package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultTermColumn = 36

// Terminal writes styled output for a terminal. Colors follow what the
// writer supports, so piping to a file yields plain text.
type Terminal struct {
	// Width is the maximum width of each comparison column.
	Width int
	// Output is the terminal the result is headed for. When nil the render
	// target itself is probed.
	Output io.Writer
}

func (Terminal) Extension() string { return ".ansi" }

func (t Terminal) Render(w io.Writer, doc Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	probe := t.Output
	if probe == nil {
		probe = w
	}
	r := lipgloss.NewRenderer(probe)
	var (
		titleStyle   = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD866"))
		speakerStyle = r.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
		headStyle    = r.NewStyle().Bold(true).Underline(true)
		vsStyle      = r.NewStyle().Foreground(lipgloss.Color("#888888"))
		boxStyle     = r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	)

	maxW := t.Width
	if maxW <= 0 {
		maxW = defaultTermColumn
	}

	var blocks []string
	if doc.Header != nil {
		head := titleStyle.Render(doc.Header.Title)
		if s := speakerLine(doc.Header); s != "" {
			head += "\n" + speakerStyle.Render(s)
		}
		blocks = append(blocks, head)
	}
	for _, c := range doc.Comparisons {
		colW := columnWidth(maxW, append([]string{c.LeftHeading}, c.LeftContent...), append([]string{c.RightHeading}, c.RightContent...))
		col := r.NewStyle().Width(colW)
		rows := []string{lipgloss.JoinHorizontal(lipgloss.Top,
			col.Render(headStyle.Render(c.LeftHeading)), vsStyle.Render(" vs. "), col.Render(headStyle.Render(c.RightHeading)))}
		for i, left := range c.LeftContent {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
				col.Render(left), vsStyle.Render(" vs. "), col.Render(c.RightContent[i])))
		}
		blocks = append(blocks, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}
	if len(blocks) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n")
	return err
}

// columnWidth is the widest cell across both sides, capped at maxW.
func columnWidth(maxW int, sides ...[]string) int {
	w := 1
	for _, side := range sides {
		for _, s := range side {
			if n := lipgloss.Width(s); n > w {
				w = n
			}
		}
	}
	if w > maxW {
		w = maxW
	}
	return w
}
