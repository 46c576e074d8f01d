// Package render draws a cube as an unfolded net for terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxncube"
)

// MarkFunc reports whether a sticker should be highlighted.
type MarkFunc func(side nxncube.Side, row, col int) bool

// Renderer draws faces and nets either as plain letters or as colored
// lipgloss blocks.
type Renderer struct {
	plain  bool
	styles map[nxncube.Color]lipgloss.Style
	marked lipgloss.Style
}

// New creates a renderer. hex maps each sticker color to a terminal color;
// plain disables styling entirely.
func New(hex func(nxncube.Color) string, plain bool) *Renderer {
	r := &Renderer{
		plain:  plain,
		styles: make(map[nxncube.Color]lipgloss.Style),
		marked: lipgloss.NewStyle().Bold(true).Underline(true),
	}
	for _, c := range nxncube.Colors() {
		r.styles[c] = lipgloss.NewStyle().
			Background(lipgloss.Color(hex(c))).
			Foreground(lipgloss.Color("#000000"))
	}
	return r
}

// cell renders a single sticker three columns wide.
func (r *Renderer) cell(c nxncube.Color, marked bool) string {
	if r.plain {
		if marked {
			return "[" + c.String() + "]"
		}
		return " " + c.String() + " "
	}
	style := r.styles[c]
	label := "   "
	if marked {
		style = style.Inherit(r.marked)
		label = " " + c.String() + " "
	}
	return style.Render(label)
}

// Face renders one face as rows of stickers.
func (r *Renderer) Face(f *nxncube.Face, mark MarkFunc) string {
	var lines []string
	for row, colors := range f.Colors() {
		var sb strings.Builder
		for col, c := range colors {
			sb.WriteString(r.cell(c, mark != nil && mark(f.Side(), row, col)))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// Net renders the cube as a cross: Up above Front, Left/Front/Right/Back in
// a belt, Down below Front. Adjacent faces share their edges in the drawing.
func (r *Renderer) Net(c *nxncube.Cube, mark MarkFunc) string {
	face := func(s nxncube.Side) string { return r.Face(c.Face(s), mark) }
	gap := lipgloss.NewStyle().PaddingLeft(1)
	indent := lipgloss.NewStyle().PaddingLeft(lipgloss.Width(face(nxncube.Left)) + 1)

	belt := lipgloss.JoinHorizontal(lipgloss.Top,
		face(nxncube.Left),
		gap.Render(face(nxncube.Front)),
		gap.Render(face(nxncube.Right)),
		gap.Render(face(nxncube.Back)),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		indent.Render(face(nxncube.Up)),
		"",
		belt,
		"",
		indent.Render(face(nxncube.Down)),
	)
}

// Legend lists the visible stickers of one sub-cube, e.g. "U:W F:G R:R".
func Legend(stickers map[nxncube.Side]nxncube.Color) string {
	var parts []string
	for _, s := range nxncube.Sides() {
		if c, ok := stickers[s]; ok {
			parts = append(parts, s.String()+":"+c.String())
		}
	}
	return strings.Join(parts, " ")
}
