package render

import "github.com/gdamore/tcell/v2"

// MenuItem is one selectable line, with an optional dimmed detail line.
type MenuItem struct {
	Label    string
	Detail   string
	Color    tcell.Color // zero uses the normal style
	Disabled bool
}

// Menu is a titled vertical list.
type Menu struct {
	Title    string
	Subtitle string
	Items    []MenuItem
	Selected int
	Hint     string
}

// DrawMenu renders m starting near the top of the screen.
func (r *Renderer) DrawMenu(m Menu) {
	r.CenterText(1, m.Title, TitleStyle)
	if m.Subtitle != "" {
		r.CenterText(2, m.Subtitle, DimStyle)
	}
	y := 4
	for i, it := range m.Items {
		prefix := "  "
		style := NormalStyle
		if it.Color != 0 {
			style = style.Foreground(it.Color)
		}
		if it.Disabled {
			style = DimStyle
		}
		if i == m.Selected {
			prefix = "► "
			style = HighlightStyle
		}
		r.DrawText(2, y, prefix+it.Label, style)
		y++
		if it.Detail != "" {
			r.DrawText(6, y, it.Detail, DimStyle)
			y++
		}
	}
	if m.Hint != "" {
		r.CenterText(y+1, m.Hint, DimStyle)
	}
}
