// Package render draws arena screens onto a tcell screen.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer wraps a tcell screen with width-aware text helpers.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen returns the underlying screen.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// Clear blanks the screen.
func (r *Renderer) Clear() { r.screen.Clear() }

// Show flushes pending drawing.
func (r *Renderer) Show() { r.screen.Show() }

// Size returns the screen dimensions in cells.
func (r *Renderer) Size() (int, int) { return r.screen.Size() }

// DrawText writes text starting at (x, y), advancing by each grapheme's
// display width so emoji take two columns. It returns the column after the
// last cell written.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, g := range graphemes(text) {
		w := runewidth.StringWidth(g)
		if w == 0 {
			continue
		}
		r.putGlyph(col, y, g, style)
		col += w
	}
	return col
}

// CenterText writes text horizontally centred on row y.
func (r *Renderer) CenterText(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := max(0, (w-runewidth.StringWidth(text))/2)
	r.DrawText(x, y, text, style)
}

// HLine draws a horizontal rule across the screen on row y.
func (r *Renderer) HLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// graphemes splits s into display units: a base rune followed by any
// zero-width combining runes or variation selectors.
func graphemes(s string) []string {
	var out []string
	var cur strings.Builder
	for _, ch := range s {
		if cur.Len() > 0 && (runewidth.RuneWidth(ch) == 0 || ch == 0xFE0F || ch == 0x200D) {
			cur.WriteRune(ch)
			continue
		}
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
		cur.WriteRune(ch)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
