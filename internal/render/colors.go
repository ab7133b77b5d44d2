package render

import "github.com/gdamore/tcell/v2"

// Styles shared by every screen.
var (
	TitleStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 170, 60)).Bold(true)
	NormalStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	DimStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	HighlightStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(255, 170, 60))
	StatStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255))
	GoldStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 215, 0))
	MessageStyle   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

// rarityColors tints power-up names by rarity index (common..legendary).
var rarityColors = [...]tcell.Color{
	tcell.ColorWhite,
	tcell.NewRGBColor(80, 160, 255),
	tcell.NewRGBColor(190, 90, 255),
	tcell.NewRGBColor(255, 160, 0),
}

// RarityColor returns the display colour for a rarity index, clamped.
func RarityColor(rarity int) tcell.Color {
	return rarityColors[min(max(rarity, 0), len(rarityColors)-1)]
}

// HealthColor is green above half health, yellow above a quarter, red below.
func HealthColor(percent float64) tcell.Color {
	switch {
	case percent > 50:
		return tcell.ColorGreen
	case percent > 25:
		return tcell.ColorYellow
	}
	return tcell.ColorRed
}
