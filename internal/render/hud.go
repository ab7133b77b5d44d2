package render

import (
	"arena-rpg/internal/entity"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// hudRows is the height reserved at the bottom of the screen for the HUD.
const hudRows = 6

// Status is what the HUD shows about the player between and during battles.
type Status struct {
	Player     *entity.Entity
	Attributes entity.Attributes // effective attributes
	ArenaLevel int
	XPToNext   int
	PowerUps   []string // one short label per owned power-up
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(st Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows
	r.HLine(hudY, tcell.ColorGray)

	p := st.Player
	if p != nil && p.Player != nil {
		status := fmt.Sprintf("[%s]  %s  Lv %d  XP %d (+%d)  HP %d/%d  Arena %d",
			p.Player.Class, p.Name, p.Player.Level, p.Player.Experience, st.XPToNext,
			p.Health(), p.MaxHealth(), st.ArenaLevel)
		col := r.DrawText(0, hudY+1, status, NormalStyle)
		r.DrawText(col+2, hudY+1, fmt.Sprintf("💰 %d", p.Player.Gold), GoldStyle)
		r.DrawText(0, hudY+2, AttributeLine(st.Attributes), StatStyle)
	}
	if len(st.PowerUps) > 0 {
		r.DrawText(0, hudY+3, "Power-ups: "+strings.Join(st.PowerUps, ", "), DimStyle)
	}

	// Last two messages.
	start := max(0, len(messages)-2)
	for i, msg := range messages[start:] {
		r.DrawText(0, hudY+4+i, msg, MessageStyle)
	}
}

// AttributeLine formats attributes as "STR 5  CON 4 ...".
func AttributeLine(a entity.Attributes) string {
	parts := make([]string, 0, len(entity.AllStats))
	for _, s := range entity.AllStats {
		parts = append(parts, fmt.Sprintf("%s %d", statAbbrev(s), a.Get(s)))
	}
	return strings.Join(parts, "  ")
}

func statAbbrev(s entity.Stat) string {
	name := strings.ToUpper(s.String())
	if len(name) > 3 {
		name = name[:3]
	}
	return name
}
