package render

import (
	"arena-rpg/internal/entity"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const barWidth = 20

// HealthBar renders cur/max as a fixed-width bar of full and empty blocks.
func HealthBar(cur, maxHP, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxHP > 0 {
		filled = min(width, max(0, cur*width/maxHP))
		if cur > 0 && filled == 0 {
			filled = 1
		}
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// DrawBattle renders both combatants, a banner line and the key hints.
func (r *Renderer) DrawBattle(player, monster *entity.Entity, turn int, banner, hints string) {
	r.CenterText(1, fmt.Sprintf("⚔️  Turn %d", turn), TitleStyle)
	r.drawCombatant(2, 3, player)
	r.drawCombatant(2, 7, monster)

	r.DrawText(2, 11, banner, NormalStyle.Bold(true))
	r.DrawText(2, 12, hints, DimStyle)
}

func (r *Renderer) drawCombatant(x, y int, e *entity.Entity) {
	if e == nil {
		return
	}
	name := e.Name
	if e.Defending {
		name += "  🛡️"
	}
	r.DrawText(x, y, name, NormalStyle.Bold(true))
	bar := HealthBar(e.Health(), e.MaxHealth(), barWidth)
	col := r.DrawText(x, y+1, bar, tcell.StyleDefault.Foreground(HealthColor(e.HealthPercent())))
	r.DrawText(col+1, y+1, fmt.Sprintf("%d/%d", e.Health(), e.MaxHealth()), NormalStyle)
	r.DrawText(x, y+2, AttributeLine(e.Attributes), StatStyle)
}
