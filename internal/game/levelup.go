package game

import (
	"arena-rpg/internal/entity"
	"arena-rpg/internal/progression"
	"arena-rpg/internal/render"
	"fmt"
)

// runLevelUp lets the player spend pending stat points and pick one of the
// offered perks. Enter commits; Esc leaves everything pending.
func (g *Game) runLevelUp() {
	m := g.sess.BeginLevelUp()
	selected := 0
	for {
		g.drawLevelUp(m, selected)
		ev := g.pollKey()
		if ev == nil {
			continue
		}
		if idx := chooseIndex(ev); idx >= 0 {
			if choices := m.PendingChoices(); idx < len(choices) {
				m.SelectPerk(choices[idx])
			}
			continue
		}
		stat := entity.AllStats[selected]
		switch keyToCommand(ev, false) {
		case CmdUp:
			selected = (selected - 1 + len(entity.AllStats)) % len(entity.AllStats)
		case CmdDown:
			selected = (selected + 1) % len(entity.AllStats)
		case CmdRight:
			m.Increment(stat)
		case CmdLeft:
			m.Decrement(stat)
		case CmdConfirm:
			g.sess.CommitLevelUp(m)
			if id, ok := m.Selected(); ok {
				g.addMessage("Perk learned: " + g.perkText(id))
			}
			return
		case CmdBack:
			return
		}
	}
}

func (g *Game) perkText(id string) string {
	if p, ok := g.cat.Perk(id); ok {
		return p.Text
	}
	return id
}

func (g *Game) drawLevelUp(m *progression.LevelUpModel, selected int) {
	g.renderer.Clear()
	start, cur := m.Start(), m.Attributes()
	items := make([]render.MenuItem, 0, len(entity.AllStats))
	for _, s := range entity.AllStats {
		label := fmt.Sprintf("%-13s %3d", s, cur.Get(s))
		if d := cur.Get(s) - start.Get(s); d > 0 {
			label += fmt.Sprintf("  (+%d)", d)
		}
		items = append(items, render.MenuItem{Label: label})
	}
	g.renderer.DrawMenu(render.Menu{
		Title:    "⭐ Level Up ⭐",
		Subtitle: fmt.Sprintf("%d point(s) to spend", m.Points()),
		Items:    items,
		Selected: selected,
	})

	y := 5 + len(items)
	choices := m.PendingChoices()
	if id, ok := m.Selected(); ok {
		g.renderer.DrawText(2, y, "Perk chosen: "+g.perkText(id), render.GoldStyle)
		y++
	}
	for i, id := range choices {
		g.renderer.DrawText(2, y, fmt.Sprintf("[%d] %s", i+1, g.perkText(id)), render.StatStyle)
		y++
	}
	g.renderer.DrawText(2, y+1, "[↑/↓] Stat   [←/→ or -/+] Spend   [1-3] Perk   [Enter] Done   [Esc] Later", render.DimStyle)
	g.renderer.Show()
}
