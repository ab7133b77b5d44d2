package game

import (
	"arena-rpg/internal/entity"
	"arena-rpg/internal/render"
	"arena-rpg/internal/session"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	defaultName   = "Champion"
	maxNameLength = 16
)

var genders = []string{"female", "male", "nonbinary"}

// runClassSelect shows the class selection screen and then the name prompt.
// Returns false if the player quits without choosing.
func (g *Game) runClassSelect() (session.Options, bool) {
	classes := g.cat.Classes()
	selected, gender := 0, 0
	for {
		g.drawClassSelect(classes, selected, genders[gender])
		ev := g.pollKey()
		if ev == nil {
			continue
		}
		if idx := chooseIndex(ev); idx >= 0 && idx < len(classes) {
			selected = idx
			continue
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'g' || ev.Rune() == 'G') {
			gender = (gender + 1) % len(genders)
			continue
		}
		switch keyToCommand(ev, false) {
		case CmdUp:
			selected = (selected - 1 + len(classes)) % len(classes)
		case CmdDown:
			selected = (selected + 1) % len(classes)
		case CmdConfirm:
			if classes[selected].Locked {
				continue
			}
			name, ok := g.runNamePrompt()
			if !ok {
				continue
			}
			return session.Options{Name: name, Gender: genders[gender], ClassID: classes[selected].ID}, true
		case CmdQuit, CmdBack:
			return session.Options{}, false
		}
	}
}

// drawClassSelect renders the full class selection UI to the screen.
func (g *Game) drawClassSelect(classes []entity.ClassDef, selected int, gender string) {
	g.renderer.Clear()
	items := make([]render.MenuItem, len(classes))
	for i, c := range classes {
		label := fmt.Sprintf("[%d] %s %s  HP:%d", i+1, c.Emoji, c.Name, c.MaxHealth)
		if c.Locked {
			label += "  (locked)"
		}
		items[i] = render.MenuItem{
			Label:    label,
			Detail:   fmt.Sprintf("\"%s\"  %s", c.Lore, render.AttributeLine(c.Attributes)),
			Disabled: c.Locked,
		}
	}
	g.renderer.DrawMenu(render.Menu{
		Title:    "⚔️ THE ARENA ⚔️",
		Subtitle: "Choose your class  ·  gender: " + gender,
		Items:    items,
		Selected: selected,
		Hint:     "[j/k or ↑/↓] Navigate   [1-9] Select   [g] Gender   [Enter] Confirm   [q] Quit",
	})
	g.renderer.Show()
}

// runNamePrompt collects a character name. Esc goes back.
func (g *Game) runNamePrompt() (string, bool) {
	var buf []rune
	for {
		g.renderer.Clear()
		g.renderer.CenterText(3, "Name your champion", render.TitleStyle)
		g.renderer.CenterText(5, string(buf)+"_", render.NormalStyle)
		g.renderer.CenterText(7, "[Enter] Accept   [Esc] Back", render.DimStyle)
		g.renderer.Show()

		ev := g.pollKey()
		if ev == nil {
			continue
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			return cleanName(string(buf)), true
		case tcell.KeyEscape:
			return "", false
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tcell.KeyRune:
			if len(buf) < maxNameLength {
				buf = append(buf, ev.Rune())
			}
		}
	}
}

// cleanName trims whitespace and falls back to a default name.
func cleanName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultName
	}
	return s
}
