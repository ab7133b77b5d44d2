package game

import (
	"arena-rpg/internal/powerup"
	"arena-rpg/internal/render"
	"fmt"
)

// runPowerUpChoice offers the post-victory power-ups and collects the one
// picked. Esc skips the reward.
func (g *Game) runPowerUpChoice() {
	offers := g.sess.OfferPowerUps(g.rng)
	if len(offers) == 0 {
		return
	}
	selected := 0
	for {
		g.drawPowerUpChoice(offers, selected)
		ev := g.pollKey()
		if ev == nil {
			continue
		}
		if idx := chooseIndex(ev); idx >= 0 && idx < len(offers) {
			g.collect(offers[idx])
			return
		}
		switch keyToCommand(ev, false) {
		case CmdUp:
			selected = (selected - 1 + len(offers)) % len(offers)
		case CmdDown:
			selected = (selected + 1) % len(offers)
		case CmdConfirm:
			g.collect(offers[selected])
			return
		case CmdBack:
			return
		}
	}
}

func (g *Game) collect(p *powerup.PowerUp) {
	before := g.sess.PowerUps.Rank(p.Key)
	g.sess.Collect(p)
	switch {
	case p.Instant():
		g.addMessage(fmt.Sprintf("%s: gold pouch collected.", p.Name))
	case before > 0:
		g.addMessage(fmt.Sprintf("%s upgraded to rank %s.", p.Name, g.sess.PowerUps.Rank(p.Key)))
	default:
		g.addMessage(fmt.Sprintf("%s acquired.", p.Name))
	}
}

func (g *Game) drawPowerUpChoice(offers []*powerup.PowerUp, selected int) {
	g.renderer.Clear()
	items := make([]render.MenuItem, len(offers))
	for i, p := range offers {
		label := fmt.Sprintf("[%d] %s (%s)", i+1, p.Name, p.Rarity)
		if owned := g.sess.PowerUps.Rank(p.Key); owned > 0 && owned < powerup.MaxRank {
			label += "  upgrade"
		}
		items[i] = render.MenuItem{
			Label:  label,
			Detail: p.Describe(g.sess.ArenaLevel),
			Color:  render.RarityColor(int(p.Rarity)),
		}
	}
	g.renderer.DrawMenu(render.Menu{
		Title:    "✨ Spoils of Victory ✨",
		Subtitle: "Choose one",
		Items:    items,
		Selected: selected,
		Hint:     "[1-3] Pick   [Enter] Confirm   [Esc] Skip",
	})
	g.renderer.DrawHUD(g.status(), g.messages)
	g.renderer.Show()
}
