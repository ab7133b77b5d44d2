package game

import (
	"arena-rpg/internal/render"
	"arena-rpg/internal/session"
	"fmt"
)

// shopEntry is a purchasable line: an item or a perk.
type shopEntry struct {
	itemID string
	perkID string
	label  string
	price  int
}

// runCamp is the between-battles menu. It returns CmdFight or CmdQuit.
func (g *Game) runCamp() Command {
	for {
		g.drawCamp()
		ev := g.pollKey()
		if ev == nil {
			continue
		}
		switch keyToCommand(ev, false) {
		case CmdFight, CmdConfirm:
			return CmdFight
		case CmdShop:
			g.runShop()
		case CmdLevelUp:
			g.runLevelUp()
		case CmdQuit, CmdBack:
			return CmdQuit
		}
	}
}

func (g *Game) drawCamp() {
	g.renderer.Clear()
	p := g.sess.Player
	g.renderer.CenterText(1, "🏕️  Between Bouts", render.TitleStyle)
	g.renderer.DrawText(2, 3, fmt.Sprintf("%s the %s, level %d", p.Name, p.Player.Class, p.Player.Level), render.NormalStyle)
	g.renderer.DrawText(2, 4, fmt.Sprintf("Next opponent rank: %d", session.MonsterRank(g.sess.ArenaLevel)), render.DimStyle)
	y := 6
	for _, s := range p.Player.Inventory.Slots() {
		name := s.ItemID
		if def, ok := g.cat.Item(s.ItemID); ok {
			name = def.Name
		}
		g.renderer.DrawText(4, y, fmt.Sprintf("%s ×%d", name, s.Quantity), render.NormalStyle)
		y++
	}
	inv := p.Player.Inventory
	g.renderer.DrawText(2, y, fmt.Sprintf("Pack: %d/%d slots, stacks of %d", inv.Len(), inv.MaxSlots(), inv.MaxStackSize()), render.DimStyle)

	hint := "[f/Enter] Fight   [s] Shop   [q] Save & quit"
	if g.sess.PendingStatPoints() > 0 || len(g.sess.PendingPerkChoices()) > 0 {
		hint = "[f/Enter] Fight   [s] Shop   [l] Level up!   [q] Save & quit"
	}
	g.renderer.DrawText(2, y+2, hint, render.GoldStyle)
	g.renderer.DrawHUD(g.status(), g.messages)
	g.renderer.Show()
}

// shopEntries lists catalog items, then perks the player is eligible to buy.
func (g *Game) shopEntries() []shopEntry {
	var out []shopEntry
	for _, it := range g.cat.Items() {
		if it.Price <= 0 {
			continue
		}
		out = append(out, shopEntry{itemID: it.ID, label: it.Name + ": " + it.Description, price: it.Price})
	}
	for _, p := range g.sess.EligiblePerks() {
		if p.Price <= 0 {
			continue
		}
		out = append(out, shopEntry{perkID: p.ID, label: "Perk: " + p.Text, price: p.Price})
	}
	return out
}

// runShop sells items and perks until Esc.
func (g *Game) runShop() {
	selected := 0
	for {
		entries := g.shopEntries()
		if len(entries) == 0 {
			g.addMessage("The merchant has nothing for you.")
			return
		}
		selected = min(selected, len(entries)-1)
		g.drawShop(entries, selected)
		ev := g.pollKey()
		if ev == nil {
			continue
		}
		switch keyToCommand(ev, false) {
		case CmdUp:
			selected = (selected - 1 + len(entries)) % len(entries)
		case CmdDown:
			selected = (selected + 1) % len(entries)
		case CmdConfirm:
			g.buy(entries[selected])
		case CmdBack, CmdQuit:
			return
		}
	}
}

func (g *Game) buy(e shopEntry) {
	var ok bool
	if e.perkID != "" {
		ok = g.sess.BuyPerk(e.perkID)
	} else {
		ok = g.sess.BuyItem(e.itemID, 1)
	}
	if ok {
		g.addMessage(fmt.Sprintf("Bought %s for %d gold.", e.label, e.price))
		return
	}
	g.addMessage("You can't buy that right now.")
}

func (g *Game) drawShop(entries []shopEntry, selected int) {
	g.renderer.Clear()
	items := make([]render.MenuItem, len(entries))
	gold := g.sess.Player.Player.Gold
	for i, e := range entries {
		items[i] = render.MenuItem{
			Label:    fmt.Sprintf("%4d💰  %s", e.price, e.label),
			Disabled: e.price > gold,
		}
	}
	g.renderer.DrawMenu(render.Menu{
		Title:    "🛒 Merchant",
		Subtitle: fmt.Sprintf("You have %d gold", gold),
		Items:    items,
		Selected: selected,
		Hint:     "[↑/↓] Browse   [Enter] Buy   [Esc] Leave",
	})
	g.renderer.DrawHUD(g.status(), g.messages)
	g.renderer.Show()
}
