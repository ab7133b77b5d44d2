package game

import (
	"arena-rpg/internal/action"
	"arena-rpg/internal/battle"
	"arena-rpg/internal/render"
	"arena-rpg/internal/save"
	"arena-rpg/internal/session"
	"errors"
	"fmt"
	"strings"
)

const battleHints = "[a] Attack  [s] Special  [d] Defend  [b] Block  [i] Item  [y] Yield"

// fightRound plays one battle to its end, settles it and runs the
// post-battle reward screens.
func (g *Game) fightRound() {
	b, err := g.sess.StartBattle(g.rng)
	if err != nil {
		g.addMessage("No challenger answers: " + err.Error())
		return
	}
	g.addMessage(fmt.Sprintf("%s enters the arena!", b.Monster.Name))

	for !b.Finished() {
		if !b.CurrentTurn().IsPlayerTurn() {
			g.monsterTurn(b)
			continue
		}
		g.drawBattle(b)
		ev := g.pollKey()
		if ev == nil {
			continue
		}
		cmd := keyToCommand(ev, true)
		if cmd == CmdItem {
			id, ok := g.chooseItem(b)
			if !ok {
				continue
			}
			g.playerItem(b, id)
			continue
		}
		g.playerTurn(b, cmd)
	}

	report := g.sess.FinishBattle(b, g.rng)
	g.logBattle(b, report)
	g.announce(b, report)
	g.waitForKey(b)

	if report.Outcome == battle.OutcomeWon {
		g.runPowerUpChoice()
	}
	if g.sess.PendingStatPoints() > 0 || len(g.sess.PendingPerkChoices()) > 0 {
		g.runLevelUp()
	}
}

// playerTurn builds and applies the player's action for cmd, then ends the
// turn. It reports false when cmd is not a battle action.
func (g *Game) playerTurn(b *battle.Battle, cmd Command) bool {
	a, err := playerAction(b, cmd)
	if err != nil {
		return false
	}
	return g.act(b, a)
}

// playerItem uses one unit of itemID on the monster's side of the field.
func (g *Game) playerItem(b *battle.Battle, itemID string) bool {
	a, err := action.NewItem(b.Player, b.Monster, itemID)
	if err != nil {
		return false
	}
	return g.act(b, a)
}

func (g *Game) act(b *battle.Battle, a action.Action) bool {
	turn := b.CurrentTurn()
	res, err := b.Act(a, g.cat)
	if err != nil {
		g.logger.Debug("action rejected", "action", a.Type.String(), "err", err)
		return false
	}
	g.addMessage(g.describePlayer(a, res, b))
	turn.End()
	return true
}

// errNotBattleCommand is returned by playerAction for non-battle commands.
var errNotBattleCommand = errors.New("game: not a battle command")

// playerAction maps a battle command to an action for the player's turn.
func playerAction(b *battle.Battle, cmd Command) (action.Action, error) {
	p, m := b.Player, b.Monster
	switch cmd {
	case CmdAttack:
		return action.NewAttack(p, m, action.BaseDamage(p, m))
	case CmdSpecial:
		return action.NewSpecialAttack(p, m)
	case CmdDefend:
		return action.NewDefend(p)
	case CmdBlock:
		return action.NewBlock(p)
	case CmdYield:
		return action.NewYield(p, m)
	}
	return action.Action{}, errNotBattleCommand
}

// monsterTurn lets the monster act and hands the turn back.
func (g *Game) monsterTurn(b *battle.Battle) {
	turn := b.CurrentTurn()
	mv, err := turn.Execute(g.rng, g.cat)
	if err != nil {
		g.logger.Debug("monster turn skipped", "err", err)
		turn.End()
		return
	}
	g.addMessage(describeMonster(b.Monster.Name, mv))
	turn.End()
}

func (g *Game) describePlayer(a action.Action, res action.Result, b *battle.Battle) string {
	switch a.Type {
	case action.Attack:
		return fmt.Sprintf("You hit %s for %d.", b.Monster.Name, res.Damage)
	case action.SpecialAttack:
		return fmt.Sprintf("You unleash a special attack on %s for %d!", b.Monster.Name, res.Damage)
	case action.Defend:
		return "You raise your guard."
	case action.Block:
		return "You brace to block."
	case action.Yield:
		return "You yield the fight."
	case action.Item:
		name := a.ItemID
		if def, ok := g.cat.Item(a.ItemID); ok {
			name = def.Name
		}
		switch {
		case !res.ItemUsed:
			return fmt.Sprintf("The %s does nothing.", name)
		case res.Healed > 0:
			return fmt.Sprintf("You use the %s (+%d HP).", name, res.Healed)
		case res.Damage > 0:
			return fmt.Sprintf("The %s hits %s for %d.", name, b.Monster.Name, res.Damage)
		}
		return fmt.Sprintf("You use the %s.", name)
	}
	return ""
}

func describeMonster(name string, mv battle.MonsterMove) string {
	var msg string
	switch mv.Action.Type {
	case action.Defend:
		msg = fmt.Sprintf("%s hunkers down.", name)
	case action.SpecialAttack:
		msg = fmt.Sprintf("%s lands a special attack for %d!", name, mv.Result.Damage)
	default:
		msg = fmt.Sprintf("%s hits you for %d.", name, mv.Result.Damage)
	}
	if mv.Sound != "" {
		msg += " *" + strings.ReplaceAll(mv.Sound, "_", " ") + "*"
	}
	return msg
}

// chooseItem lists the player's inventory and returns the picked item id.
func (g *Game) chooseItem(b *battle.Battle) (string, bool) {
	slots := b.Player.Player.Inventory.Slots()
	if len(slots) == 0 {
		g.addMessage("Your pack is empty.")
		return "", false
	}
	for {
		g.drawBattle(b)
		y := 14
		for i, s := range slots {
			name := s.ItemID
			if def, ok := g.cat.Item(s.ItemID); ok {
				name = def.Name
			}
			g.renderer.DrawText(4, y+i, fmt.Sprintf("[%d] %s ×%d", i+1, name, s.Quantity), render.NormalStyle)
		}
		g.renderer.DrawText(4, y+len(slots), "[Esc] Back", render.DimStyle)
		g.renderer.Show()

		ev := g.pollKey()
		if ev == nil {
			continue
		}
		if idx := chooseIndex(ev); idx >= 0 && idx < len(slots) {
			return slots[idx].ItemID, true
		}
		if keyToCommand(ev, true) == CmdBack {
			return "", false
		}
	}
}

func (g *Game) drawBattle(b *battle.Battle) {
	g.renderer.Clear()
	turn := b.CurrentTurn()
	banner := b.Monster.Name + " is acting..."
	if turn.IsPlayerTurn() {
		banner = "Your move"
	}
	g.renderer.DrawBattle(b.Player, b.Monster, turn.Number, banner, battleHints)
	g.renderer.DrawHUD(g.status(), g.messages)
	g.renderer.Show()
}

// announce adds the outcome and rewards of a settled battle to the log.
func (g *Game) announce(b *battle.Battle, r session.BattleReport) {
	switch r.Outcome {
	case battle.OutcomeWon:
		g.addMessage(fmt.Sprintf("%s falls! +%d gold, +%d XP.", b.Monster.Name, r.Gold, r.Level.XPGained))
		if r.Healed > 0 {
			g.addMessage(fmt.Sprintf("You catch your breath (+%d HP).", r.Healed))
		}
		if r.Level.LeveledUp() {
			g.addMessage(fmt.Sprintf("Level up! You are now level %d.", r.Level.ToLevel))
		}
	case battle.OutcomeLost:
		g.addMessage("You are carried from the sand. The healers patch you up.")
	case battle.OutcomeYielded:
		g.addMessage("You leave the arena empty-handed.")
	}
}

func (g *Game) logBattle(b *battle.Battle, r session.BattleReport) {
	save.AppendRunLog(g.runLog, save.RunLog{
		SessionID:  g.sess.ID,
		Time:       g.now(),
		Class:      g.sess.Player.Player.Class,
		Monster:    b.Monster.Monster.TemplateID,
		Outcome:    r.Outcome.String(),
		Turns:      b.Turns(),
		ArenaLevel: r.ArenaLevel,
		Level:      g.sess.Player.Player.Level,
		Gold:       r.Gold,
		XP:         r.Level.XPGained,
	}, g.logger)
}

// waitForKey shows the final battle frame until a key is pressed.
func (g *Game) waitForKey(b *battle.Battle) {
	for {
		g.renderer.Clear()
		turn := b.CurrentTurn()
		g.renderer.DrawBattle(b.Player, b.Monster, turn.Number, "Battle over: "+b.Outcome().String(), "[space] Continue")
		g.renderer.DrawHUD(g.status(), g.messages)
		g.renderer.Show()
		if g.pollKey() != nil {
			return
		}
	}
}
