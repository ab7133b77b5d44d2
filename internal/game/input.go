package game

import "github.com/gdamore/tcell/v2"

// Command is a player-requested game command.
type Command uint8

const (
	CmdNone Command = iota
	CmdAttack
	CmdSpecial
	CmdDefend
	CmdBlock
	CmdItem
	CmdYield
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdConfirm
	CmdBack
	CmdQuit
	CmdChoose // digit keys; see chooseIndex
	CmdFight
	CmdShop
	CmdLevelUp
)

// battleKeys maps runes to commands during a player turn.
var battleKeys = map[rune]Command{
	'a': CmdAttack,
	's': CmdSpecial,
	'd': CmdDefend,
	'b': CmdBlock,
	'i': CmdItem,
	'y': CmdYield,
	'q': CmdYield,
	' ': CmdConfirm,
}

// menuKeys maps runes to commands outside battle.
var menuKeys = map[rune]Command{
	'f': CmdFight,
	's': CmdShop,
	'l': CmdLevelUp,
	'k': CmdUp,
	'j': CmdDown,
	'h': CmdLeft,
	'+': CmdRight,
	'-': CmdLeft,
	'q': CmdQuit,
	' ': CmdConfirm,
}

// keyToCommand maps a tcell key event to a command. inBattle selects the
// battle key set.
func keyToCommand(ev *tcell.EventKey, inBattle bool) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyEnter:
		return CmdConfirm
	case tcell.KeyEscape:
		return CmdBack
	case tcell.KeyRune:
	default:
		return CmdNone
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r >= '1' && r <= '9' {
		return CmdChoose
	}
	if inBattle {
		return battleKeys[r]
	}
	return menuKeys[r]
}

// chooseIndex returns the zero-based index of a digit key, or -1.
func chooseIndex(ev *tcell.EventKey) int {
	r := ev.Rune()
	if ev.Key() != tcell.KeyRune || r < '1' || r > '9' {
		return -1
	}
	return int(r - '1')
}
