// Package game runs the arena in a terminal: class selection, battles,
// post-battle rewards, level-ups and the shop, saving between rounds.
package game

import (
	"arena-rpg/internal/catalog"
	"arena-rpg/internal/render"
	"arena-rpg/internal/save"
	"arena-rpg/internal/session"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
)

const maxMessages = 50

// Options configures a Game.
type Options struct {
	Catalog   *catalog.Catalog
	Store     *save.Store
	Slot      int
	Seed      int64
	RunLogDir string // empty uses the default data dir
	Logger    *slog.Logger
}

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cat      *catalog.Catalog
	store    *save.Store
	sess     *session.Session
	rng      *rand.Rand
	logger   *slog.Logger
	slot     int
	runLog   string
	messages []string
	now      func() time.Time
	started  time.Time
}

// New creates a Game on a fresh terminal screen.
func New(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return newGame(screen, opts), nil
}

func newGame(screen tcell.Screen, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cat:      opts.Catalog,
		store:    opts.Store,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		logger:   logger,
		slot:     opts.Slot,
		runLog:   opts.RunLogDir,
		now:      time.Now,
	}
}

// Run loads or creates the character for the configured slot and plays
// until the player quits. The session is saved after every round and on exit.
func (g *Game) Run() error {
	defer g.screen.Fini()

	ok, err := g.loadOrCreate()
	if err != nil || !ok {
		return err
	}
	g.started = g.now()
	g.addMessage(fmt.Sprintf("Welcome to the arena, %s.", g.sess.Player.Name))

	for {
		switch g.runCamp() {
		case CmdFight:
			g.fightRound()
			if err := g.saveGame(); err != nil {
				g.addMessage("Save failed: " + err.Error())
			}
		case CmdQuit:
			return g.saveGame()
		}
	}
}

// loadOrCreate resumes the slot's save or starts class selection when the
// slot is empty. It returns false if the player quit during selection.
func (g *Game) loadOrCreate() (bool, error) {
	d, err := g.store.Load(g.slot)
	switch {
	case err == nil:
		s, err := session.LoadFromSaveData(d, g.cat, g.logger)
		if err != nil {
			return false, err
		}
		g.sess = s
		return true, nil
	case errors.Is(err, save.ErrNotFound):
	default:
		return false, err
	}

	opts, ok := g.runClassSelect()
	if !ok {
		return false, nil
	}
	opts.Slot = g.slot
	opts.Now = g.now()
	opts.Logger = g.logger
	s, err := session.New(g.cat, opts)
	if err != nil {
		return false, err
	}
	g.sess = s
	return true, nil
}

// saveGame folds elapsed time into the session and writes it to its slot.
func (g *Game) saveGame() error {
	if g.sess == nil {
		return nil
	}
	now := g.now()
	if !g.started.IsZero() {
		g.sess.Tick(now.Sub(g.started))
	}
	g.started = now
	if err := g.store.Save(g.sess.GetSaveData(now)); err != nil {
		g.logger.Warn("save failed", "slot", g.slot, "err", err)
		return err
	}
	g.sess.MarkSaved(now)
	return nil
}

// status builds the HUD view of the current session.
func (g *Game) status() render.Status {
	p := g.sess.Player
	var owned []string
	for _, pu := range g.sess.PowerUps.All() {
		owned = append(owned, fmt.Sprintf("%s %s", pu.Name, pu.Rank))
	}
	return render.Status{
		Player:     p,
		Attributes: g.sess.ComputeEffectiveAttributes(),
		ArenaLevel: g.sess.ArenaLevel,
		XPToNext:   g.sess.Progression().XPToNextLevel(p.Player.Experience),
		PowerUps:   owned,
	}
}

// pollKey blocks until a key arrives, syncing the screen on resize.
func (g *Game) pollKey() *tcell.EventKey {
	for {
		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			return nil
		case *tcell.EventKey:
			return ev
		case nil:
			return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
		}
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
