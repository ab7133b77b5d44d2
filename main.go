// arena-rpg is a turn-based arena fighter for the terminal.
//
// Usage:
//
//	arena-rpg [-slot 1] [-seed 42] [-catalog path.yaml] [-save-dir dir] [-log-level info] [-log-file arena.log]
package main

import (
	"arena-rpg/internal/catalog"
	"arena-rpg/internal/config"
	"arena-rpg/internal/game"
	"arena-rpg/internal/save"
	"fmt"
	"os"
	"time"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args, os.Getenv)
	if err != nil {
		return err
	}
	logger, closeLog, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	store, err := save.NewStore(cfg.SaveDir, logger)
	if err != nil {
		return err
	}

	seed := cfg.ResolvedSeed(time.Now())
	logger.Info("starting", "slot", cfg.Slot, "seed", seed, "save_dir", store.Dir())
	g, err := game.New(game.Options{
		Catalog: cat,
		Store:   store,
		Slot:    cfg.Slot,
		Seed:    seed,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	return g.Run()
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
