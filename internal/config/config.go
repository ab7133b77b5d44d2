// Package config resolves command-line flags and ARENA_* environment
// variables into the settings the game starts with.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvSeed     = "ARENA_SEED"
	EnvCatalog  = "ARENA_CATALOG"
	EnvSaveDir  = "ARENA_SAVE_DIR"
	EnvSlot     = "ARENA_SLOT"
	EnvLogLevel = "ARENA_LOG_LEVEL"
	EnvLogFile  = "ARENA_LOG_FILE"
)

// Config is the resolved startup configuration.
type Config struct {
	Seed        int64  // 0 means seed from the clock
	CatalogPath string // empty means the embedded catalog
	SaveDir     string // empty means $XDG_DATA_HOME/arena-rpg/saves
	Slot        int
	LogLevel    slog.Level
	LogFile     string // empty discards logs; the terminal belongs to the UI
}

// Load parses args (without the program name). Flags win over environment
// variables, which win over defaults.
func Load(args []string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Config{Slot: 1, LogLevel: slog.LevelInfo}

	var errs []error
	if v := getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		}
		cfg.Seed = n
	}
	if v := getenv(EnvSlot); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSlot, err))
		}
		cfg.Slot = n
	}
	cfg.CatalogPath = getenv(EnvCatalog)
	cfg.SaveDir = getenv(EnvSaveDir)
	cfg.LogFile = getenv(EnvLogFile)
	level := getenv(EnvLogLevel)
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("arena-rpg", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 = time based)")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "path to a catalog YAML file")
	fs.StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "directory holding save slots")
	fs.IntVar(&cfg.Slot, "slot", cfg.Slot, "save slot to load or create")
	fs.StringVar(&level, "log-level", level, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return Config{}, fmt.Errorf("log level %q: %w", level, err)
		}
	}
	if cfg.Slot < 1 {
		return Config{}, fmt.Errorf("slot must be positive, got %d", cfg.Slot)
	}
	return cfg, nil
}

// ResolvedSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c Config) ResolvedSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}

// NewLogger builds a text slog.Logger at the configured level. It writes to
// LogFile when set and discards output otherwise. The returned close func
// is never nil.
func (c Config) NewLogger() (*slog.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closer := func() error { return nil }
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel})
	return slog.New(h), closer, nil
}
