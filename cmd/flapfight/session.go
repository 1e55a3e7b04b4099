package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/flapfight/internal/config"
	"github.com/vovakirdan/flapfight/internal/core"
	"github.com/vovakirdan/flapfight/internal/games/fight"
	"github.com/vovakirdan/flapfight/internal/games/flappy"
	"github.com/vovakirdan/flapfight/internal/games/flappy2"
	"github.com/vovakirdan/flapfight/internal/platform/tui"
	"github.com/vovakirdan/flapfight/internal/records"
	"github.com/vovakirdan/flapfight/internal/registry"
	"github.com/vovakirdan/flapfight/internal/storage"
)

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. A failure only disables history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, history disabled", "path", flagDBPath, "err", err)
		return nil
	}
	logger.Debug("scores database open", "path", flagDBPath)
	return store
}

// openRecords returns the flappy2 records store, falling back to memory.
func openRecords() records.Store {
	store, err := records.Open(flagRecords, appName)
	if err != nil {
		logger.Warn("could not open records, they will not persist", "err", err)
		return &records.MemoryStore{}
	}
	return store
}

// configureGame passes the config path and difficulty preset to a game
// before it is created. The config is loaded once here so a bad file is
// reported instead of silently replaced by defaults.
func configureGame(gameID, path, difficulty string) error {
	if difficulty != "" {
		if _, ok := config.ParsePreset(difficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
	}

	var err error
	switch gameID {
	case "fight":
		_, err = config.LoadFight(path)
		fight.SetConfigPath(path)
		fight.SetDifficultyPreset(difficulty)
	case "flappy":
		_, err = config.LoadFlappy(path)
		flappy.SetConfigPath(path)
		flappy.SetDifficultyPreset(difficulty)
	case "flappy2":
		_, err = config.LoadFlappy2(path)
		flappy2.SetConfigPath(path)
		flappy2.SetDifficultyPreset(difficulty)
		flappy2.SetRecordsStore(openRecords())
	}
	return err
}

// playGame runs one game and logs whatever went wrong while the alternate
// screen was up.
func playGame(gameID string, cfg core.RuntimeConfig, store *storage.Store, hold int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate, "hold", hold)
	errs, runErr := tui.Run(game, cfg, tui.Options{Store: store, Hold: hold})
	for _, e := range errs {
		logger.Warn("problem during play", "game", gameID, "err", e)
	}
	if runErr != nil {
		return fmt.Errorf("running %s: %w", gameID, runErr)
	}
	return nil
}

// requireGame fails with a hint when gameID is not registered.
func requireGame(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flapfight list' to see available games", gameID)
	}
	return nil
}
