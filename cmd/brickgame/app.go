package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-brickgame/internal/audio"
	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/platform/console"
	"github.com/vovakirdan/tui-brickgame/internal/platform/tui"
	"github.com/vovakirdan/tui-brickgame/internal/registry"
	"github.com/vovakirdan/tui-brickgame/internal/storage"
)

const (
	backendTUI   = "tui"
	backendTcell = "tcell"
)

// app holds everything the commands share. store and sounds are nil when
// they could not be opened; the games run without them.
type app struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	store   *storage.Store
	sounds  *audio.Player
	logger  *log.Logger
	logFile *os.File
}

// newApp loads the configuration and opens the optional services.
func newApp() (*app, error) {
	if flagBackend != backendTUI && flagBackend != backendTcell {
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTUI, backendTcell)
	}

	a := &app{runtime: core.DefaultConfig()}
	a.runtime.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		a.runtime.ScreenW = w
		a.runtime.ScreenH = h
	}

	if err := a.openLog(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		a.close()
		return nil, err
	}
	preset := cfg.Difficulty.Preset
	if flagDifficulty != "" {
		if preset, err = config.ParsePreset(flagDifficulty); err != nil {
			a.close()
			return nil, err
		}
	}
	config.ApplyPreset(&cfg, preset)
	a.cfg = cfg

	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		a.store = store
	}

	if flagSound || cfg.Audio.Enabled {
		p := audio.NewPlayer(cfg.Audio, a.logger)
		if err := p.Init(); err != nil {
			a.logger.Warn("sound disabled", "error", err)
		} else {
			a.sounds = p
		}
	}

	a.logger.Debug("started", "backend", flagBackend, "difficulty", preset, "sound", a.sounds != nil)
	return a, nil
}

func (a *app) openLog() error {
	var w io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		w = f
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "brickgame",
		Level:           level,
	})
	return nil
}

func (a *app) close() {
	if a.sounds != nil {
		a.sounds.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("could not close scores database", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// play runs one game with cfg on the selected backend.
func (a *app) play(id core.GameID, cfg config.Config) (backToMenu bool, err error) {
	rules, err := registry.Create(id, cfg)
	if err != nil {
		return false, err
	}

	hold := time.Duration(cfg.Input.HoldTimeoutMS) * time.Millisecond
	a.logger.Info("playing", "game", id, "difficulty", cfg.Difficulty.Preset)

	if flagBackend == backendTcell {
		opts := console.Options{Logger: a.logger, Seed: a.runtime.Seed, HoldTimeout: hold}
		if a.store != nil {
			opts.Scores, opts.History = a.store, a.store
		}
		if a.sounds != nil {
			opts.Sounds = a.sounds
		}
		return console.Play(rules, opts)
	}

	opts := tui.Options{Logger: a.logger, Seed: a.runtime.Seed, HoldTimeout: hold}
	if a.store != nil {
		opts.Scores, opts.History = a.store, a.store
	}
	if a.sounds != nil {
		opts.Sounds = a.sounds
	}
	return tui.Run(rules, opts)
}
