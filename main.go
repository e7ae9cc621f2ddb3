package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/game"
)

func newLogger(cfg game.Config) (*logrus.Logger, func(), error) {
	log := logrus.New()
	level, err := cfg.LoggerLevel()
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	// The terminal belongs to the board, so logs go to a file or nowhere.
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, func() { f.Close() }, nil
}

func run() error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}
	opts, err := cfg.BoardOptions()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	observers := game.MultiObserver{}
	if cfg.Sound {
		sound := game.NewSoundObserver(log)
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.WithError(err).Warn("audio initialization failed")
		} else {
			defer sound.Close()
			observers = append(observers, sound)
		}
	}

	host := &game.TerminalHost{}
	renderer := game.NewRenderer()
	service, err := game.NewMinesweeperService(opts, renderer,
		game.WithObserver(observers),
		game.WithHost(host),
		game.WithLogger(log),
	)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"width":  opts.MapWidth,
		"height": opts.MapHeight,
		"bombs":  opts.BombCount,
	}).Info("starting minesweeper")

	controller := game.NewGameController(service, renderer, host, log)
	return controller.StartGame()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}
}
