package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

func main() {
	profileName := flag.String("profile", "default", "profile to show (name in the profile directory, .yaml optional)")
	dir := flag.String("dir", "", "directory overriding the embedded profiles; watched for changes")
	gamepad := flag.Int("gamepad", 0, "index of the connected gamepad to read")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "axisviz: logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	canCopy := true
	if err := clipboard.Init(); err != nil {
		logger.Warnw("axisviz: clipboard unavailable", "error", err)
		canCopy = false
	}

	game, err := NewGame(Options{
		Profile:   *profileName,
		Dir:       *dir,
		Gamepad:   *gamepad,
		Clipboard: canCopy,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatalw("axisviz: start", "error", err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("axisviz")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatalw("axisviz: run", "error", err)
	}
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
