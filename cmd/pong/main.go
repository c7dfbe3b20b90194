package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/game"
	"golang.org/x/term"
)

var (
	configFlag = flag.String("config", "pong.toml", "Path to TOML config file, missing file uses defaults")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/pong.log")
)

func main() {
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "pong: stdout is not a terminal")
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Debug = true
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\nPONG CRASHED: %v\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	sounds := audio.NewSoundManager(&cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engCfg := engine.DefaultConfig()
	engCfg.HoldWindow = cfg.Input.HoldWindow()
	engCfg.ScreenshotDir = cfg.Screenshot.Dir

	eng := engine.New(screen, engCfg)
	eng.SetCrashHandler(crash)

	err = eng.Run(ctx, func() (engine.State, error) {
		return game.Load(cfg.AssetFS(), cfg.Assets, sounds)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
