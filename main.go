package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/thorn/internal/chime"
	"github.com/iburimskiy/thorn/internal/config"
	"github.com/iburimskiy/thorn/internal/game"
	"github.com/iburimskiy/thorn/internal/logger"
)

func main() {
	var (
		preset  = flag.String("preset", "", "load settings from a JSON preset")
		seed    = flag.Int64("seed", -1, "seed for the first generation (random when negative)")
		density = flag.Float64("density", 0, "device pixels per canvas pixel (default from config)")
		verbose = flag.Bool("v", false, "debug logging")
		mute    = flag.Bool("mute", false, "disable sound cues")
	)
	flag.Parse()

	level := logger.ParseLevel(os.Getenv("THORN_LOG_LEVEL"))
	if *verbose {
		level = logger.LevelDebug
	}
	tail := logger.NewTail(os.Stderr, config.LogTailSize)
	log := logger.New(tail, level, "thorn")

	cfg := config.LoadEnv(config.Default())
	if *preset != "" {
		var err error
		if cfg, err = config.LoadFile(*preset, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *density > 0 {
		cfg.Density = *density
	}
	if *mute {
		cfg.Audio = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	player := chime.NewPlayer()
	if cfg.Audio {
		if err := player.Initialize(); err != nil {
			log.Warn("sound cues disabled: %v", err)
		}
	}
	defer player.Close()

	opts := game.Options{Config: cfg, Log: log, Tail: tail, Chime: player}
	if *seed >= 0 {
		opts.Seed = seed
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("The Thorn - Enter: generate, Ctrl+S: save, Esc: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(opts)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("%v", err)
		os.Exit(1)
	}
}
