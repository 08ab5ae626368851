package main

import (
	"flag"
	"os"

	cfg "github.com/automoto/hoh/config"
	"github.com/automoto/hoh/fonts"
	"github.com/automoto/hoh/logging"
	"github.com/automoto/hoh/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		scene: scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	configDir := flag.String("config", ".", "directory containing hoh.yaml")
	logLevel := flag.String("log-level", "", "override log level (trace, debug, info, warn, error)")
	debug := flag.Bool("debug", false, "start with the debug overlay enabled")
	flag.Parse()

	// Log with defaults until the config says otherwise.
	logging.Setup(os.Stderr, cfg.Log.Level)

	if err := cfg.Load(*configDir); err != nil {
		log.Fatal().Err(err).Str("dir", *configDir).Msg("failed to load config")
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *debug {
		cfg.Debug.Overlay = true
	}
	logging.Setup(os.Stderr, cfg.Log.Level)

	if used := cfg.Used(); used != "" {
		log.Info().Str("file", used).Msg("loaded config")
	} else {
		log.Info().Msg("no config file, using defaults")
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle("HOH")
	ebiten.SetTPS(cfg.C.TPS)

	scene, err := scenes.NewCharacterScene()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up scene")
	}

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
