package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/shadowstep/assets"
	"github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/input"
	"github.com/automoto/shadowstep/leveldata"
	"github.com/automoto/shadowstep/scenes"
	"github.com/automoto/shadowstep/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(level *leveldata.Level, logger *zap.Logger) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(level, input.NewKeyboard(), logger),
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
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func pickLevel(levels []*leveldata.Level, name string) (*leveldata.Level, bool) {
	if name == "" {
		return levels[0], true
	}
	for _, l := range levels {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding tuning values")
	levelName := flag.String("level", "", "Level to load (defaults to the first)")
	verbose := flag.Bool("debug", false, "Development logging")
	overlay := flag.Bool("overlay", false, "Start with the debug overlay on")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	config.Debug.Verbose = *verbose
	config.Debug.Overlay = *overlay

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger.Named("systems"))

	level, ok := pickLevel(assets.MustLoadLevels(), *levelName)
	if !ok {
		logger.Fatal("unknown level", zap.String("level", *levelName))
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Shadowstep")
	ebiten.SetTPS(config.C.TickRate)

	if err := ebiten.RunGame(NewGame(level, logger.Named("scene"))); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
