package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/input"
	"github.com/automoto/shadowstep/leveldata"
	"github.com/automoto/shadowstep/systems"
	"github.com/automoto/shadowstep/systems/factory"
	"github.com/automoto/shadowstep/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// WorldScene runs one level. When the death sequence asks for a reload the
// level is rebuilt from scratch in a fresh world.
type WorldScene struct {
	ecs    *ecs.ECS
	level  *leveldata.Level
	source input.Source
	hud    *ui.HUD
	log    *zap.Logger
	once   sync.Once

	// decorate adds the renderers to each freshly built world.
	decorate func(*ecs.ECS)
	reloads  int
}

func NewWorldScene(level *leveldata.Level, source input.Source, log *zap.Logger) *WorldScene {
	if log == nil {
		log = zap.NewNop()
	}
	return &WorldScene{level: level, source: source, log: log}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.step()
	ws.hud.Update()
}

// step runs one simulation tick and swaps in a rebuilt world when the death
// sequence asked for one.
func (ws *WorldScene) step() {
	ws.ecs.Update()

	if req, ok := systems.ReloadRequested(ws.ecs.World); ok {
		ws.reloads++
		ws.log.Info("reloading level",
			zap.String("level", ws.level.Name),
			zap.String("reason", req.Reason),
			zap.Int("reloads", ws.reloads))
		ws.build()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.hud = ui.NewHUD()
	ws.decorate = ws.addRenderers
	ws.build()
}

func (ws *WorldScene) addRenderers(e *ecs.ECS) {
	e.AddRenderer(cfg.LayerDefault, systems.DrawLevel)
	e.AddRenderer(cfg.LayerDefault, systems.DrawEnemies)
	e.AddRenderer(cfg.LayerDefault, systems.DrawCharacter)
	e.AddRenderer(cfg.LayerForeground, systems.DrawMarkers)
	e.AddRenderer(cfg.LayerForeground, systems.DrawDebug)
	e.AddRenderer(cfg.LayerForeground, systems.NewDrawHUD(ws.hud))
	e.AddRenderer(cfg.LayerForeground, systems.DrawPause)
}

// build replaces the current world with a freshly populated one.
func (ws *WorldScene) build() {
	e := ecs.NewECS(donburi.NewWorld())

	systems.AddGameplaySystems(e, ws.source)
	if ws.decorate != nil {
		ws.decorate(e)
	}

	if _, err := factory.BuildLevel(e, ws.level); err != nil {
		ws.log.Fatal("failed to build level", zap.Error(err))
	}
	ws.ecs = e
}
