package systems

import (
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

const pauseLabel = "PAUSED"

var pauseFace text.Face

// UpdatePause toggles pause on a Pause press. It must run after the input
// system and before the systems wrapped with WithGameplayChecks.
func UpdatePause(ecs *ecs.ECS) {
	e, ok := tags.Character.First(ecs.World)
	if !ok {
		return
	}
	if !components.Input.Get(e).Action(cfg.ActionPause).JustPressed {
		return
	}
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
	logger.Info("pause toggled", zap.Bool("paused", pause.IsPaused))
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}
	if pauseFace == nil {
		pauseFace = text.NewGoXFace(basicfont.Face7x13)
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	w, h := text.Measure(pauseLabel, pauseFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((width-w)/2, (height-h)/2)
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, pauseLabel, pauseFace, op)
}

// WithGameplayChecks wraps a system to skip execution when paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

func paused(ecs *ecs.ECS) bool {
	ent, ok := components.Pause.First(ecs.World)
	return ok && components.Pause.Get(ent).IsPaused
}
