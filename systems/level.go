package systems

import (
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills the level's walls and restart zones.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), cfg.Gray, false)
	})
	tags.RestartZone.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), cfg.Red, false)
	})
}

// cameraOffset returns the translation from world to screen coordinates.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}
