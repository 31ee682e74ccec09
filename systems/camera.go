package systems

import (
	"math"

	"github.com/automoto/shadowstep/components"
	"github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/tags"
	"github.com/yohamta/donburi/ecs"
)

// followSmoothing is the share of the remaining distance the camera covers per tick.
const followSmoothing = 0.15

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	characterEntry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(characterEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level
	if level == nil {
		return
	}

	targetX, targetY := clampCamera(obj.CenterX(), obj.CenterY(), float64(level.Width), float64(level.Height))

	camera.Position.X += (targetX - camera.Position.X) * followSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * followSmoothing
}

// clampCamera keeps the screen inside the level. A level smaller than the
// screen is centered.
func clampCamera(x, y, levelWidth, levelHeight float64) (float64, float64) {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2
	return clampAxis(x, halfW, levelWidth-halfW), clampAxis(y, halfH, levelHeight-halfH)
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
