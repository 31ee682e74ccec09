package systems

import (
	"image/color"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and draws the character's attack
// radius and ground check. Toggled with the Debug action.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvCharacter):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvEnemy):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvRestart):
				c = color.RGBA{255, 128, 0, 255}
			}
			vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		combat := components.Combat.Get(e)
		vector.StrokeCircle(screen,
			float32(combat.Anchor.X+camX), float32(combat.Anchor.Y+camY),
			float32(combat.Radius), 1, cfg.Yellow, false)

		o := components.Object.Get(e)
		groundColor := cfg.Red
		if components.Character.Get(e).Grounded {
			groundColor = cfg.Green
		}
		footX := float32(o.CenterX() + camX)
		footY := float32(o.Y + o.H + camY)
		vector.StrokeLine(screen, footX, footY, footX, footY+float32(cfg.Character.GroundCheck)+2, 1, groundColor, false)
	})
}
