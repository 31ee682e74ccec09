package systems

import (
	"github.com/automoto/shadowstep/components"
	"github.com/automoto/shadowstep/tags"
	"github.com/automoto/shadowstep/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawHUD returns a renderer that copies the character's bar fills into
// the HUD widgets and draws them in screen space.
func NewDrawHUD(hud *ui.HUD) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		e, ok := tags.Character.First(ecs.World)
		if !ok {
			return
		}
		hud.Sync(*components.HUD.Get(e))
		hud.Draw(screen)
	}
}
