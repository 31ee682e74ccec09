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

// The character sprite is a small silhouette scaled up to the collision box.
const (
	spriteWidth  = 8
	spriteHeight = 14
)

var (
	drawOp          = &ebiten.DrawImageOptions{}
	characterSprite *ebiten.Image
)

func getCharacterSprite() *ebiten.Image {
	if characterSprite != nil {
		return characterSprite
	}
	img := ebiten.NewImage(spriteWidth, spriteHeight)
	img.Fill(color.White)
	// Eye on the right side shows which way the sprite faces
	vector.FillRect(img, spriteWidth-3, 3, 2, 2, cfg.DarkGray, false)
	characterSprite = img
	return img
}

// DrawCharacter draws the character sprite with its facing and hit flash.
func DrawCharacter(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		anim := components.Animator.Get(e)
		mat := components.MaterialSink.Get(e)
		// No sprite sheet plays them; drop triggers once per frame
		anim.ConsumeTriggers()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		placeSprite(o.X+camX, o.Y+camY, o.W/spriteWidth, o.H/spriteHeight, anim.FlipX)

		r, g, b := float32(cfg.LightBlue.R)/255, float32(cfg.LightBlue.G)/255, float32(cfg.LightBlue.B)/255
		if mat.Current == components.MaterialDamaged {
			// Blend toward white while the flash fades
			k := mat.Intensity
			r, g, b = r+(1-r)*k, g+(1-g)*k, b+(1-b)*k
		}
		if components.Lifecycle.Get(e).Dying {
			r, g, b = r*0.4, g*0.4, b*0.4
		}
		drawOp.ColorScale.Scale(r, g, b, 1)
		screen.DrawImage(getCharacterSprite(), drawOp)
	})
}

// DrawMarkers draws the teleport marker as a translucent copy of the
// character sprite. It is registered on the foreground layer.
func DrawMarkers(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Marker.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		visual := components.MarkerVisual.Get(e)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		// Scale about the marker's feet so it stands where the character stood
		w, h := spriteWidth*visual.ScaleX, spriteHeight*visual.ScaleY
		x := o.X + o.W/2 - w/2
		y := o.Y + o.H - h
		placeSprite(x+camX, y+camY, visual.ScaleX, visual.ScaleY, visual.FlipX)
		drawOp.ColorScale.ScaleAlpha(float32(visual.Alpha))
		screen.DrawImage(getCharacterSprite(), drawOp)
	})
}

// DrawEnemies draws each enemy with a health bar once it has been struck.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		enemy := components.Enemy.Get(e)
		x, y := float32(o.X+camX), float32(o.Y+camY)

		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), cfg.LightRed, false)
		if enemy.HitCount == 0 || enemy.MaxHealth <= 0 {
			return
		}

		// Health bar above the collision box
		const barWidth, barHeight = 20, 3
		barX := x + (float32(o.W)-barWidth)/2
		barY := y - barHeight - 3
		ratio := float32(enemy.Health / enemy.MaxHealth)
		if ratio < 0 {
			ratio = 0
		}
		vector.FillRect(screen, barX, barY, barWidth, barHeight, cfg.Red, false)
		vector.FillRect(screen, barX, barY, barWidth*ratio, barHeight, cfg.Green, false)
	})
}

// placeSprite sets drawOp to draw the sprite at (x, y) with the given scale,
// mirrored in place when flipX is set.
func placeSprite(x, y, scaleX, scaleY float64, flipX bool) {
	if flipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(spriteWidth, 0)
	}
	drawOp.GeoM.Scale(scaleX, scaleY)
	drawOp.GeoM.Translate(x, y)
}
