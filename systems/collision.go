package systems

import (
	"math"

	"github.com/automoto/shadowstep/components"
	"github.com/automoto/shadowstep/tags"
	"github.com/solarlune/resolv"
)

// collisionEpsilon is how far two edges may overlap and still count as
// merely touching.
const collisionEpsilon = 0.01

// resolveHorizontalCollision moves object by dx, stopping flush against the
// nearest solid in the way.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	// Look one unit further so a wall starting exactly at the destination is found
	check := object.Check(dx+math.Copysign(1, dx), 0, tags.ResolvSolid)
	if check != nil {
		centerX := object.X + object.W/2
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsVertically(object, solid) {
				continue
			}
			if dx > 0 && solid.X >= centerX {
				if gap := solid.X - (object.X + object.W); gap < dx {
					dx = gap
					physics.VelocityX = 0
				}
			} else if dx < 0 && solid.X+solid.W <= centerX {
				if gap := solid.X + solid.W - object.X; gap > dx {
					dx = gap
					physics.VelocityX = 0
				}
			}
		}
	}

	object.X += dx
}

// resolveVerticalCollision moves object by dy, landing it on the nearest
// floor below or stopping it under a ceiling.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = false

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check != nil {
		centerY := object.Y + object.H/2
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsHorizontally(object, solid) {
				continue
			}
			if dy >= 0 && solid.Y >= centerY {
				if gap := solid.Y - (object.Y + object.H); gap <= dy {
					dy = gap
					physics.VelocityY = 0
					physics.OnGround = true
				}
			} else if dy < 0 && solid.Y+solid.H <= centerY {
				if gap := solid.Y + solid.H - object.Y; gap > dy {
					dy = gap
					physics.VelocityY = 0
				}
			}
		}
	}

	object.Y += dy
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y+collisionEpsilon < b.Y+b.H && b.Y+collisionEpsilon < a.Y+a.H
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X+collisionEpsilon < b.X+b.W && b.X+collisionEpsilon < a.X+a.W
}
