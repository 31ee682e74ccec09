package systems

import (
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/systems/factory"
	"github.com/automoto/shadowstep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateClone runs the teleport ability. The first press places a marker at
// the character for a full mana bar; the next press moves the character to
// the marker and removes it.
func UpdateClone(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Input.Get(e).Action(cfg.ActionTeleport).JustPressed {
			return
		}
		if components.Lifecycle.Get(e).Dying {
			return
		}

		clone := components.Clone.Get(e)
		if clone.Placed() {
			teleportToMarker(e, clone)
			return
		}
		clone.Marker = nil
		placeMarker(ecs, e, clone)
	})
}

func placeMarker(ecs *ecs.ECS, e *donburi.Entry, clone *components.CloneData) {
	pool := components.ResourcePool.Get(e)
	if !pool.ManaFull() {
		return
	}
	pool.ConsumeAllMana()

	obj := components.Object.Get(e)
	flipX := components.Animator.Get(e).FlipX
	clone.Marker = factory.CreateMarker(ecs, obj.X, obj.Y, obj.W, obj.H, flipX)

	logger.Info("marker placed", zap.Float64("x", obj.X), zap.Float64("y", obj.Y))
}

func teleportToMarker(e *donburi.Entry, clone *components.CloneData) {
	marker := clone.Marker
	markerObj := components.Object.Get(marker)

	obj := components.Object.Get(e)
	obj.X = markerObj.X
	obj.Y = markerObj.Y
	obj.Update()

	removeBody(marker)
	clone.Marker = nil

	logger.Info("teleported", zap.Float64("x", obj.X), zap.Float64("y", obj.Y))
}

// removeBody removes an entry's collision object from its space and then the
// entry itself from the world.
func removeBody(e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}
