package factory

import (
	"github.com/automoto/shadowstep/archetypes"
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMarker spawns the teleport marker covering the given rectangle. Its
// collision object is a trigger: it carries no solid tag, so nothing
// resolves against it.
func CreateMarker(ecs *ecs.ECS, x, y, w, h float64, flipX bool) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvMarker)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = marker
	components.Object.SetValue(marker, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.MarkerVisual.SetValue(marker, components.MarkerVisualData{
		Alpha:  cfg.Clone.Alpha,
		ScaleX: cfg.Clone.ScaleX,
		ScaleY: cfg.Clone.ScaleY,
		FlipX:  flipX,
		Layer:  components.MarkerLayer,
	})

	return marker
}
