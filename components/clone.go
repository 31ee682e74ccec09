package components

import (
	"github.com/automoto/shadowstep/config"
	"github.com/yohamta/donburi"
)

// CloneData is the teleport ability state. A nil Marker means Absent.
type CloneData struct {
	Marker *donburi.Entry
}

// Placed reports whether a live marker exists.
func (c *CloneData) Placed() bool {
	return c.Marker != nil && c.Marker.Valid()
}

var Clone = donburi.NewComponentType[CloneData]()

// MarkerVisualData describes how the teleport marker is drawn: a
// semi-transparent copy of the character's sprite.
type MarkerVisualData struct {
	Alpha  float64
	ScaleX float64
	ScaleY float64
	FlipX  bool
	Layer  int
}

// MarkerLayer is the sorting layer the marker is drawn on.
const MarkerLayer = int(config.LayerForeground)

var MarkerVisual = donburi.NewComponentType[MarkerVisualData]()
