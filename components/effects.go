package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Material is the sprite material currently applied.
type Material int

const (
	MaterialOriginal Material = iota
	MaterialDamaged
)

// MaterialData tracks the material swap used for the hit flash.
// Intensity fades from 1 to 0 over the flash while Damaged is applied.
type MaterialData struct {
	Current   Material
	Intensity float32
	Fade      *gween.Tween
}

var MaterialSink = donburi.NewComponentType[MaterialData]()
