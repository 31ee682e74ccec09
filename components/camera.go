package components

import "github.com/yohamta/donburi"

// CameraData is the world position the screen is centered on.
type CameraData struct {
	Position Vector
}

var Camera = donburi.NewComponentType[CameraData]()
