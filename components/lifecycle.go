package components

import "github.com/yohamta/donburi"

// LifecycleData holds the immunity window and death state.
type LifecycleData struct {
	Immune bool
	Dying  bool
}

var Lifecycle = donburi.NewComponentType[LifecycleData]()
