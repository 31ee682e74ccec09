// Package leveldata parses TMX level files into plain data. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// Level holds everything the world scene needs to build a level.
type Level struct {
	Name         string
	Width        int
	Height       int
	Walls        []Rect
	RestartZones []Rect
	Spawn        Point
	Enemies      []EnemySpawn
}

// Rect is an axis-aligned area in world units.
type Rect struct {
	X, Y, W, H float64
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// EnemySpawn places a hostile. Zero values fall back to the enemy defaults.
type EnemySpawn struct {
	X, Y          float64
	Health        float64
	ContactDamage float64
}
