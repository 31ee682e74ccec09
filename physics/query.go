// Package physics wraps resolv with the queries the character controller needs:
// a short ground check, circular overlap against struck targets and contact
// checks against hostiles and zones.
package physics

import (
	"math"
	"sort"

	"github.com/automoto/shadowstep/components"
	"github.com/automoto/shadowstep/tags"
	"github.com/solarlune/resolv"
)

// Grounded reports whether a solid lies within distance below obj.
func Grounded(obj *resolv.Object, distance float64) bool {
	return len(touchingAt(obj, 0, distance, tags.ResolvSolid)) > 0
}

// Target is a struck object resolved to its Damageable capability.
type Target struct {
	Object     *resolv.Object
	Damageable components.Damageable
	Distance   float64
}

// Overlapping returns every Damageable whose object intersects the circle at
// (x, y) with radius r, nearest first. An object whose edge only touches the
// circle is not a hit.
func Overlapping(space *resolv.Space, x, y, r float64) []Target {
	if space == nil || r < 0 {
		return nil
	}
	var hits []Target
	for _, obj := range space.Objects() {
		d, ok := obj.Data.(components.Damageable)
		if !ok {
			continue
		}
		dist := circleRectDistance(x, y, obj.X, obj.Y, obj.W, obj.H)
		if dist >= r {
			continue
		}
		// Rank by distance to the object's center so overlapping targets keep a stable order.
		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
		hits = append(hits, Target{Object: obj, Damageable: d, Distance: math.Hypot(cx-x, cy-y)})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// Nearest returns the closest Damageable overlapping the circle.
func Nearest(space *resolv.Space, x, y, r float64) (Target, bool) {
	hits := Overlapping(space, x, y, r)
	if len(hits) == 0 {
		return Target{}, false
	}
	return hits[0], true
}

// circleRectDistance is the distance from (px, py) to the nearest point of the rectangle.
func circleRectDistance(px, py, rx, ry, rw, rh float64) float64 {
	nx := math.Max(rx, math.Min(px, rx+rw))
	ny := math.Max(ry, math.Min(py, ry+rh))
	return math.Hypot(px-nx, py-ny)
}

// Contacts returns the objects currently overlapping obj that carry any of the given tags.
func Contacts(obj *resolv.Object, tagNames ...string) []*resolv.Object {
	return touchingAt(obj, 0, 0, tagNames...)
}

// touchingAt returns the tagged objects that obj would overlap if moved by
// (dx, dy). Edges that only meet do not count, so a body flush against a wall
// is not standing on it.
func touchingAt(obj *resolv.Object, dx, dy float64, tagNames ...string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}
	x, y := obj.X+dx, obj.Y+dy
	var touching []*resolv.Object
	for _, other := range obj.Space.Objects() {
		if other == obj || !other.HasTags(tagNames...) {
			continue
		}
		if overlaps(x, y, obj.W, obj.H, other) {
			touching = append(touching, other)
		}
	}
	return touching
}

func overlaps(x, y, w, h float64, b *resolv.Object) bool {
	return x < b.X+b.W && b.X < x+w && y < b.Y+b.H && b.Y < y+h
}
