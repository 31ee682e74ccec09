// Package input provides the sources the input system polls each tick.
package input

import (
	"math"

	cfg "github.com/automoto/shadowstep/config"
)

// Source reports held action state and the horizontal axis for the current tick.
type Source interface {
	Pressed(action cfg.ActionID) bool
	// Axis is the horizontal movement axis in [-1, 1].
	Axis() float64
}

// ClampAxis limits v to [-1, 1]; NaN becomes 0.
func ClampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// Frame is one tick of scripted input.
type Frame struct {
	Held []cfg.ActionID
	Axis float64
}

// Script replays frames in order, one per Advance. After the last frame it
// keeps reporting nothing held and a zero axis.
type Script struct {
	frames []Frame
	next   int
	held   [cfg.ActionCount]bool
	axis   float64
}

func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames}
}

// Push appends frames to the end of the script.
func (s *Script) Push(frames ...Frame) {
	s.frames = append(s.frames, frames...)
}

// Advance moves to the next frame. It is called by the input system before polling.
func (s *Script) Advance() {
	s.held = [cfg.ActionCount]bool{}
	s.axis = 0
	if s.next >= len(s.frames) {
		return
	}
	f := s.frames[s.next]
	s.next++
	for _, a := range f.Held {
		if a >= 0 && a < cfg.ActionCount {
			s.held[a] = true
		}
	}
	s.axis = f.Axis
}

func (s *Script) Pressed(action cfg.ActionID) bool {
	if action < 0 || action >= cfg.ActionCount {
		return false
	}
	return s.held[action]
}

func (s *Script) Axis() float64 {
	return s.axis
}

// Advancer is implemented by sources that step per tick.
type Advancer interface {
	Advance()
}
