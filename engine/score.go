package engine

import "github.com/lixenwraith/starfall/constant"

// ScoreTracker is the run's score register. It only ever moves up:
// additions saturate at ScoreMax instead of wrapping, and nothing
// subtracts. The saturation point doubles as the kill-screen ceiling.
type ScoreTracker struct {
	value int
}

// Add credits points. Non-positive amounts are ignored.
func (s *ScoreTracker) Add(points int) {
	if points <= 0 {
		return
	}
	if s.value > constant.ScoreMax-points {
		s.value = constant.ScoreMax
		return
	}
	s.value += points
}

// Value returns the current score
func (s *ScoreTracker) Value() int {
	return s.value
}

// Saturated reports whether the register hit the ceiling
func (s *ScoreTracker) Saturated() bool {
	return s.value == constant.ScoreMax
}

// Reset zeroes the register for a new run
func (s *ScoreTracker) Reset() {
	s.value = 0
}
