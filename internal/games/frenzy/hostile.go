package frenzy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

// Hostile walks toward the player and pulses in size.
// Hostiles are never removed; contact or a hit sends them back to the spawn ring.
type Hostile struct {
	Pos   core.Vec3
	Scale float64
	pulse float64 // Signed scale change per tick
}

// newHostile creates a hostile at full scale, growing, placed on the spawn ring.
func newHostile(rng *rand.Rand, minR, maxR int, scaleStep float64) Hostile {
	h := Hostile{Scale: 1, pulse: scaleStep}
	h.Respawn(rng, minR, maxR)
	return h
}

// Seek moves the hostile step units toward target on the X/Z plane.
// Nothing happens when the hostile is within stopDist, which also keeps the
// direction normalization away from zero-length vectors.
func (h *Hostile) Seek(target core.Vec3, step, stopDist float64) bool {
	d := target.Sub(h.Pos)
	d.Y = 0
	dist := d.PlanarLen()
	if dist <= stopDist {
		return false
	}
	h.Pos = h.Pos.Add(d.Scale(step / dist))
	return true
}

// Pulse advances the scale animation and reverses it at either bound.
func (h *Hostile) Pulse(lo, hi float64) {
	h.Scale += h.pulse
	if h.Scale >= hi || h.Scale <= lo {
		h.pulse = -h.pulse
	}
}

// Growing reports whether the scale is currently increasing.
func (h *Hostile) Growing() bool {
	return h.pulse > 0
}

// Respawn places the hostile on the ground at a random point of the ring
// [minR, maxR] around the origin. The radius is a whole number of units.
// Scale and pulse direction are left untouched.
func (h *Hostile) Respawn(rng *rand.Rand, minR, maxR int) {
	angle := rng.Float64() * 2 * math.Pi
	r := float64(minR + rng.Intn(maxR-minR+1))
	h.Pos = core.V3(r*math.Cos(angle), 0, r*math.Sin(angle))
}
