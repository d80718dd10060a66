package frenzy

import (
	"math"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

// Arena is the square play area centered at the origin.
// It only culls projectiles; the player and hostiles may leave it.
type Arena struct {
	HalfExtent float64
}

// InBounds reports whether p lies strictly inside the arena on the X/Z plane.
func (a Arena) InBounds(p core.Vec3) bool {
	return math.Abs(p.X) < a.HalfExtent && math.Abs(p.Z) < a.HalfExtent
}
