package frenzy

import "github.com/vovakirdan/bullet-frenzy/internal/core"

// Projectile is a shot travelling in a straight line at constant speed.
type Projectile struct {
	Pos     core.Vec3
	Heading float64 // Degrees, fixed at creation
	speed   float64
}

// NewProjectile creates a projectile at pos moving along heading.
func NewProjectile(pos core.Vec3, heading, speed float64) Projectile {
	return Projectile{Pos: pos, Heading: heading, speed: speed}
}

// Advance moves the projectile one tick along its heading.
func (p *Projectile) Advance() {
	p.Pos = p.Pos.Add(core.Heading(p.Heading).Scale(p.speed))
}
