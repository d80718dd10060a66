package frenzy

import "github.com/vovakirdan/bullet-frenzy/internal/core"

// ProjectileView is the display projection of a projectile.
type ProjectileView struct {
	Pos     core.Vec3
	Heading float64
}

// HostileView is the display projection of a hostile.
type HostileView struct {
	Pos   core.Vec3
	Scale float64
}

// Snapshot is a read-only copy of the simulation for rendering and tests.
// Mutating it has no effect on the State it came from.
type Snapshot struct {
	Tick        uint64
	Player      Player
	Projectiles []ProjectileView // Oldest first
	Hostiles    []HostileView    // Stable order for the whole session
	GameOver    bool
	CheatMode   bool
	AutoFollow  bool
	Camera      Camera
	ArenaHalf   float64
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	projectiles := make([]ProjectileView, len(s.projectiles))
	for i, p := range s.projectiles {
		projectiles[i] = ProjectileView{Pos: p.Pos, Heading: p.Heading}
	}
	hostiles := make([]HostileView, len(s.hostiles))
	for i, h := range s.hostiles {
		hostiles[i] = HostileView{Pos: h.Pos, Scale: h.Scale}
	}

	return Snapshot{
		Tick:        s.tick,
		Player:      s.player,
		Projectiles: projectiles,
		Hostiles:    hostiles,
		GameOver:    s.gameOver,
		CheatMode:   s.cheat,
		AutoFollow:  s.autoFollow,
		Camera:      s.camera,
		ArenaHalf:   s.arena.HalfExtent,
	}
}
