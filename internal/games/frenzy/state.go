package frenzy

import (
	"math/rand"

	"github.com/vovakirdan/bullet-frenzy/internal/config"
	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

// Player is the turret controlled by the user.
type Player struct {
	Pos     core.Vec3
	Heading float64 // Degrees in [0, 360)
	Life    int
	Score   int
	Missed  int
}

// CameraMode selects how the arena is projected for display.
type CameraMode int

const (
	CameraThirdPerson CameraMode = iota // Whole arena, orbiting the origin
	CameraFirstPerson                   // Centered behind the player, heading up
)

// String returns a human-readable name for the camera mode.
func (m CameraMode) String() string {
	if m == CameraFirstPerson {
		return "first-person"
	}
	return "third-person"
}

// Camera is display-only state. The simulation never reads it.
type Camera struct {
	Height float64
	Angle  float64 // Degrees in [0, 360)
	Mode   CameraMode
}

// TickReport summarizes what happened during one Tick.
type TickReport struct {
	Misses    int  // Projectiles culled at the arena edge
	Hits      int  // Projectiles that struck a hostile
	Contacts  int  // Hostiles that reached the player
	AutoFired bool // Cheat mode spawned a projectile
	Ended     bool // Game-over transition happened on this tick
}

// State is the complete simulation of one session.
// It is not safe for concurrent use; the frame driver owns it.
type State struct {
	cfg         config.FrenzyConfig
	arena       Arena
	rng         *rand.Rand
	player      Player
	projectiles []Projectile
	hostiles    []Hostile
	camera      Camera
	gameOver    bool
	cheat       bool
	autoFollow  bool
	tick        uint64
}

// NewState creates a fresh session. All randomness derives from seed.
func NewState(cfg config.FrenzyConfig, seed int64) *State {
	s := &State{
		cfg:   cfg,
		arena: Arena{HalfExtent: cfg.Arena.HalfExtent},
		rng:   rand.New(rand.NewSource(seed)),
		player: Player{
			Life: cfg.Player.StartLife,
		},
		camera: Camera{
			Height: cfg.Camera.Height,
			Mode:   CameraThirdPerson,
		},
		projectiles: make([]Projectile, 0, 16),
		hostiles:    make([]Hostile, 0, cfg.Hostiles.Count),
	}

	h := cfg.Hostiles
	for i := 0; i < h.Count; i++ {
		s.hostiles = append(s.hostiles, newHostile(s.rng, h.SpawnMin, h.SpawnMax, h.ScaleStep))
	}
	return s
}

// Tick advances the simulation by one step. The phase order is fixed:
// projectiles, hostiles, contacts, hits, cheat fire.
func (s *State) Tick() TickReport {
	var r TickReport

	r.Misses = s.advanceProjectiles()
	s.advanceHostiles()
	r.Contacts, r.Ended = s.resolveContacts()
	r.Hits = s.resolveHits()
	r.AutoFired = s.autofire()

	s.tick++
	return r
}

// advanceProjectiles moves every projectile and drops those that left the
// arena. Each dropped projectile counts as a miss.
func (s *State) advanceProjectiles() int {
	misses := 0
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Advance()
		if s.arena.InBounds(p.Pos) {
			kept = append(kept, p)
		} else {
			misses++
		}
	}
	s.projectiles = kept
	s.player.Missed += misses
	return misses
}

// advanceHostiles seeks and pulses every hostile. Seeking stops once the game
// is over; pulsing never does.
func (s *State) advanceHostiles() {
	h := s.cfg.Hostiles
	for i := range s.hostiles {
		if !s.gameOver {
			s.hostiles[i].Seek(s.player.Pos, h.SeekStep, h.StopDistance)
		}
		s.hostiles[i].Pulse(h.ScaleMin, h.ScaleMax)
	}
}

// resolveContacts damages the player once per hostile within contact range and
// respawns that hostile. Runs regardless of game over.
func (s *State) resolveContacts() (contacts int, ended bool) {
	for i := range s.hostiles {
		if core.PlanarDistance(s.player.Pos, s.hostiles[i].Pos) >= s.cfg.Rules.ContactRadius {
			continue
		}
		contacts++
		s.player.Life--
		if s.cfg.Rules.ClampLife && s.player.Life < 0 {
			s.player.Life = 0
		}
		s.respawn(i)
		if s.player.Life <= 0 {
			if !s.gameOver {
				ended = true
			}
			s.gameOver = true
		}
	}
	return contacts, ended
}

// resolveHits credits at most one hostile per projectile, first match wins.
func (s *State) resolveHits() int {
	hits := 0
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		hit := false
		for i := range s.hostiles {
			if core.PlanarDistance(p.Pos, s.hostiles[i].Pos) < s.cfg.Rules.HitRadius {
				s.player.Score++
				s.respawn(i)
				hit = true
				break
			}
		}
		if hit {
			hits++
		} else {
			kept = append(kept, p)
		}
	}
	s.projectiles = kept
	return hits
}

// autofire rotates the turret and rolls for a shot while cheat mode is on.
// It is not stopped by game over.
func (s *State) autofire() bool {
	if !s.cheat {
		return false
	}
	s.player.Heading = core.WrapDegrees(s.player.Heading + s.cfg.Cheat.TurnStep)
	if s.rng.Float64() < s.cfg.Cheat.FireChance {
		s.spawnProjectile()
		return true
	}
	return false
}

func (s *State) spawnProjectile() {
	s.projectiles = append(s.projectiles, NewProjectile(s.player.Pos, s.player.Heading, s.cfg.Projectile.Speed))
}

func (s *State) respawn(i int) {
	s.hostiles[i].Respawn(s.rng, s.cfg.Hostiles.SpawnMin, s.cfg.Hostiles.SpawnMax)
}

// resetSession starts a new round: counters, life and projectiles are restored
// and every hostile goes back to the spawn ring. Player position, heading,
// toggles and camera are kept.
func (s *State) resetSession() {
	s.gameOver = false
	s.player.Life = s.cfg.Player.StartLife
	s.player.Score = 0
	s.player.Missed = 0
	s.projectiles = s.projectiles[:0]
	for i := range s.hostiles {
		s.respawn(i)
	}
}

// GameOver reports whether the session reached the terminal state.
func (s *State) GameOver() bool {
	return s.gameOver
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Ticks returns the number of completed ticks since creation.
// Session resets do not rewind it.
func (s *State) Ticks() uint64 {
	return s.tick
}
