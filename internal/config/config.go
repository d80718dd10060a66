// Package config provides YAML-based tuning for the Bullet Frenzy simulation.
package config

import (
	"errors"
	"fmt"
)

// FrenzyConfig contains every tunable constant of the simulation.
type FrenzyConfig struct {
	Player     FrenzyPlayer     `yaml:"player"`
	Projectile FrenzyProjectile `yaml:"projectile"`
	Hostiles   FrenzyHostiles   `yaml:"hostiles"`
	Arena      FrenzyArena      `yaml:"arena"`
	Rules      FrenzyRules      `yaml:"rules"`
	Cheat      FrenzyCheat      `yaml:"cheat"`
	Camera     FrenzyCamera     `yaml:"camera"`
}

// FrenzyPlayer defines the turret the player drives around.
type FrenzyPlayer struct {
	StartLife int     `yaml:"start_life"`
	MoveStep  float64 `yaml:"move_step"` // Units per forward/backward command
	TurnStep  float64 `yaml:"turn_step"` // Degrees per rotate command
}

// FrenzyProjectile defines projectile motion.
type FrenzyProjectile struct {
	Speed float64 `yaml:"speed"` // Units per tick
}

// FrenzyHostiles defines the hostile population and their motion.
type FrenzyHostiles struct {
	Count        int     `yaml:"count"`
	SeekStep     float64 `yaml:"seek_step"`     // Units per tick toward the player
	StopDistance float64 `yaml:"stop_distance"` // No movement at or within this distance
	SpawnMin     int     `yaml:"spawn_min"`     // Respawn ring inner radius
	SpawnMax     int     `yaml:"spawn_max"`     // Respawn ring outer radius (inclusive)
	ScaleMin     float64 `yaml:"scale_min"`
	ScaleMax     float64 `yaml:"scale_max"`
	ScaleStep    float64 `yaml:"scale_step"`
}

// FrenzyArena defines the square play area centered at the origin.
type FrenzyArena struct {
	HalfExtent float64 `yaml:"half_extent"`
}

// FrenzyRules defines collision thresholds.
type FrenzyRules struct {
	ContactRadius float64 `yaml:"contact_radius"` // Hostile damages player below this distance
	HitRadius     float64 `yaml:"hit_radius"`     // Projectile hits hostile below this distance
	ClampLife     bool    `yaml:"clamp_life"`     // Never let life drop under zero
}

// FrenzyCheat defines cheat-mode behavior.
type FrenzyCheat struct {
	TurnStep   float64 `yaml:"turn_step"`   // Degrees per tick
	FireChance float64 `yaml:"fire_chance"` // Probability of a shot per tick
}

// FrenzyCamera defines the initial view and camera command steps.
type FrenzyCamera struct {
	Height     float64 `yaml:"height"`
	HeightStep float64 `yaml:"height_step"`
	AngleStep  float64 `yaml:"angle_step"`
}

// Validate reports every setting that would make the simulation misbehave.
func (c FrenzyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if c.Player.StartLife <= 0 {
		errs = append(errs, fmt.Errorf("player.start_life must be positive, got %d", c.Player.StartLife))
	}
	positive("player.move_step", c.Player.MoveStep)
	positive("player.turn_step", c.Player.TurnStep)
	positive("projectile.speed", c.Projectile.Speed)

	if c.Hostiles.Count <= 0 {
		errs = append(errs, fmt.Errorf("hostiles.count must be positive, got %d", c.Hostiles.Count))
	}
	positive("hostiles.seek_step", c.Hostiles.SeekStep)
	if c.Hostiles.StopDistance < 0 {
		errs = append(errs, fmt.Errorf("hostiles.stop_distance must not be negative, got %v", c.Hostiles.StopDistance))
	}
	if c.Hostiles.SpawnMin <= 0 || c.Hostiles.SpawnMax < c.Hostiles.SpawnMin {
		errs = append(errs, fmt.Errorf("hostiles spawn ring [%d, %d] is invalid", c.Hostiles.SpawnMin, c.Hostiles.SpawnMax))
	}
	positive("hostiles.scale_step", c.Hostiles.ScaleStep)
	if c.Hostiles.ScaleMin <= 0 || c.Hostiles.ScaleMax <= c.Hostiles.ScaleMin {
		errs = append(errs, fmt.Errorf("hostiles scale range [%v, %v] is invalid", c.Hostiles.ScaleMin, c.Hostiles.ScaleMax))
	}

	positive("arena.half_extent", c.Arena.HalfExtent)
	positive("rules.contact_radius", c.Rules.ContactRadius)
	positive("rules.hit_radius", c.Rules.HitRadius)

	if c.Cheat.FireChance < 0 || c.Cheat.FireChance > 1 {
		errs = append(errs, fmt.Errorf("cheat.fire_chance must be within [0, 1], got %v", c.Cheat.FireChance))
	}

	positive("camera.height", c.Camera.Height)
	positive("camera.height_step", c.Camera.HeightStep)
	positive("camera.angle_step", c.Camera.AngleStep)
	if c.Camera.HeightStep > 0 && c.Camera.Height < c.Camera.HeightStep {
		errs = append(errs, fmt.Errorf("camera.height must be at least camera.height_step, got %v < %v", c.Camera.Height, c.Camera.HeightStep))
	}

	return errors.Join(errs...)
}
