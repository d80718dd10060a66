package config

import (
	_ "embed"
)

//go:embed defaults/frenzy.yaml
var defaultFrenzyYAML []byte

// DefaultFrenzyConfig returns the built-in tuning.
// It mirrors defaults/frenzy.yaml and is used when the embedded file cannot be parsed.
func DefaultFrenzyConfig() FrenzyConfig {
	return FrenzyConfig{
		Player: FrenzyPlayer{
			StartLife: 5,
			MoveStep:  10,
			TurnStep:  5,
		},
		Projectile: FrenzyProjectile{
			Speed: 15,
		},
		Hostiles: FrenzyHostiles{
			Count:        5,
			SeekStep:     0.5,
			StopDistance: 1,
			SpawnMin:     300,
			SpawnMax:     500,
			ScaleMin:     0.7,
			ScaleMax:     1.3,
			ScaleStep:    0.01,
		},
		Arena: FrenzyArena{
			HalfExtent: 600,
		},
		Rules: FrenzyRules{
			ContactRadius: 50,
			HitRadius:     30,
			ClampLife:     false,
		},
		Cheat: FrenzyCheat{
			TurnStep:   1,
			FireChance: 0.05,
		},
		Camera: FrenzyCamera{
			Height:     500,
			HeightStep: 10,
			AngleStep:  5,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultFrenzyYAML
}
