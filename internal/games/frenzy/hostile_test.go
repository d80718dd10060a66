package frenzy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

func TestHostileSeek(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Vec3
		expected core.Vec3
		moved    bool
	}{
		{"along x", core.V3(100, 0, 0), core.V3(99.5, 0, 0), true},
		{"diagonal", core.V3(30, 0, 40), core.V3(29.7, 0, 39.6), true},
		{"exactly at stop distance", core.V3(1, 0, 0), core.V3(1, 0, 0), false},
		{"just outside stop distance", core.V3(1.5, 0, 0), core.V3(1, 0, 0), true},
		{"coincident", core.V3(0, 0, 0), core.V3(0, 0, 0), false},
		{"height ignored", core.V3(0, 50, 100), core.V3(0, 50, 99.5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := Hostile{Pos: tc.start, Scale: 1}
			moved := h.Seek(core.V3(0, 0, 0), 0.5, 1)

			if moved != tc.moved {
				t.Errorf("moved=%v, expected %v", moved, tc.moved)
			}
			if math.Abs(h.Pos.X-tc.expected.X) > 1e-9 ||
				math.Abs(h.Pos.Y-tc.expected.Y) > 1e-9 ||
				math.Abs(h.Pos.Z-tc.expected.Z) > 1e-9 {
				t.Errorf("position %+v, expected %+v", h.Pos, tc.expected)
			}
			if math.IsNaN(h.Pos.X) || math.IsNaN(h.Pos.Z) {
				t.Error("seek produced NaN")
			}
		})
	}
}

func TestHostilePulse(t *testing.T) {
	const lo, hi, step = 0.7, 1.3, 0.01
	h := Hostile{Scale: 1, pulse: step}
	flips := 0

	for i := 0; i < 1000; i++ {
		wasGrowing := h.Growing()
		h.Pulse(lo, hi)

		if h.Scale < lo-step-1e-9 || h.Scale > hi+step+1e-9 {
			t.Fatalf("scale %f escaped [%f, %f] at pulse %d", h.Scale, lo, hi, i)
		}
		if h.Growing() != wasGrowing {
			flips++
			if h.Scale < hi && h.Scale > lo {
				t.Fatalf("direction flipped inside the band at scale %f", h.Scale)
			}
		}
	}

	// One full swing is about 60 pulses, so 1000 pulses flip many times.
	if flips < 10 {
		t.Errorf("expected the pulse to keep reversing, got %d flips", flips)
	}
}

func TestHostileRespawn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := Hostile{Pos: core.V3(5, 7, 5), Scale: 0.8, pulse: -0.01}

	for i := 0; i < 500; i++ {
		h.Respawn(rng, 300, 500)

		r := h.Pos.PlanarLen()
		if r < 300-1e-9 || r > 500+1e-9 {
			t.Fatalf("radius %f outside [300, 500]", r)
		}
		if math.Abs(r-math.Round(r)) > 1e-6 {
			t.Fatalf("radius %f is not a whole number", r)
		}
		if h.Pos.Y != 0 {
			t.Fatalf("respawn should put the hostile on the ground, y=%f", h.Pos.Y)
		}
	}
	if h.Scale != 0.8 || h.Growing() {
		t.Error("respawn should keep scale and pulse direction")
	}
}

func TestNewHostile(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	h := newHostile(rng, 300, 500, 0.01)

	if h.Scale != 1 || !h.Growing() {
		t.Errorf("new hostile should start at scale 1 growing, got %f growing=%v", h.Scale, h.Growing())
	}
	if r := h.Pos.PlanarLen(); r < 300-1e-9 || r > 500+1e-9 {
		t.Errorf("radius %f outside spawn ring", r)
	}
}

func TestProjectileAdvance(t *testing.T) {
	tests := []struct {
		heading  float64
		expected core.Vec3
	}{
		{0, core.V3(15, 0, 0)},
		{90, core.V3(0, 0, 15)},
		{180, core.V3(-15, 0, 0)},
		{270, core.V3(0, 0, -15)},
	}

	for _, tc := range tests {
		p := NewProjectile(core.V3(0, 0, 0), tc.heading, 15)
		p.Advance()

		if math.Abs(p.Pos.X-tc.expected.X) > 1e-9 || math.Abs(p.Pos.Z-tc.expected.Z) > 1e-9 {
			t.Errorf("heading %.0f: position %+v, expected %+v", tc.heading, p.Pos, tc.expected)
		}
		if p.Heading != tc.heading {
			t.Errorf("heading should be fixed at spawn, got %f", p.Heading)
		}
	}
}
