package frenzy

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/bullet-frenzy/internal/config"
	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

func TestMoveCommands(t *testing.T) {
	tests := []struct {
		name     string
		heading  float64
		cmd      Command
		expected core.Vec3
	}{
		{"forward facing +x", 0, CmdMoveForward, core.V3(10, 0, 0)},
		{"backward facing +x", 0, CmdMoveBackward, core.V3(-10, 0, 0)},
		{"forward facing +z", 90, CmdMoveForward, core.V3(0, 0, 10)},
		{"backward facing -x", 180, CmdMoveBackward, core.V3(10, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(config.DefaultFrenzyConfig(), 1)
			s.player.Heading = tc.heading

			if !s.Apply(tc.cmd) {
				t.Fatal("move should be accepted")
			}
			p := s.player.Pos
			if math.Abs(p.X-tc.expected.X) > 1e-9 || math.Abs(p.Z-tc.expected.Z) > 1e-9 || p.Y != 0 {
				t.Errorf("position %+v, expected %+v", p, tc.expected)
			}
		})
	}
}

func TestPlayerCanLeaveArena(t *testing.T) {
	s := NewState(config.DefaultFrenzyConfig(), 1)
	for i := 0; i < 100; i++ {
		s.Apply(CmdMoveForward)
	}
	if s.player.Pos.X != 1000 {
		t.Errorf("player movement is unbounded, expected x=1000, got %f", s.player.Pos.X)
	}
}

func TestRotateCommands(t *testing.T) {
	s := NewState(config.DefaultFrenzyConfig(), 1)

	s.Apply(CmdRotateRight)
	if s.player.Heading != 355 {
		t.Errorf("rotate right from 0 should wrap to 355, got %f", s.player.Heading)
	}
	s.Apply(CmdRotateLeft)
	if s.player.Heading != 0 {
		t.Errorf("expected heading 0, got %f", s.player.Heading)
	}

	for i := 0; i < 72; i++ {
		s.Apply(CmdRotateLeft)
		if s.player.Heading < 0 || s.player.Heading >= 360 {
			t.Fatalf("heading %f outside [0, 360)", s.player.Heading)
		}
	}
	if math.Abs(s.player.Heading) > 1e-9 {
		t.Errorf("72 rotations of 5 degrees should return to 0, got %f", s.player.Heading)
	}
}

func TestFireCommand(t *testing.T) {
	s := NewState(config.DefaultFrenzyConfig(), 1)
	s.player.Pos = core.V3(20, 0, -30)
	s.player.Heading = 45

	if !s.Apply(CmdFire) {
		t.Fatal("fire should be accepted while playing")
	}
	if len(s.projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(s.projectiles))
	}
	p := s.projectiles[0]
	if p.Pos != s.player.Pos || p.Heading != 45 {
		t.Errorf("projectile should copy player position and heading, got %+v", p)
	}

	s.gameOver = true
	if s.Apply(CmdFire) {
		t.Error("fire should be ignored after game over")
	}
	if len(s.projectiles) != 1 {
		t.Errorf("no projectile should spawn after game over, got %d", len(s.projectiles))
	}
}

func TestToggleCommands(t *testing.T) {
	s := NewState(config.DefaultFrenzyConfig(), 1)

	s.Apply(CmdToggleCheat)
	s.Apply(CmdToggleAutoFollow)
	if !s.cheat || !s.autoFollow {
		t.Error("toggles should switch on")
	}
	s.Apply(CmdToggleCheat)
	s.Apply(CmdToggleAutoFollow)
	if s.cheat || s.autoFollow {
		t.Error("toggles should switch back off")
	}
}

func TestAutoFollowDoesNotAffectSimulation(t *testing.T) {
	run := func(follow bool) Snapshot {
		s := NewState(config.DefaultFrenzyConfig(), 77)
		if follow {
			s.Apply(CmdToggleAutoFollow)
		}
		for i := 0; i < 200; i++ {
			if i%20 == 0 {
				s.Apply(CmdFire)
			}
			s.Tick()
		}
		snap := s.Snapshot()
		snap.AutoFollow = false
		return snap
	}

	if !reflect.DeepEqual(run(false), run(true)) {
		t.Error("auto-follow should only flip its flag")
	}
}

func TestUnknownCommandIgnored(t *testing.T) {
	s := NewState(config.DefaultFrenzyConfig(), 1)
	before := s.Snapshot()

	for _, cmd := range []Command{CmdNone, Command(99), Command(-1)} {
		if s.Apply(cmd) {
			t.Errorf("command %d should be rejected", cmd)
		}
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("unknown commands must not change the state")
	}
}

func TestCameraCommands(t *testing.T) {
	s := NewState(config.DefaultFrenzyConfig(), 1)

	s.Apply(CmdCameraUp)
	if s.camera.Height != 510 {
		t.Errorf("expected height 510, got %f", s.camera.Height)
	}
	for i := 0; i < 100; i++ {
		s.Apply(CmdCameraDown)
	}
	if s.camera.Height != 10 {
		t.Errorf("height should stop at one step above ground, got %f", s.camera.Height)
	}

	s.Apply(CmdCameraLeft)
	if s.camera.Angle != 355 {
		t.Errorf("expected angle 355, got %f", s.camera.Angle)
	}
	s.Apply(CmdCameraRight)
	s.Apply(CmdCameraRight)
	if s.camera.Angle != 5 {
		t.Errorf("expected angle 5, got %f", s.camera.Angle)
	}

	s.Apply(CmdCameraMode)
	if s.camera.Mode != CameraFirstPerson {
		t.Error("camera mode should switch to first-person")
	}
	s.Apply(CmdCameraMode)
	if s.camera.Mode != CameraThirdPerson {
		t.Error("camera mode should switch back to third-person")
	}
}

func TestCameraHeightNeverDrops(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		step   float64
		cmds   []Command
		want   float64
	}{
		{"down below one step stays put", 5, 10, []Command{CmdCameraDown}, 5},
		{"up then down stops at one step", 5, 10, []Command{CmdCameraUp, CmdCameraDown, CmdCameraDown}, 10},
		{"negative step up is ignored", 500, -10, repeat(CmdCameraUp, 50), 500},
		{"negative step down is ignored", 500, -10, repeat(CmdCameraDown, 50), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultFrenzyConfig()
			cfg.Camera.Height = tt.height
			cfg.Camera.HeightStep = tt.step
			s := NewState(cfg, 1)

			for _, c := range tt.cmds {
				s.Apply(c)
			}
			if s.camera.Height != tt.want {
				t.Errorf("height = %v, want %v", s.camera.Height, tt.want)
			}
		})
	}
}

func repeat(c Command, n int) []Command {
	out := make([]Command, n)
	for i := range out {
		out[i] = c
	}
	return out
}
