package frenzy

import "github.com/vovakirdan/bullet-frenzy/internal/core"

// Command is a discrete control intent understood by the simulation.
type Command int

const (
	CmdNone Command = iota
	CmdMoveForward
	CmdMoveBackward
	CmdRotateLeft
	CmdRotateRight
	CmdFire
	CmdToggleCheat
	CmdToggleAutoFollow
	CmdReset
	CmdCameraUp
	CmdCameraDown
	CmdCameraLeft
	CmdCameraRight
	CmdCameraMode
)

// Apply executes a command immediately. It returns false for unknown
// commands and for fire while the game is over; both are silently ignored.
func (s *State) Apply(cmd Command) bool {
	switch cmd {
	case CmdMoveForward:
		s.move(s.cfg.Player.MoveStep)
	case CmdMoveBackward:
		s.move(-s.cfg.Player.MoveStep)
	case CmdRotateLeft:
		s.player.Heading = core.WrapDegrees(s.player.Heading + s.cfg.Player.TurnStep)
	case CmdRotateRight:
		s.player.Heading = core.WrapDegrees(s.player.Heading - s.cfg.Player.TurnStep)
	case CmdFire:
		if s.gameOver {
			return false
		}
		s.spawnProjectile()
	case CmdToggleCheat:
		s.cheat = !s.cheat
	case CmdToggleAutoFollow:
		// Intentionally a no-op; the flag is only shown in the HUD.
		s.autoFollow = !s.autoFollow
	case CmdReset:
		s.resetSession()
	case CmdCameraUp:
		s.camera.Height = max(s.camera.Height+s.cfg.Camera.HeightStep, s.camera.Height)
	case CmdCameraDown:
		// Never below one step, and never up: a camera already lower stays put.
		h := s.camera.Height
		s.camera.Height = core.ClampF(h-s.cfg.Camera.HeightStep, min(h, s.cfg.Camera.HeightStep), h)
	case CmdCameraLeft:
		s.camera.Angle = core.WrapDegrees(s.camera.Angle - s.cfg.Camera.AngleStep)
	case CmdCameraRight:
		s.camera.Angle = core.WrapDegrees(s.camera.Angle + s.cfg.Camera.AngleStep)
	case CmdCameraMode:
		if s.camera.Mode == CameraThirdPerson {
			s.camera.Mode = CameraFirstPerson
		} else {
			s.camera.Mode = CameraThirdPerson
		}
	default:
		return false
	}
	return true
}

// move translates the player along the current heading. Negative distance
// moves backward. Height never changes.
func (s *State) move(dist float64) {
	s.player.Pos = s.player.Pos.Add(core.Heading(s.player.Heading).Scale(dist))
}
