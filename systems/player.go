package systems

import (
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/motion"
	"github.com/spindleworks/ridgerun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDT is the fixed simulation step. Ebiten runs Update at 60 TPS.
const tickDT = 1.0 / 60.0

func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry)
	})
}

func updateSinglePlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	input := getOrCreateInput(e)

	if player.Dead {
		tickRespawn(player, physics)
		return
	}

	if GetAction(input, cfg.ActionReset).JustPressed {
		KillPlayer(playerEntry)
		return
	}

	moveDir := moveAxis(input)

	applyHorizontalVelocity(physics, moveDir)
	physics.Velocity.Y += cfg.Player.Gravity() * tickDT

	wallDir, wallSliding := handleWallSliding(physics, moveDir)
	handleJumpInput(playerEntry, input, physics, wallDir, wallSliding, moveDir)

	if physics.Velocity.Y > cfg.Motion.MaxFallSpeed {
		physics.Velocity.Y = cfg.Motion.MaxFallSpeed
	}

	// Vertical speed going into the move, for landing impact checks.
	fallSpeed := physics.Velocity.Y

	moveInput := motion.Input{X: moveDir}
	if GetAction(input, cfg.ActionDown).Pressed {
		moveInput.Y = 1
	}

	physics.Controller.Tick(tickDT)
	physics.Controller.Move(physics.Velocity.Scale(tickDT), moveInput, false)
	syncPlayerCollider(physics)

	st := physics.Controller.State()
	if st.Above || st.Below {
		physics.Velocity.Y = 0
	}

	handleLanding(e, playerEntry, player, fallSpeed)
	player.WasAirborne = !st.Below
}

// moveAxis merges both directions so opposing keys cancel out.
func moveAxis(input *components.InputData) int {
	dir := 0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dir--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dir++
	}
	return dir
}

func applyHorizontalVelocity(physics *components.PhysicsData, moveDir int) {
	accel := cfg.Player.AccelAirborne
	friction := cfg.Player.FrictionAirborne
	if physics.Controller.State().Below {
		accel = cfg.Player.AccelGrounded
		friction = cfg.Player.FrictionGrounded
	}

	if moveDir != 0 {
		physics.Velocity.X += float64(moveDir) * accel * tickDT
		physics.Velocity.X = gamemath.ClampMag(physics.Velocity.X, cfg.Player.MoveSpeed)
		return
	}
	physics.Velocity.X = gamemath.MoveToward(physics.Velocity.X, friction*tickDT)
}

// handleWallSliding caps fall speed against a wall and holds the body
// stuck to it for a moment so a leap away is easier to time. Contact
// flags come from the previous tick's move.
func handleWallSliding(physics *components.PhysicsData, moveDir int) (wallDir int, wallSliding bool) {
	st := physics.Controller.State()
	wallDir = 1
	if st.Left {
		wallDir = -1
	}

	physics.WallDir = 0
	if (st.Left || st.Right) && !st.Below && physics.Velocity.Y > 0 {
		wallSliding = true
		physics.WallDir = wallDir

		if physics.Velocity.Y > cfg.Player.WallSlideSpeedMax {
			physics.Velocity.Y = cfg.Player.WallSlideSpeedMax
		}

		if physics.TimeToWallUnstick > 0 {
			physics.Velocity.X = 0
			if moveDir != wallDir && moveDir != 0 {
				physics.TimeToWallUnstick -= tickDT
			} else {
				physics.TimeToWallUnstick = cfg.Player.WallStickTime
			}
		} else {
			physics.TimeToWallUnstick = cfg.Player.WallStickTime
		}
	}
	return wallDir, wallSliding
}

func handleJumpInput(playerEntry *donburi.Entry, input *components.InputData, physics *components.PhysicsData, wallDir int, wallSliding bool, moveDir int) {
	jump := GetAction(input, cfg.ActionJump)

	if jump.JustPressed {
		if wallSliding {
			switch {
			case moveDir == wallDir:
				// Pushing into the wall: climb jump up its face.
				physics.Velocity.X = -float64(wallDir) * cfg.Player.WallJumpClimbX
				physics.Velocity.Y = -cfg.Player.WallJumpClimbY
			case moveDir == 0:
				physics.Velocity.X = -float64(wallDir) * cfg.Player.WallJumpOffX
				physics.Velocity.Y = -cfg.Player.WallJumpOffY
			default:
				// Pushing away: leap across to the far side.
				physics.Velocity.X = -float64(wallDir) * cfg.Player.WallLeapX
				physics.Velocity.Y = -cfg.Player.WallLeapY
			}
			TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		}
		if physics.Controller.State().Below {
			physics.Velocity.Y = -cfg.Player.MaxJumpVelocity()
			TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		}
	}

	// Releasing early cuts the arc down to the minimum jump.
	if jump.JustReleased && physics.Velocity.Y < -cfg.Player.MinJumpVelocity() {
		physics.Velocity.Y = -cfg.Player.MinJumpVelocity()
	}
}

func handleLanding(e *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData, fallSpeed float64) {
	st := components.Physics.Get(playerEntry).Controller.State()
	if !player.WasAirborne || !st.Below {
		return
	}
	player.FallSpeed = fallSpeed
	TriggerSquashStretch(playerEntry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	if fallSpeed >= cfg.Motion.MaxFallSpeed*0.9 {
		TriggerScreenShake(e, 3, 12)
	}
}

// KillPlayer starts the death sequence: movement stops and the respawn
// countdown begins. Safe to call repeatedly.
func KillPlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	if player.Dead {
		return
	}
	player.Dead = true
	player.RespawnTimer = cfg.Respawn.Delay
	physics.Velocity = gamemath.Vec2{}
}

func tickRespawn(player *components.PlayerData, physics *components.PhysicsData) {
	player.RespawnTimer -= tickDT
	if player.RespawnTimer > 0 {
		return
	}
	player.Dead = false
	player.WasAirborne = false
	RespawnAt(physics, player.SpawnX, player.SpawnY)
}

// RespawnAt teleports the body so its bottom-center sits on the given
// point, clearing velocity.
func RespawnAt(physics *components.PhysicsData, x, y float64) {
	b := physics.Controller.Bounds()
	physics.Controller.SetBounds(motion.NewRect(x-b.W()/2, y-b.H(), b.W(), b.H()))
	physics.Velocity = gamemath.Vec2{}
	syncPlayerCollider(physics)
}

// syncPlayerCollider mirrors the body's box into the raycast world so
// platform passenger scans see it at its new position.
func syncPlayerCollider(physics *components.PhysicsData) {
	if physics.Collider != nil {
		physics.Collider.MoveTo(physics.Controller.Bounds())
	}
}
