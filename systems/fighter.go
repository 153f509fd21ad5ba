package systems

import (
	"math"

	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters ticks per-fighter timers and turns the current input
// snapshot into movement, jumps and attack starts. Runs before
// attacks and physics each tick.
func UpdateFighters(ecs *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TickRate)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := components.Fighter.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		stocks := components.Stocks.Get(e)
		input := components.Input.Get(e)
		session := components.AttackSession.Get(e)

		tickTimers(fighter, stocks, dt)

		if stocks.KOd {
			return
		}

		state.StateTimer += dt

		if state.CurrentState == cfg.Jumping && physics.SpeedY >= 0 {
			setState(ecs.World, e, cfg.Falling)
		}

		if state.CurrentState == cfg.HitStun && stocks.HitstunTimer <= 0 {
			state.CanAct = true
			if physics.OnGround != nil {
				setState(ecs.World, e, cfg.Idle)
			} else {
				setState(ecs.World, e, cfg.Falling)
			}
		}

		if state.CurrentState == cfg.Landing && state.StateTimer >= cfg.Fighter.LandingLag {
			state.CanAct = true
			setState(ecs.World, e, cfg.Idle)
		}

		handleJumpRelease(fighter, physics, state, input)

		if !state.CanAct || session.Attacking() {
			return
		}

		grounded := physics.OnGround != nil
		moveHorizontal(ecs.World, e, fighter, physics, state, input, grounded)
		handleJump(ecs.World, e, fighter, physics, state, input, grounded)
		handleCrouch(ecs.World, e, physics, state, input)
		handleAttackInput(ecs, e, fighter, input)
	})
}

func tickTimers(fighter *components.FighterData, stocks *components.StocksData, dt float64) {
	if stocks.HitstunTimer > 0 {
		stocks.HitstunTimer = math.Max(0, stocks.HitstunTimer-dt)
	}
	if stocks.InvincibilityTimer > 0 {
		stocks.InvincibilityTimer = math.Max(0, stocks.InvincibilityTimer-dt)
	}
	if fighter.CoyoteTime > 0 {
		fighter.CoyoteTime = math.Max(0, fighter.CoyoteTime-dt)
	}
	if fighter.RespawnInvulnFrames > 0 {
		fighter.RespawnInvulnFrames--
	}
	if fighter.ArmorFrames > 0 {
		fighter.ArmorFrames--
	}
	if fighter.StanceFrames > 0 {
		fighter.StanceFrames--
		if fighter.StanceFrames == 0 {
			fighter.StanceDamageMult = 0
		}
	}
	if fighter.BuffFrames > 0 {
		fighter.BuffFrames--
	}
	for key, frames := range fighter.Cooldowns {
		if frames <= 1 {
			delete(fighter.Cooldowns, key)
		} else {
			fighter.Cooldowns[key] = frames - 1
		}
	}
}

// moveHorizontal accelerates toward the input direction. Digital
// left/right targets run speed; a partial analog deflection walks.
func moveHorizontal(w donburi.World, e *donburi.Entry, fighter *components.FighterData, physics *components.PhysicsData, state *components.StateData, input *components.InputData, grounded bool) {
	h := input.Horizontal()
	speedMult, accelMult := 1.0, 1.0
	if fighter.BuffFrames > 0 {
		speedMult, accelMult = fighter.BuffSpeedMult, fighter.BuffAccelMult
	}

	if h != 0 {
		fighter.Facing = h
	}

	if !grounded {
		if h != 0 {
			physics.SpeedX += h * physics.AirAccel * accelMult
			capSpeed(physics, h, physics.AirSpeed*speedMult)
		} else {
			decelerate(physics, physics.AirDecel)
		}
		return
	}

	if h == 0 {
		decelerate(physics, physics.GroundDecel)
		if state.CurrentState == cfg.Walking || state.CurrentState == cfg.Running {
			setState(w, e, cfg.Idle)
		}
		return
	}

	target := physics.RunSpeed
	moveState := cfg.Running
	if !input.Pressed(cfg.ActionLeft) && !input.Pressed(cfg.ActionRight) && math.Abs(input.AxisX) < 0.9 {
		target = physics.WalkSpeed
		moveState = cfg.Walking
	}

	physics.SpeedX += h * physics.GroundAccel * accelMult
	capSpeed(physics, h, target*speedMult)

	switch state.CurrentState {
	case cfg.Idle, cfg.Walking, cfg.Running:
		setState(w, e, moveState)
	}
}

// capSpeed clamps speed in the input direction only, so knockback
// beyond the movement cap is not swallowed by holding a direction.
func capSpeed(physics *components.PhysicsData, dir, limit float64) {
	if dir > 0 && physics.SpeedX > limit {
		physics.SpeedX = limit
	} else if dir < 0 && physics.SpeedX < -limit {
		physics.SpeedX = -limit
	}
}

func decelerate(physics *components.PhysicsData, decel float64) {
	if physics.SpeedX > decel {
		physics.SpeedX -= decel
	} else if physics.SpeedX < -decel {
		physics.SpeedX += decel
	} else {
		physics.SpeedX = 0
	}
}

func handleJump(w donburi.World, e *donburi.Entry, fighter *components.FighterData, physics *components.PhysicsData, state *components.StateData, input *components.InputData, grounded bool) {
	if !input.JustPressed(cfg.ActionUp) {
		return
	}
	if !grounded && fighter.CoyoteTime <= 0 {
		return
	}

	physics.SpeedY = -physics.JumpStrength
	physics.OnGround = nil
	fighter.CoyoteTime = 0
	fighter.JumpCut = false
	setState(w, e, cfg.Jumping)
}

// handleJumpRelease shortens a jump when the button comes back up.
// Releasing on the very next tick converts the jump into a short hop;
// any later release halves the remaining rise, once per jump.
func handleJumpRelease(fighter *components.FighterData, physics *components.PhysicsData, state *components.StateData, input *components.InputData) {
	if !input.JustReleased(cfg.ActionUp) || physics.SpeedY >= 0 {
		return
	}
	if state.CurrentState != cfg.Jumping || fighter.JumpCut {
		return
	}

	if state.StateTimer <= 1.5/float64(cfg.C.TickRate) {
		physics.SpeedY = -cfg.Fighter.ShortHopStrength
	} else {
		physics.SpeedY *= 0.5
	}
	fighter.JumpCut = true
}

func handleCrouch(w donburi.World, e *donburi.Entry, physics *components.PhysicsData, state *components.StateData, input *components.InputData) {
	grounded := physics.OnGround != nil

	if grounded && input.Pressed(cfg.ActionDown) {
		if input.JustPressed(cfg.ActionDown) && physics.OnGround.HasTags(tags.ResolvPassThrough) {
			// Drop through the platform; ignored until the fighter
			// has fallen past it.
			physics.IgnorePlatform = physics.OnGround
			physics.OnGround = nil
			setState(w, e, cfg.Falling)
			return
		}
		switch state.CurrentState {
		case cfg.Idle, cfg.Walking, cfg.Running:
			setState(w, e, cfg.Crouching)
		}
		return
	}

	if state.CurrentState == cfg.Crouching {
		setState(w, e, cfg.Idle)
	}
}

func handleAttackInput(ecs *ecs.ECS, e *donburi.Entry, fighter *components.FighterData, input *components.InputData) {
	if !input.JustPressed(cfg.ActionAttack) {
		return
	}

	dir := cfg.AttackNeutral
	switch {
	case input.Pressed(cfg.ActionUp) || input.AxisY < -0.5:
		dir = cfg.AttackUp
	case input.Pressed(cfg.ActionDown) || input.AxisY > 0.5:
		dir = cfg.AttackDown
	case input.Horizontal() != 0:
		dir = cfg.AttackSide
	}

	spec, key, ok := cfg.AttackFor(fighter.Archetype, dir, input.Pressed(cfg.ActionSpecial))
	if !ok || fighter.CooldownFor(key) > 0 {
		return
	}

	startAttack(ecs, e, spec, key)
}
