package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates fighter motion: stage gravity, sub-stepped
// displacement, platform landing and blast-zone checks. Displacement
// is scaled by the display rate so velocities keep their per-frame
// meaning at any tick length.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TickRate)
	stage := components.Stage.Get(components.Stage.MustFirst(ecs.World))

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		stocks := components.Stocks.Get(e)
		if stocks.KOd {
			return
		}

		fighter := components.Fighter.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		obj := components.Object.Get(e)

		grounded := physics.OnGround != nil

		if !flightActive(e) {
			if stage.Gravity != nil {
				stage.Gravity.Apply(physics, obj.BottomCenter(), grounded)
			} else {
				applyDefaultGravity(physics, grounded)
			}
		}

		dx := physics.SpeedX * cfg.Physics.DisplayRate * dt
		dy := physics.SpeedY * cfg.Physics.DisplayRate * dt

		// Sub-step so fast movers cannot tunnel through a platform's
		// landing band in a single tick.
		steps := int(math.Max(math.Abs(dx), math.Abs(dy))/cfg.Physics.SubStepPixels) + 1
		stepX := dx / float64(steps)
		stepY := dy / float64(steps)

		for i := 0; i < steps; i++ {
			prevBottom := obj.Y + obj.H
			obj.X += stepX
			obj.Y += stepY

			if stepY >= 0 && physics.OnGround == nil {
				if plat := findLanding(ecs, physics, obj, prevBottom); plat != nil {
					landOn(ecs.World, e, stage, fighter, physics, state, obj, plat)
					stepY = 0
				}
			}
		}

		maintainSupport(ecs.World, e, fighter, physics, state, obj)
		clearIgnoredPlatform(physics, obj)
		obj.Update()

		checkBlastZones(stage, stocks, obj)
	})
}

func flightActive(e *donburi.Entry) bool {
	session := components.AttackSession.Get(e)
	return session.Attacking() && session.Spec.Flight && session.FlightHeld
}

func applyDefaultGravity(physics *components.PhysicsData, grounded bool) {
	if grounded {
		physics.SpeedX *= 1 - cfg.Physics.GroundFriction
		if math.Abs(physics.SpeedX) < 0.01 {
			physics.SpeedX = 0
		}
		return
	}

	physics.SpeedY += cfg.Physics.Gravity
	physics.SpeedX *= 1 - cfg.Physics.AirFriction
	if physics.SpeedY > cfg.Physics.TerminalVelocity {
		physics.SpeedY = cfg.Physics.TerminalVelocity
	}
}

// findLanding returns a platform whose top surface lies within the
// landing band of the fighter's feet, if the fighter overlaps it
// horizontally past the edge inset. The feet must arrive from at or
// above the surface: a jump apex that merely hovers inside the band of
// a higher platform does not land.
func findLanding(ecs *ecs.ECS, physics *components.PhysicsData, obj *components.ObjectData, prevBottom float64) *resolv.Object {
	bottom := obj.Y + obj.H

	var found *resolv.Object
	components.Platform.Each(ecs.World, func(pe *donburi.Entry) {
		if found != nil {
			return
		}
		p := components.Object.Get(pe).Object
		if p == physics.IgnorePlatform {
			return
		}
		if prevBottom > p.Y {
			return
		}
		if bottom < p.Y-cfg.Physics.LandingBandAbove || bottom > p.Y+cfg.Physics.LandingBandBelow {
			return
		}
		if !supportsHorizontally(obj, p) {
			return
		}
		found = p
	})
	return found
}

func supportsHorizontally(obj *components.ObjectData, p *resolv.Object) bool {
	inset := cfg.Physics.PlatformInsetX
	return obj.X+obj.W > p.X+inset && obj.X < p.X+p.W-inset
}

func landOn(w donburi.World, e *donburi.Entry, stage *components.StageData, fighter *components.FighterData, physics *components.PhysicsData, state *components.StateData, obj *components.ObjectData, plat *resolv.Object) {
	obj.Y = plat.Y - obj.H
	physics.SpeedY = 0
	physics.OnGround = plat
	fighter.JumpCut = false
	fighter.CoyoteTime = 0

	if stage.Gravity != nil {
		stage.Gravity.OnLand(physics)
	}

	switch state.CurrentState {
	case cfg.Jumping, cfg.Falling:
		state.CanAct = false
		setState(w, e, cfg.Landing)
	}
}

// maintainSupport drops ground support once the fighter walks past the
// platform edge, arming the coyote window.
func maintainSupport(w donburi.World, e *donburi.Entry, fighter *components.FighterData, physics *components.PhysicsData, state *components.StateData, obj *components.ObjectData) {
	if physics.OnGround == nil {
		return
	}
	if supportsHorizontally(obj, physics.OnGround) {
		return
	}

	physics.OnGround = nil
	if physics.SpeedY >= 0 {
		fighter.CoyoteTime = cfg.Fighter.CoyoteTime
	}

	switch state.CurrentState {
	case cfg.Idle, cfg.Walking, cfg.Running, cfg.Crouching, cfg.Landing:
		state.CanAct = true
		setState(w, e, cfg.Falling)
	}
}

func clearIgnoredPlatform(physics *components.PhysicsData, obj *components.ObjectData) {
	p := physics.IgnorePlatform
	if p == nil {
		return
	}
	fallenPast := obj.Y+obj.H > p.Y+cfg.Physics.LandingBandBelow
	if fallenPast || !supportsHorizontally(obj, p) {
		physics.IgnorePlatform = nil
	}
}

// checkBlastZones records at most one KO per fighter per tick, tested
// in left, right, top, bottom order.
func checkBlastZones(stage *components.StageData, stocks *components.StocksData, obj *components.ObjectData) {
	if stocks.PendingKO != components.KONone {
		return
	}

	pos := obj.BottomCenter()
	switch {
	case pos.X < stage.BlastLeft:
		stocks.PendingKO = components.KOLeft
	case pos.X > stage.BlastRight:
		stocks.PendingKO = components.KORight
	case pos.Y < stage.BlastTop:
		stocks.PendingKO = components.KOTop
	case pos.Y > stage.BlastBottom:
		stocks.PendingKO = components.KOBottom
	default:
		return
	}
	stocks.KOPosition = pos
}
