package systems

import (
	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/events"
	"github.com/stagebrawl/stagebrawl/systems/factory"
	"github.com/stagebrawl/stagebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttacks advances every in-progress attack through its
// startup, active and recovery phases. The tick the attack started on
// counts as frame zero; effects spawn on the first active frame.
func UpdateAttacks(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		session := components.AttackSession.Get(e)
		if !session.Attacking() {
			return
		}

		stocks := components.Stocks.Get(e)
		if stocks.KOd {
			endAttack(ecs, e)
			return
		}

		spec := session.Spec

		if session.InActive() && !session.HitboxSpawned {
			spawnAttackEffect(ecs, e, spec)
			session.HitboxSpawned = true
		}

		if session.InActive() || poundFalling(session) {
			updateActivePhase(ecs, e, session, spec)
			if !session.Attacking() {
				return
			}
		}

		// A pound that is still airborne waits for the landing, even
		// past its nominal frame count.
		if session.Finished() && !poundFalling(session) {
			endAttack(ecs, e)
			return
		}

		session.Frames++
	})
}

// spawnAttackEffect runs once on the first active frame. Attacks that
// carry a flag (stance, buff, body slam) apply it here instead of
// spawning a hit instance.
func spawnAttackEffect(ecs *ecs.ECS, e *donburi.Entry, spec *cfg.AttackSpec) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	feet := components.Object.Get(e).BottomCenter()

	switch {
	case spec.Stance:
		fighter.StanceFrames = spec.StanceFrames
		fighter.StanceDamageMult = spec.StanceDamageMult
		if spec.StanceFrames > fighter.ArmorFrames {
			fighter.ArmorFrames = spec.StanceFrames
		}

	case spec.Buff:
		fighter.BuffFrames = spec.BuffFrames
		fighter.BuffSpeedMult = spec.BuffSpeedMult
		fighter.BuffAccelMult = spec.BuffAccelMult

	case spec.BodySlam:
		physics.SpeedX = fighter.Facing * spec.SlideSpeed

	case spec.GroundPound:
		// The leap was applied at attack start; the shockwave spawns
		// on landing.

	case spec.Projectile:
		x := feet.X + fighter.Facing*spec.SpawnOffsetX
		y := feet.Y + spec.SpawnOffsetY
		factory.CreateProjectile(ecs, e, spec, x, y, fighter.Facing*spec.ProjectileSpeed, 0)
		events.HitboxSpawned.Publish(ecs.World, events.HitboxSpawnedEvent{
			Owner:       e,
			PlayerIndex: fighter.PlayerIndex,
			AttackName:  spec.Name,
			Position:    components.Vector{X: x, Y: y},
			Projectile:  true,
		})

	default:
		hitbox := factory.CreateHitbox(ecs, e, spec)
		obj := components.Object.Get(hitbox)
		events.HitboxSpawned.Publish(ecs.World, events.HitboxSpawnedEvent{
			Owner:       e,
			PlayerIndex: fighter.PlayerIndex,
			AttackName:  spec.Name,
			Position:    obj.Center(),
		})
	}
}

func updateActivePhase(ecs *ecs.ECS, e *donburi.Entry, session *components.AttackSessionData, spec *cfg.AttackSpec) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	input := components.Input.Get(e)

	switch {
	case spec.BodySlam:
		// Holding the opposite direction cancels the slide.
		if input.Horizontal() == -fighter.Facing {
			endAttack(ecs, e)
			return
		}
		physics.SpeedX = fighter.Facing * spec.SlideSpeed

	case spec.Flight:
		if session.FlightHeld && input.Pressed(cfg.ActionAttack) && fighter.FlightFrames > 0 {
			physics.SpeedY = -physics.AirSpeed
			fighter.FlightFrames--
		} else if session.FlightHeld {
			session.FlightHeld = false
			skipToRecovery(session)
		}

	case spec.GroundPound:
		if physics.OnGround == nil {
			session.ShockwaveArmed = true
		} else if session.ShockwaveArmed {
			session.ShockwaveArmed = false
			feet := components.Object.Get(e).BottomCenter()
			factory.CreateShockwave(ecs, e, spec, feet.X, feet.Y)
			events.HitboxSpawned.Publish(ecs.World, events.HitboxSpawnedEvent{
				Owner:       e,
				PlayerIndex: fighter.PlayerIndex,
				AttackName:  spec.Name,
				Position:    feet,
			})
			session.Frames = spec.Startup + spec.Active
		}
	}
}

// poundFalling reports a ground pound still waiting to land.
func poundFalling(session *components.AttackSessionData) bool {
	return session.Attacking() && session.Spec.GroundPound && session.ShockwaveArmed
}

func skipToRecovery(session *components.AttackSessionData) {
	active := session.Spec.Startup + session.Spec.Active
	if session.Frames < active {
		session.Frames = active
	}
}

// startAttack begins an attack: locks the fighter, enters the attack
// state and applies start-of-attack momentum and armor.
func startAttack(ecs *ecs.ECS, e *donburi.Entry, spec cfg.AttackSpec, key cfg.AttackKey) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	session := components.AttackSession.Get(e)

	s := spec
	session.Clear()
	session.Spec = &s
	session.Key = key

	state.CanAct = false
	setState(ecs.World, e, spec.State)

	if spec.Cooldown > 0 {
		fighter.SetCooldown(key, spec.Cooldown)
	}
	if spec.ArmorFrames > 0 {
		fighter.ArmorFrames = spec.ArmorFrames
	}
	if spec.HaltMomentum {
		physics.SpeedX = 0
	}
	if spec.LaunchVX != 0 {
		physics.SpeedX = fighter.Facing * spec.LaunchVX
	}
	if spec.LaunchVY != 0 {
		physics.SpeedY = spec.LaunchVY
		physics.OnGround = nil
	}
	if spec.Flight {
		session.FlightHeld = true
		fighter.FlightFrames = spec.FlightFrames
	}
}

// endAttack unlocks the fighter and expires any hit instances still
// following it.
func endAttack(ecs *ecs.ECS, e *donburi.Entry) {
	session := components.AttackSession.Get(e)
	state := components.State.Get(e)
	physics := components.Physics.Get(e)

	expireOwnedHitboxes(ecs, e)
	session.Clear()
	state.CanAct = true

	if components.Stocks.Get(e).KOd {
		return
	}
	if physics.OnGround != nil {
		setState(ecs.World, e, cfg.Idle)
	} else {
		setState(ecs.World, e, cfg.Falling)
	}
}

func expireOwnedHitboxes(ecs *ecs.ECS, owner *donburi.Entry) {
	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		if hitbox.OwnerEntity == owner && hitbox.FollowOwner {
			hitbox.FramesRemaining = 0
		}
	})
}
