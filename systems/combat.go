package systems

import (
	"math"

	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/events"
	"github.com/stagebrawl/stagebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves body slam contact, advances every hit
// instance and applies damage, knockback and hitstun on overlap.
// Expired hit instances are removed from both the world and the
// collision space after iteration.
func UpdateCombat(ecs *ecs.ECS) {
	applyBodySlams(ecs)

	var toRemove []*donburi.Entry

	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		obj := components.Object.Get(e)

		if hitbox.Projectile {
			obj.X += hitbox.VelX
			obj.Y += hitbox.VelY
			obj.Update()

			hitbox.Lifetime--
			if hitbox.Lifetime <= 0 || projectileOutOfBounds(obj) {
				toRemove = append(toRemove, e)
				return
			}
		} else {
			if hitbox.FramesRemaining <= 0 {
				toRemove = append(toRemove, e)
				return
			}
			if hitbox.FollowOwner {
				followOwner(hitbox, obj)
			}
		}

		if testHits(ecs, hitbox, obj) {
			toRemove = append(toRemove, e)
			return
		}

		if !hitbox.Projectile {
			hitbox.FramesRemaining--
			hitbox.AgeFrames++
		}
	})

	if len(toRemove) > 0 {
		space := components.Space.Get(components.Space.MustFirst(ecs.World))
		for _, e := range toRemove {
			space.Remove(components.Object.Get(e).Object)
			ecs.World.Remove(e.Entity())
		}
	}
}

func projectileOutOfBounds(obj *components.ObjectData) bool {
	return obj.X+obj.W < cfg.Physics.ProjectileCullLeft ||
		obj.X > cfg.Physics.ProjectileCullRight ||
		obj.Y > cfg.Physics.ProjectileCullBottom
}

func followOwner(hitbox *components.HitboxData, obj *components.ObjectData) {
	feet := components.Object.Get(hitbox.OwnerEntity).BottomCenter()
	obj.X = feet.X + hitbox.OffsetX - obj.W/2
	obj.Y = feet.Y + hitbox.OffsetY - obj.H/2
	obj.Update()
}

// testHits checks the hit instance against every fighter except its
// owner. Returns true when a single-hit instance connected and should
// be consumed.
func testHits(ecs *ecs.ECS, hitbox *components.HitboxData, obj *components.ObjectData) bool {
	consumed := false

	tags.Fighter.Each(ecs.World, func(def *donburi.Entry) {
		if consumed || def == hitbox.OwnerEntity || hitbox.HitEntities[def] {
			return
		}

		stocks := components.Stocks.Get(def)
		fighter := components.Fighter.Get(def)
		if stocks.KOd || fighter.Invulnerable(stocks.InvincibilityTimer) {
			return
		}
		if !components.Object.Get(def).Overlaps(obj.Object) {
			return
		}

		if hitbox.Multihit {
			if hitbox.AgeFrames-hitbox.LastHitFrame < hitbox.HitInterval {
				return
			}
			hitbox.LastHitFrame = hitbox.AgeFrames
			applyHit(ecs, hitbox.OwnerEntity, def, hitbox.Damage, hitbox.Knockback, hitbox.Angle, hitbox.AttackName, true)
			return
		}

		hitbox.HitEntities[def] = true
		applyHit(ecs, hitbox.OwnerEntity, def, hitbox.Damage, hitbox.Knockback, hitbox.Angle, hitbox.AttackName, false)
		consumed = true
	})

	return consumed
}

// applyBodySlams resolves attacker-body contact for slam attacks
// during their active phase. Contact applies once, kills most of the
// slide and ends the attack on the spot.
func applyBodySlams(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(atk *donburi.Entry) {
		session := components.AttackSession.Get(atk)
		if !session.Attacking() || !session.Spec.BodySlam || !session.InActive() {
			return
		}

		atkObj := components.Object.Get(atk)
		spec := session.Spec

		landed := false
		tags.Fighter.Each(ecs.World, func(def *donburi.Entry) {
			if landed || def == atk {
				return
			}

			stocks := components.Stocks.Get(def)
			fighter := components.Fighter.Get(def)
			if stocks.KOd || fighter.Invulnerable(stocks.InvincibilityTimer) {
				return
			}
			if !atkObj.Overlaps(components.Object.Get(def).Object) {
				return
			}

			landed = true
			applyHit(ecs, atk, def, spec.Damage, spec.Knockback, spec.Angle, spec.Name, false)
			components.Physics.Get(atk).SpeedX *= 0.2
			endAttack(ecs, atk)
		})
	})
}

// applyHit runs the full damage pipeline on the defender: armor
// absorption, percent accumulation, scaled knockback, hitstun and hit
// invincibility. Multihit hits grant no invincibility window.
func applyHit(ecs *ecs.ECS, attacker, defender *donburi.Entry, damage, knockback, angle float64, attackName string, multihit bool) {
	fighter := components.Fighter.Get(defender)
	stocks := components.Stocks.Get(defender)
	physics := components.Physics.Get(defender)
	state := components.State.Get(defender)

	atkFighter := components.Fighter.Get(attacker)

	// Super armor absorbs the hit: damage still lands, reduced while
	// in stance, but no knockback, hitstun or state change.
	if fighter.ArmorFrames > 0 {
		dmg := damage
		if fighter.StanceFrames > 0 && fighter.StanceDamageMult > 0 {
			dmg *= fighter.StanceDamageMult
		}
		stocks.DamagePercent = math.Min(stocks.DamagePercent+dmg, cfg.Combat.MaxPercent)

		events.HitApplied.Publish(ecs.World, events.HitAppliedEvent{
			Attacker:      attacker,
			Defender:      defender,
			AttackerIndex: atkFighter.PlayerIndex,
			DefenderIndex: fighter.PlayerIndex,
			AttackName:    attackName,
			Damage:        dmg,
			NewPercent:    stocks.DamagePercent,
		})
		return
	}

	stocks.DamagePercent = math.Min(stocks.DamagePercent+damage, cfg.Combat.MaxPercent)
	percent := stocks.DamagePercent

	mult := 1 + percent/cfg.Combat.ScalingDivisor
	if percent > 100 {
		mult += math.Pow((percent-80)/50, 1.5)
	}

	// Knockback pushes away from the attacker; the angle sets the
	// vertical component, negative angles launching upward.
	dir := 1.0
	if components.Object.Get(attacker).Center().X > components.Object.Get(defender).Center().X {
		dir = -1.0
	}
	rad := angle * math.Pi / 180
	kx := dir * knockback * math.Abs(math.Cos(rad)) * mult / physics.Weight
	ky := knockback * math.Sin(rad) * mult / physics.Weight

	physics.SpeedX += kx
	physics.SpeedY += ky
	if ky < 0 {
		physics.OnGround = nil
	}

	stocks.HitstunTimer = (damage + percent*cfg.Combat.HitstunPercentFactor) * cfg.Combat.HitstunBaseFactor
	if !multihit {
		stocks.InvincibilityTimer = cfg.Combat.HitInvincibility
	}
	state.CanAct = false

	// Getting hit interrupts whatever the defender was doing.
	if session := components.AttackSession.Get(defender); session.Attacking() {
		expireOwnedHitboxes(ecs, defender)
		session.Clear()
	}

	setState(ecs.World, defender, cfg.HitStun)

	events.HitApplied.Publish(ecs.World, events.HitAppliedEvent{
		Attacker:      attacker,
		Defender:      defender,
		AttackerIndex: atkFighter.PlayerIndex,
		DefenderIndex: fighter.PlayerIndex,
		AttackName:    attackName,
		Damage:        damage,
		KnockbackX:    kx,
		KnockbackY:    ky,
		NewPercent:    stocks.DamagePercent,
	})
}
