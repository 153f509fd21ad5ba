package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/events"
	"github.com/stagebrawl/stagebrawl/systems/factory"
)

// A balanced sword slash has 5 startup frames, so contact lands on
// the 5th tick after the press.
const slashContactTicks = 6

func TestHitAppliesDamageKnockbackAndHitstun(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 600, groundY)
	place(p2, 660, groundY)

	tap(t, sim, 1, cfg.ActionAttack)
	run(sim, slashContactTicks)

	stocks := stocksOf(p2)
	assert.Equal(t, 7.0, stocks.DamagePercent)
	assert.Greater(t, stocks.HitstunTimer, 0.0)
	assert.Greater(t, stocks.InvincibilityTimer, 0.0)
	assert.Equal(t, cfg.HitStun, stateOf(p2).CurrentState)
	assert.False(t, stateOf(p2).CanAct)

	// Attacker is on the left, so the defender gets pushed right.
	assert.Greater(t, physicsOf(p2).SpeedX, 0.0)
}

func TestKnockbackScalesWithPercent(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)

	hit := func(startPercent float64) float64 {
		place(p1, 600, groundY)
		place(p2, 660, groundY)
		stocks := stocksOf(p2)
		stocks.DamagePercent = startPercent
		stocks.HitstunTimer = 0
		stocks.InvincibilityTimer = 0
		physicsOf(p2).SpeedX = 0

		tap(t, sim, 1, cfg.ActionAttack)
		run(sim, slashContactTicks)
		kb := physicsOf(p2).SpeedX

		run(sim, 60) // recovery, hitstun, friction all wind down
		return kb
	}

	low := hit(0)
	high := hit(150)
	require.Greater(t, low, 0.0)
	assert.Greater(t, high, low)
}

func TestHeavierFightersTakeLessKnockback(t *testing.T) {
	kbAgainst := func(defender string) float64 {
		sim := newDuelSim(t, "balanced", defender)
		settle(sim)

		p1, p2 := sim.Fighter(1), sim.Fighter(2)
		place(p1, 600, groundY)
		place(p2, 660, groundY)

		tap(t, sim, 1, cfg.ActionAttack)
		run(sim, slashContactTicks)
		return physicsOf(p2).SpeedX
	}

	light := kbAgainst("rushdown") // weight 0.7
	heavy := kbAgainst("grappler") // weight 1.8
	require.Greater(t, heavy, 0.0)
	assert.Greater(t, light, heavy)
}

func TestInvincibilitySuppressesHits(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 600, groundY)
	place(p2, 660, groundY)
	stocksOf(p2).InvincibilityTimer = 5.0

	tap(t, sim, 1, cfg.ActionAttack)
	run(sim, slashContactTicks)

	assert.Equal(t, 0.0, stocksOf(p2).DamagePercent)
	assert.NotEqual(t, cfg.HitStun, stateOf(p2).CurrentState)
}

func TestRespawnInvulnerabilitySuppressesHits(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 600, groundY)
	place(p2, 660, groundY)
	fighterOf(p2).RespawnInvulnFrames = 600

	tap(t, sim, 1, cfg.ActionAttack)
	run(sim, slashContactTicks)

	assert.Equal(t, 0.0, stocksOf(p2).DamagePercent)
}

func TestArmorAbsorbsKnockbackButNotDamage(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 600, groundY)
	place(p2, 660, groundY)
	fighterOf(p2).ArmorFrames = 600

	tap(t, sim, 1, cfg.ActionAttack)
	run(sim, slashContactTicks)

	assert.Equal(t, 7.0, stocksOf(p2).DamagePercent)
	assert.Equal(t, 0.0, physicsOf(p2).SpeedX)
	assert.NotEqual(t, cfg.HitStun, stateOf(p2).CurrentState)
	assert.Equal(t, 0.0, stocksOf(p2).HitstunTimer)
}

func TestStanceHalvesAbsorbedDamage(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 600, groundY)
	place(p2, 660, groundY)
	fighter := fighterOf(p2)
	fighter.ArmorFrames = 600
	fighter.StanceFrames = 600
	fighter.StanceDamageMult = 0.5

	tap(t, sim, 1, cfg.ActionAttack)
	run(sim, slashContactTicks)

	assert.Equal(t, 3.5, stocksOf(p2).DamagePercent)
}

func TestMultihitLandsOnInterval(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 600, groundY)
	place(p2, 620, groundY)

	hits := 0
	events.HitApplied.Subscribe(sim.ECS().World, func(_ donburi.World, _ events.HitAppliedEvent) {
		hits++
	})

	spec := &cfg.AttackSpec{
		Name:        "drill",
		Active:      15,
		Damage:      2,
		Multihit:    true,
		HitInterval: 5,
		Width:       100,
		Height:      90,
		OffsetY:     -40,
	}
	factory.CreateHitbox(sim.ECS(), p1, spec)

	run(sim, 20)

	assert.Equal(t, 3, hits)
	assert.Equal(t, 6.0, stocksOf(p2).DamagePercent)
}

func TestSingleHitInstanceIsConsumedOnContact(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 600, groundY)
	place(p2, 620, groundY)

	spec := &cfg.AttackSpec{
		Name:    "poke",
		Active:  30,
		Damage:  5,
		Width:   100,
		Height:  90,
		OffsetY: -40,
	}
	factory.CreateHitbox(sim.ECS(), p1, spec)

	run(sim, 40)

	// One hit despite 30 active frames of overlap.
	assert.Equal(t, 5.0, stocksOf(p2).DamagePercent)

	remaining := 0
	components.Hitbox.Each(sim.ECS().World, func(_ *donburi.Entry) { remaining++ })
	assert.Zero(t, remaining)
}

func TestProjectileTravelsAndExpires(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 400, groundY)
	place(p2, 700, groundY)

	// Down + attack fires the energy projectile (20 startup frames).
	setActions(t, sim, 1, cfg.ActionDown, cfg.ActionAttack)
	sim.Tick()
	setActions(t, sim, 1)

	run(sim, 60)

	assert.Greater(t, stocksOf(p2).DamagePercent, 0.0)
}

func TestBodySlamEndsImmediatelyOnContact(t *testing.T) {
	sim := newDuelSim(t, "grappler", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 500, groundY)
	place(p2, 640, groundY)

	// Side + attack starts the hammer slam (12 startup frames).
	setActions(t, sim, 1, cfg.ActionRight, cfg.ActionAttack)
	sim.Tick()
	setActions(t, sim, 1)

	run(sim, 40)

	// Contact ends the attack on the spot; the attacker does not sit
	// out the remaining active and recovery frames.
	session := components.AttackSession.Get(p1)
	assert.False(t, session.Attacking())
	assert.True(t, stateOf(p1).CanAct)
	assert.Equal(t, cfg.Idle, stateOf(p1).CurrentState)
	assert.Equal(t, 0.0, physicsOf(p1).SpeedX)

	// One contact despite the long active window.
	assert.Equal(t, 18.0, stocksOf(p2).DamagePercent)
}

func TestHitInterruptsDefendersAttack(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1, p2 := sim.Fighter(1), sim.Fighter(2)
	place(p1, 600, groundY)
	place(p2, 660, groundY)

	// p2 starts a slow sword thrust toward p1; p1's faster slash lands
	// during its startup and cancels it.
	setActions(t, sim, 2, cfg.ActionLeft, cfg.ActionAttack)
	setActions(t, sim, 1, cfg.ActionAttack)
	sim.Tick()
	setActions(t, sim, 1)
	setActions(t, sim, 2)

	run(sim, slashContactTicks)

	assert.Equal(t, cfg.HitStun, stateOf(p2).CurrentState)
	assert.False(t, components.AttackSession.Get(p2).Attacking())
}
