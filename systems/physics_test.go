package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
)

func TestFightersSettleOntoMainPlatform(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	for player := 1; player <= 2; player++ {
		e := sim.Fighter(player)
		assert.Equal(t, groundY, bottomOf(e).Y, "player %d", player)
		assert.NotNil(t, physicsOf(e).OnGround, "player %d", player)
		assert.Equal(t, cfg.Idle, stateOf(e).CurrentState, "player %d", player)
	}
}

func TestLandingSnapsToPlatformTop(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	place(p1, 600, groundY-200)
	physics := physicsOf(p1)
	physics.OnGround = nil
	physics.SpeedY = 0
	stateOf(p1).CurrentState = cfg.Falling

	run(sim, 60)

	assert.Equal(t, groundY, bottomOf(p1).Y)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.NotNil(t, physics.OnGround)
}

func TestFastFallDoesNotTunnelThroughLandingBand(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	physics := physicsOf(p1)

	// A full landing-band hop per tick would skip the band without
	// sub-stepping.
	place(p1, 600, groundY-6)
	physics.OnGround = nil
	physics.SpeedY = 17.0
	stateOf(p1).CurrentState = cfg.Falling

	sim.Tick()

	assert.Equal(t, groundY, bottomOf(p1).Y)
	assert.NotNil(t, physics.OnGround)
}

func TestBlastZoneKOConsumesStockAndRespawns(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	stocksOf(p1).DamagePercent = 80
	place(p1, -350, 400) // past the left blast zone
	physicsOf(p1).OnGround = nil

	sim.Tick()

	stocks := stocksOf(p1)
	assert.True(t, stocks.KOd)
	assert.Equal(t, 2, stocks.Stocks)
	assert.Equal(t, 0.0, stocks.DamagePercent)
	assert.Equal(t, components.KONone, stocks.PendingKO)

	// Respawn after the delay, above the spawn point, invulnerable.
	respawnTicks := int(cfg.Match.RespawnDelay*float64(cfg.C.TickRate)) + 2
	run(sim, respawnTicks)

	require.False(t, stocks.KOd)
	assert.Greater(t, fighterOf(p1).RespawnInvulnFrames, cfg.Match.RespawnInvulnFrames-10)
	assert.InDelta(t, 350, bottomOf(p1).X, 1)
	assert.Less(t, bottomOf(p1).Y, groundY)
}

func TestAtMostOneKOPerCrossing(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	place(p1, -350, 400)
	physicsOf(p1).OnGround = nil

	run(sim, 10)

	// Only one stock lost even though the fighter sat past the line
	// for several ticks before being parked.
	assert.Equal(t, 2, stocksOf(p1).Stocks)
}

func TestApexInsideLandingBandDoesNotSnapUp(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	// Launch straight up beneath the top platform so the apex hovers
	// inside its landing band; the fighter must fall back to the main
	// platform instead of snapping onto the one above.
	p1 := sim.Fighter(1)
	place(p1, 600, groundY)
	physics := physicsOf(p1)
	physics.OnGround = nil
	physics.SpeedY = -19.2
	stateOf(p1).CurrentState = cfg.Jumping

	for i := 0; i < 120 && physics.OnGround == nil; i++ {
		sim.Tick()
	}

	require.NotNil(t, physics.OnGround)
	assert.Equal(t, groundY, bottomOf(p1).Y)
}

func TestRunSpeedReachesArchetypeCap(t *testing.T) {
	sim := newDuelSim(t, "rushdown", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	place(p1, 300, groundY)

	setActions(t, sim, 1, cfg.ActionRight)
	run(sim, 30)

	assert.Equal(t, physicsOf(p1).RunSpeed, physicsOf(p1).SpeedX)
}

func TestCoyoteJumpAfterLeavingLedge(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	// Main platform ends at x=1000; walk right off the edge.
	place(p1, 990, groundY)
	setActions(t, sim, 1, cfg.ActionRight)
	for i := 0; i < 60 && physicsOf(p1).OnGround != nil; i++ {
		sim.Tick()
	}
	require.Nil(t, physicsOf(p1).OnGround)
	require.Greater(t, fighterOf(p1).CoyoteTime, 0.0)

	setActions(t, sim, 1, cfg.ActionRight, cfg.ActionUp)
	sim.Tick()

	assert.Less(t, physicsOf(p1).SpeedY, 0.0)
	assert.Equal(t, cfg.Jumping, stateOf(p1).CurrentState)
}

func TestShortHopOnImmediateRelease(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	physics := physicsOf(p1)

	setActions(t, sim, 1, cfg.ActionUp)
	sim.Tick()
	fullJumpSpeed := physics.SpeedY

	setActions(t, sim, 1)
	sim.Tick()

	assert.Greater(t, physics.SpeedY, fullJumpSpeed)
	assert.InDelta(t, -cfg.Fighter.ShortHopStrength, physics.SpeedY, 1.0)
}

func TestJumpCutHalvesRiseOnce(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	physics := physicsOf(p1)

	setActions(t, sim, 1, cfg.ActionUp)
	run(sim, 8)
	require.Less(t, physics.SpeedY, 0.0)
	before := physics.SpeedY

	setActions(t, sim, 1)
	sim.Tick()

	// Halved, then gravity for the tick.
	assert.InDelta(t, before/2, physics.SpeedY, 1.0)
	assert.True(t, fighterOf(p1).JumpCut)
}

func TestDropThroughPassThroughPlatform(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	place(p1, sidePlatX+90, sidePlatY-1)
	physics := physicsOf(p1)
	physics.OnGround = nil
	physics.SpeedY = 0
	stateOf(p1).CurrentState = cfg.Falling

	run(sim, 30)
	require.Equal(t, sidePlatY, bottomOf(p1).Y)

	tap(t, sim, 1, cfg.ActionDown)
	run(sim, 90)

	// Fell through the side platform and landed on the main one.
	assert.Equal(t, groundY, bottomOf(p1).Y)
	assert.Nil(t, physics.IgnorePlatform)
}

func TestSolidPlatformCannotBeDroppedThrough(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	place(p1, 600, groundY)

	tap(t, sim, 1, cfg.ActionDown)
	run(sim, 30)

	assert.Equal(t, groundY, bottomOf(p1).Y)
	assert.NotNil(t, physicsOf(p1).OnGround)
}

func TestTerminalVelocityCapped(t *testing.T) {
	sim := newDuelSim(t, "balanced", "balanced")
	settle(sim)

	p1 := sim.Fighter(1)
	physics := physicsOf(p1)
	place(p1, 600, 100)
	physics.OnGround = nil
	physics.SpeedY = 0
	stateOf(p1).CurrentState = cfg.Falling

	run(sim, 20)

	// Battlefield caps fall speed at 18.
	assert.LessOrEqual(t, physics.SpeedY, 18.0)
}
