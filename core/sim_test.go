package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/core"
	"github.com/stagebrawl/stagebrawl/events"
	"github.com/stagebrawl/stagebrawl/stages"
)

func newSim(t *testing.T) *core.Sim {
	t.Helper()
	sim, err := core.NewSim(core.Settings{
		Stage:      stages.Battlefield(),
		Archetypes: [2]string{"balanced", "grappler"},
	})
	require.NoError(t, err)
	return sim
}

func TestNewSimRejectsUnknownArchetype(t *testing.T) {
	_, err := core.NewSim(core.Settings{
		Stage:      stages.Battlefield(),
		Archetypes: [2]string{"balanced", "wizard"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard")
}

func TestNewSimRejectsEmptyStage(t *testing.T) {
	_, err := core.NewSim(core.Settings{
		Archetypes: [2]string{"balanced", "balanced"},
	})
	require.Error(t, err)
}

func TestSetInputRejectsUnknownPlayer(t *testing.T) {
	sim := newSim(t)
	var actions [cfg.ActionCount]bool
	assert.Error(t, sim.SetInput(0, actions, 0, 0))
	assert.Error(t, sim.SetInput(3, actions, 0, 0))
	assert.NoError(t, sim.SetInput(1, actions, 0, 0))
	assert.NoError(t, sim.SetInput(2, actions, 0, 0))
}

func TestAdvanceDrainsAccumulatorInFixedSteps(t *testing.T) {
	sim := newSim(t)

	// 1.5 steps: one tick, half a step left over.
	assert.Equal(t, 1, sim.Advance(0.025))
	assert.EqualValues(t, 1, sim.Ticks())

	// Another 3 steps land on 3 more ticks with the leftover.
	assert.Equal(t, 3, sim.Advance(0.05))
	assert.EqualValues(t, 4, sim.Ticks())

	// Tiny slices eventually accumulate into a tick.
	total := 0
	for i := 0; i < 10; i++ {
		total += sim.Advance(0.002)
	}
	assert.Equal(t, 1, total)

	assert.Equal(t, 0, sim.Advance(-1))
}

func TestMatchStartsPlayingWithConfiguredStocks(t *testing.T) {
	sim, err := core.NewSim(core.Settings{
		Stage:      stages.Battlefield(),
		Archetypes: [2]string{"balanced", "balanced"},
		Stocks:     5,
		MatchTime:  99,
	})
	require.NoError(t, err)

	match := sim.Match()
	assert.Equal(t, cfg.MatchStatePlaying, match.State)
	assert.Equal(t, 99.0, match.Timer)
	assert.Equal(t, 5, match.StartingStocks)
	assert.Equal(t, 5, components.Stocks.Get(sim.Fighter(1)).Stocks)
	assert.Equal(t, -1, match.WinnerIndex)
}

func TestDamageThresholdKO(t *testing.T) {
	sim := newSim(t)
	p1 := sim.Fighter(1)

	var kos []events.FighterKOdEvent
	events.FighterKOd.Subscribe(sim.ECS().World, func(_ donburi.World, e events.FighterKOdEvent) {
		kos = append(kos, e)
	})

	components.Stocks.Get(p1).DamagePercent = cfg.Match.KOPercentThreshold + 1
	sim.Tick()

	stocks := components.Stocks.Get(p1)
	assert.True(t, stocks.KOd)
	assert.Equal(t, 2, stocks.Stocks)
	require.Len(t, kos, 1)
	assert.Equal(t, components.KODamage, kos[0].Direction)
	assert.Equal(t, 1, kos[0].PlayerIndex)
}

func TestMatchEndsWhenStocksRunOut(t *testing.T) {
	sim := newSim(t)
	p2 := sim.Fighter(2)

	ended := 0
	winner := 0
	events.MatchEnded.Subscribe(sim.ECS().World, func(_ donburi.World, e events.MatchEndedEvent) {
		ended++
		winner = e.WinnerIndex
	})

	stocks := components.Stocks.Get(p2)
	stocks.Stocks = 1
	stocks.DamagePercent = cfg.Match.KOPercentThreshold + 1
	sim.Tick()

	match := sim.Match()
	assert.True(t, match.Finished())
	assert.Equal(t, 1, match.WinnerIndex)
	assert.Equal(t, 1, ended)
	assert.Equal(t, 1, winner)

	// A finished match stops consuming the clock.
	before := match.Timer
	sim.Tick()
	assert.Equal(t, before, match.Timer)
}

func TestTimerExpiryLowestPercentWins(t *testing.T) {
	sim := newSim(t)

	components.Stocks.Get(sim.Fighter(1)).DamagePercent = 40
	components.Stocks.Get(sim.Fighter(2)).DamagePercent = 10
	sim.Match().Timer = 0.001

	sim.Tick()

	match := sim.Match()
	assert.True(t, match.Finished())
	assert.Equal(t, 2, match.WinnerIndex)
}

func TestTimerExpiryTieGoesToPlayerOne(t *testing.T) {
	sim := newSim(t)
	sim.Match().Timer = 0.001

	sim.Tick()

	match := sim.Match()
	assert.True(t, match.Finished())
	assert.Equal(t, 1, match.WinnerIndex)
}

func TestEliminatedFighterStaysOut(t *testing.T) {
	sim := newSim(t)
	p2 := sim.Fighter(2)

	stocks := components.Stocks.Get(p2)
	stocks.Stocks = 1
	stocks.DamagePercent = cfg.Match.KOPercentThreshold + 1

	// Run well past the respawn delay; with no stocks left the
	// fighter never comes back.
	for i := 0; i < 4*cfg.C.TickRate; i++ {
		sim.Tick()
	}

	assert.True(t, stocks.KOd)
	assert.Equal(t, 0, stocks.Stocks)
}
