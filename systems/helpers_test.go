package systems_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/core"
	"github.com/stagebrawl/stagebrawl/stages"
)

// Battlefield geometry used throughout: main platform top at y=680
// spanning x=200..1000, side pass-through platforms at y=560.
const (
	groundY   = 680.0
	sidePlatY = 560.0
	sidePlatX = 250.0
)

func newDuelSim(t *testing.T, p1, p2 string) *core.Sim {
	t.Helper()
	sim, err := core.NewSim(core.Settings{
		Stage:      stages.Battlefield(),
		Archetypes: [2]string{p1, p2},
	})
	require.NoError(t, err)
	return sim
}

// settle runs enough ticks for both fighters to fall from their spawn
// points and come to rest on the main platform.
func settle(sim *core.Sim) {
	for i := 0; i < 120; i++ {
		sim.Tick()
	}
}

func place(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.SetBottomCenter(components.Vector{X: x, Y: y})
	obj.Update()
}

// setActions replaces a player's held actions for the coming ticks.
func setActions(t *testing.T, sim *core.Sim, player int, held ...cfg.ActionID) {
	t.Helper()
	var actions [cfg.ActionCount]bool
	for _, a := range held {
		actions[a] = true
	}
	require.NoError(t, sim.SetInput(player, actions, 0, 0))
}

// tap holds the given actions for exactly one tick.
func tap(t *testing.T, sim *core.Sim, player int, held ...cfg.ActionID) {
	t.Helper()
	setActions(t, sim, player, held...)
	sim.Tick()
	setActions(t, sim, player)
}

func run(sim *core.Sim, ticks int) {
	for i := 0; i < ticks; i++ {
		sim.Tick()
	}
}

func stocksOf(e *donburi.Entry) *components.StocksData {
	return components.Stocks.Get(e)
}

func physicsOf(e *donburi.Entry) *components.PhysicsData {
	return components.Physics.Get(e)
}

func stateOf(e *donburi.Entry) *components.StateData {
	return components.State.Get(e)
}

func fighterOf(e *donburi.Entry) *components.FighterData {
	return components.Fighter.Get(e)
}

func bottomOf(e *donburi.Entry) components.Vector {
	return components.Object.Get(e).BottomCenter()
}
