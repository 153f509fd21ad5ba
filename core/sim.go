package core

import (
	"fmt"

	"github.com/stagebrawl/stagebrawl/archetypes"
	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/events"
	"github.com/stagebrawl/stagebrawl/stages"
	"github.com/stagebrawl/stagebrawl/systems"
	"github.com/stagebrawl/stagebrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Settings configure a new simulation. Zero values fall back to the
// match configuration defaults.
type Settings struct {
	Stage      stages.Definition
	Archetypes [2]string

	Stocks    int
	MatchTime float64
}

// Sim is a deterministic two-player match simulation. Wall time fed
// to Advance accumulates and drains in fixed ticks; rendering rate
// never changes the outcome.
type Sim struct {
	ecs      *ecs.ECS
	fighters [2]*donburi.Entry
	match    *donburi.Entry

	pending [2]inputSnapshot

	step        float64
	accumulator float64
	ticks       uint64
}

type inputSnapshot struct {
	actions [cfg.ActionCount]bool
	axisX   float64
	axisY   float64
}

func NewSim(settings Settings) (*Sim, error) {
	if settings.Stage.Width <= 0 || settings.Stage.Height <= 0 {
		return nil, fmt.Errorf("stage %q has no dimensions", settings.Stage.Name)
	}

	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	e.AddSystem(systems.UpdateFighters)
	e.AddSystem(systems.UpdateAttacks)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateMatch)
	e.AddSystem(systems.UpdateStates)
	e.AddSystem(flushEvents)

	stageEntry := factory.CreateStage(e, settings.Stage)
	stage := components.Stage.Get(stageEntry)

	sim := &Sim{
		ecs:  e,
		step: 1.0 / float64(cfg.C.TickRate),
	}

	stocks := settings.Stocks
	if stocks <= 0 {
		stocks = cfg.Match.StartingStocks
	}
	matchTime := settings.MatchTime
	if matchTime <= 0 {
		matchTime = cfg.Match.MatchTime
	}

	for i := 0; i < 2; i++ {
		playerIndex := i + 1
		spawn := stage.SpawnPoint(playerIndex)
		fighter, err := factory.CreateFighter(e, spawn.X, spawn.Y, playerIndex, settings.Archetypes[i])
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", playerIndex, err)
		}
		fighterStocks := components.Stocks.Get(fighter)
		fighterStocks.Stocks = stocks
		fighterStocks.MaxStocks = stocks
		sim.fighters[i] = fighter
	}

	sim.match = archetypes.Match.Spawn(e)
	components.Match.SetValue(sim.match, components.MatchData{
		State:              cfg.MatchStatePlaying,
		Timer:              matchTime,
		Duration:           matchTime,
		StartingStocks:     stocks,
		KOPercentThreshold: cfg.Match.KOPercentThreshold,
		WinnerIndex:        -1,
	})

	return sim, nil
}

func flushEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// SetInput replaces a player's input snapshot for the coming ticks.
// The snapshot is latched at the start of every tick, so press and
// release edges resolve per tick regardless of how often the caller
// updates.
func (s *Sim) SetInput(player int, actions [cfg.ActionCount]bool, axisX, axisY float64) error {
	if s.Fighter(player) == nil {
		return fmt.Errorf("no such player %d", player)
	}
	s.pending[player-1] = inputSnapshot{actions: actions, axisX: axisX, axisY: axisY}
	return nil
}

// Advance feeds wall time into the accumulator and drains it in fixed
// steps. Returns the number of ticks executed.
func (s *Sim) Advance(dt float64) int {
	if dt < 0 {
		return 0
	}
	s.accumulator += dt

	ran := 0
	for s.accumulator >= s.step {
		s.Tick()
		s.accumulator -= s.step
		ran++
	}
	return ran
}

// Tick runs exactly one fixed simulation step.
func (s *Sim) Tick() {
	for i, fighter := range s.fighters {
		in := s.pending[i]
		components.Input.Get(fighter).Apply(in.actions, in.axisX, in.axisY)
	}

	s.ecs.Update()
	s.ticks++
}

// Fighter returns the entry for player 1 or 2, nil otherwise.
func (s *Sim) Fighter(player int) *donburi.Entry {
	if player < 1 || player > len(s.fighters) {
		return nil
	}
	return s.fighters[player-1]
}

// Match returns the live match state.
func (s *Sim) Match() *components.MatchData {
	return components.Match.Get(s.match)
}

// ECS exposes the underlying world, mainly for inspection.
func (s *Sim) ECS() *ecs.ECS {
	return s.ecs
}

// Ticks reports how many fixed steps have run.
func (s *Sim) Ticks() uint64 {
	return s.ticks
}
