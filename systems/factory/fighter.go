package factory

import (
	"fmt"

	"github.com/solarlune/resolv"
	"github.com/stagebrawl/stagebrawl/archetypes"
	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns a fighter of the given archetype with its feet
// at (x, y) and registers its collision object in the match space.
func CreateFighter(ecs *ecs.ECS, x, y float64, playerIndex int, archetype string) (*donburi.Entry, error) {
	stats, ok := cfg.Archetypes[archetype]
	if !ok {
		return nil, fmt.Errorf("unknown archetype %q", archetype)
	}

	fighter := archetypes.Fighter.Spawn(ecs)

	obj := resolv.NewObject(x-cfg.Fighter.Width/2, y-cfg.Fighter.Height, cfg.Fighter.Width, cfg.Fighter.Height)
	obj.AddTags(tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Fighter.Width, cfg.Fighter.Height))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	facing := cfg.DirectionRight
	if playerIndex%2 == 0 {
		facing = cfg.DirectionLeft
	}
	components.Fighter.SetValue(fighter, components.FighterData{
		PlayerIndex: playerIndex,
		Archetype:   archetype,
		Facing:      facing,
		Cooldowns:   make(map[cfg.AttackKey]int),
	})
	components.State.SetValue(fighter, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		CanAct:        true,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		WalkSpeed:    stats.WalkSpeed,
		RunSpeed:     stats.RunSpeed,
		AirSpeed:     stats.AirSpeed,
		GroundAccel:  groundAccel(stats),
		GroundDecel:  cfg.Fighter.GroundDecel,
		AirAccel:     cfg.Fighter.AirAccel,
		AirDecel:     cfg.Fighter.AirDecel,
		JumpStrength: stats.JumpStrength,
		Weight:       stats.Weight,
	})
	components.Stocks.SetValue(fighter, components.StocksData{
		Stocks:    cfg.Match.StartingStocks,
		MaxStocks: cfg.Match.StartingStocks,
	})

	space := components.Space.Get(components.Space.MustFirst(ecs.World))
	space.Add(obj)

	return fighter, nil
}

func groundAccel(stats cfg.ArchetypeConfig) float64 {
	if stats.GroundAccel > 0 {
		return stats.GroundAccel
	}
	return cfg.Fighter.GroundAccel
}
