package events

import (
	"github.com/stagebrawl/stagebrawl/components"
	"github.com/stagebrawl/stagebrawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Simulation events, fire-and-forget. Subscribers run when the bus is
// flushed at the end of each tick; core correctness never depends on
// them.

type StateChangedEvent struct {
	Fighter     *donburi.Entry
	PlayerIndex int
	From        config.StateID
	To          config.StateID
}

type HitboxSpawnedEvent struct {
	Owner       *donburi.Entry
	PlayerIndex int
	AttackName  string
	Position    components.Vector
	Projectile  bool
}

type HitAppliedEvent struct {
	Attacker      *donburi.Entry
	Defender      *donburi.Entry
	AttackerIndex int
	DefenderIndex int
	AttackName    string
	Damage        float64
	KnockbackX    float64
	KnockbackY    float64
	NewPercent    float64
}

type FighterKOdEvent struct {
	Fighter     *donburi.Entry
	PlayerIndex int
	Direction   components.KODirection
	Position    components.Vector
	StocksLeft  int
}

type FighterRespawnedEvent struct {
	Fighter     *donburi.Entry
	PlayerIndex int
	Position    components.Vector
}

type MatchEndedEvent struct {
	WinnerIndex int
}

var (
	StateChanged     = events.NewEventType[StateChangedEvent]()
	HitboxSpawned    = events.NewEventType[HitboxSpawnedEvent]()
	HitApplied       = events.NewEventType[HitAppliedEvent]()
	FighterKOd       = events.NewEventType[FighterKOdEvent]()
	FighterRespawned = events.NewEventType[FighterRespawnedEvent]()
	MatchEnded       = events.NewEventType[MatchEndedEvent]()
)

// ProcessAllEvents flushes the bus to subscribers.
func ProcessAllEvents(w donburi.World) {
	events.ProcessAllEvents(w)
}
