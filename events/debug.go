package events

import (
	"log"

	"github.com/yohamta/donburi"
)

// AttachDebugSink subscribes a stdlib log sink to every event type.
// Intended for the headless demo binary and tests; production embeds
// attach nothing.
func AttachDebugSink(w donburi.World) {
	StateChanged.Subscribe(w, func(_ donburi.World, e StateChangedEvent) {
		log.Printf("p%d state %s -> %s", e.PlayerIndex, e.From, e.To)
	})
	HitboxSpawned.Subscribe(w, func(_ donburi.World, e HitboxSpawnedEvent) {
		log.Printf("p%d spawned %s at (%.0f, %.0f)", e.PlayerIndex, e.AttackName, e.Position.X, e.Position.Y)
	})
	HitApplied.Subscribe(w, func(_ donburi.World, e HitAppliedEvent) {
		log.Printf("p%d hit p%d with %s for %.0f (now %.0f%%)",
			e.AttackerIndex, e.DefenderIndex, e.AttackName, e.Damage, e.NewPercent)
	})
	FighterKOd.Subscribe(w, func(_ donburi.World, e FighterKOdEvent) {
		log.Printf("p%d KOd (%s), %d stocks left", e.PlayerIndex, e.Direction, e.StocksLeft)
	})
	FighterRespawned.Subscribe(w, func(_ donburi.World, e FighterRespawnedEvent) {
		log.Printf("p%d respawned at (%.0f, %.0f)", e.PlayerIndex, e.Position.X, e.Position.Y)
	})
	MatchEnded.Subscribe(w, func(_ donburi.World, e MatchEndedEvent) {
		log.Printf("match over, winner p%d", e.WinnerIndex)
	})
}
