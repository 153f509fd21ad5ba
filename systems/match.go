package systems

import (
	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/events"
	"github.com/stagebrawl/stagebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch runs the match lifecycle: damage-threshold KOs,
// consuming pending KO records, respawns, the match clock and the end
// conditions.
func UpdateMatch(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStatePlaying {
		return
	}

	dt := 1.0 / float64(cfg.C.TickRate)
	stage := components.Stage.Get(components.Stage.MustFirst(ecs.World))

	match.Timer -= dt

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		stocks := components.Stocks.Get(e)
		obj := components.Object.Get(e)

		if !stocks.KOd && stocks.PendingKO == components.KONone && stocks.DamagePercent >= match.KOPercentThreshold {
			stocks.PendingKO = components.KODamage
			stocks.KOPosition = obj.BottomCenter()
		}

		if stocks.PendingKO != components.KONone {
			koFighter(ecs, e, stage)
		}

		if stocks.KOd && stocks.Stocks > 0 {
			stocks.RespawnTimer -= dt
			if stocks.RespawnTimer <= 0 {
				respawnFighter(ecs, e, stage)
			}
		}
	})

	checkEndConditions(ecs, match)
}

func koFighter(ecs *ecs.ECS, e *donburi.Entry, stage *components.StageData) {
	fighter := components.Fighter.Get(e)
	stocks := components.Stocks.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	stocks.Stocks--
	direction := stocks.PendingKO
	position := stocks.KOPosition

	stocks.PendingKO = components.KONone
	stocks.KOd = true
	stocks.DamagePercent = 0
	stocks.HitstunTimer = 0
	stocks.InvincibilityTimer = 0
	stocks.RespawnTimer = cfg.Match.RespawnDelay

	endAttack(ecs, e)

	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil
	physics.IgnorePlatform = nil

	// Park the body outside the playfield until the respawn.
	parkX := -500.0
	if fighter.PlayerIndex%2 == 0 {
		parkX = stage.Width + 500
	}
	obj.SetBottomCenter(components.Vector{X: parkX, Y: stage.Height / 2})
	obj.Update()

	events.FighterKOd.Publish(ecs.World, events.FighterKOdEvent{
		Fighter:     e,
		PlayerIndex: fighter.PlayerIndex,
		Direction:   direction,
		Position:    position,
		StocksLeft:  stocks.Stocks,
	})
}

func respawnFighter(ecs *ecs.ECS, e *donburi.Entry, stage *components.StageData) {
	fighter := components.Fighter.Get(e)
	stocks := components.Stocks.Get(e)
	state := components.State.Get(e)
	obj := components.Object.Get(e)

	spawn := stage.SpawnPoint(fighter.PlayerIndex)
	spawn.Y += cfg.Match.RespawnHeightOffset
	obj.SetBottomCenter(spawn)
	obj.Update()

	stocks.KOd = false
	stocks.RespawnTimer = 0
	fighter.RespawnInvulnFrames = cfg.Match.RespawnInvulnFrames
	fighter.CoyoteTime = 0
	fighter.JumpCut = false

	state.CanAct = true
	setState(ecs.World, e, cfg.Falling)

	events.FighterRespawned.Publish(ecs.World, events.FighterRespawnedEvent{
		Fighter:     e,
		PlayerIndex: fighter.PlayerIndex,
		Position:    spawn,
	})
}

// checkEndConditions finishes the match when a fighter is out of
// stocks or the clock hits zero. Timer expiry goes to the lowest
// percent; player 1 takes a dead tie.
func checkEndConditions(ecs *ecs.ECS, match *components.MatchData) {
	type standing struct {
		index   int
		stocks  int
		percent float64
	}

	var fighters []standing
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := components.Fighter.Get(e)
		stocks := components.Stocks.Get(e)
		fighters = append(fighters, standing{
			index:   fighter.PlayerIndex,
			stocks:  stocks.Stocks,
			percent: stocks.DamagePercent,
		})
	})
	if len(fighters) == 0 {
		return
	}

	for _, f := range fighters {
		if f.stocks > 0 {
			continue
		}
		winner := 0
		for _, other := range fighters {
			if other.index != f.index {
				winner = other.index
				break
			}
		}
		finishMatch(ecs, match, winner)
		return
	}

	if match.Timer > 0 {
		return
	}

	best := fighters[0]
	for _, f := range fighters[1:] {
		if f.percent < best.percent || (f.percent == best.percent && f.index < best.index) {
			best = f
		}
	}
	finishMatch(ecs, match, best.index)
}

func finishMatch(ecs *ecs.ECS, match *components.MatchData, winnerIndex int) {
	match.State = cfg.MatchStateFinished
	match.WinnerIndex = winnerIndex
	match.Timer = 0

	events.MatchEnded.Publish(ecs.World, events.MatchEndedEvent{WinnerIndex: winnerIndex})
}
