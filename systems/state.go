package systems

import (
	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates swaps state tag components after a state change so
// queries can filter fighters by what they are doing.
func UpdateStates(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.CurrentState == state.PreviousState {
			return
		}

		removeAllStateTags(e)

		switch state.CurrentState {
		case cfg.Idle:
			donburi.Add(e, components.Idle, &components.IdleState{})
		case cfg.Walking:
			donburi.Add(e, components.Walking, &components.WalkingState{})
		case cfg.Running:
			donburi.Add(e, components.Running, &components.RunningState{})
		case cfg.Jumping:
			donburi.Add(e, components.Jumping, &components.JumpingState{})
		case cfg.Falling:
			donburi.Add(e, components.Falling, &components.FallingState{})
		case cfg.Landing:
			donburi.Add(e, components.Landing, &components.LandingState{})
		case cfg.Crouching:
			donburi.Add(e, components.Crouching, &components.CrouchingState{})
		case cfg.HitStun:
			donburi.Add(e, components.Stunned, &components.StunnedState{})
		default:
			if state.CurrentState.IsAttack() {
				donburi.Add(e, components.Attacking, &components.AttackingState{})
			}
		}

		state.PreviousState = state.CurrentState
	})
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.WalkingState](e, components.Walking)
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.FallingState](e, components.Falling)
	donburi.Remove[components.LandingState](e, components.Landing)
	donburi.Remove[components.CrouchingState](e, components.Crouching)
	donburi.Remove[components.AttackingState](e, components.Attacking)
	donburi.Remove[components.StunnedState](e, components.Stunned)
}

// setState transitions a fighter to a new state and publishes the
// change. Same-state requests are no-ops.
func setState(w donburi.World, e *donburi.Entry, to cfg.StateID) {
	state := components.State.Get(e)
	if state.CurrentState == to {
		return
	}

	from := state.CurrentState
	state.CurrentState = to
	state.StateTimer = 0

	fighter := components.Fighter.Get(e)
	events.StateChanged.Publish(w, events.StateChangedEvent{
		Fighter:     e,
		PlayerIndex: fighter.PlayerIndex,
		From:        from,
		To:          to,
	})
}
