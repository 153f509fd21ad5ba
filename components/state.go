package components

import (
	"github.com/stagebrawl/stagebrawl/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds in the current state
	CanAct        bool
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type WalkingState struct{}
type RunningState struct{}
type JumpingState struct{}
type FallingState struct{}
type LandingState struct{}
type CrouchingState struct{}
type AttackingState struct{}
type StunnedState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Walking = donburi.NewComponentType[WalkingState]()
var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Falling = donburi.NewComponentType[FallingState]()
var Landing = donburi.NewComponentType[LandingState]()
var Crouching = donburi.NewComponentType[CrouchingState]()
var Attacking = donburi.NewComponentType[AttackingState]()
var Stunned = donburi.NewComponentType[StunnedState]()
