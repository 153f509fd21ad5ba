package components

import (
	"github.com/stagebrawl/stagebrawl/config"
	"github.com/yohamta/donburi"
)

// AttackSessionData tracks the fighter's single current attack. Spec
// is nil when no attack is in progress.
type AttackSessionData struct {
	Spec          *config.AttackSpec
	Key           config.AttackKey
	Frames        int
	HitboxSpawned bool

	// Ground pound: set once airborne after the leap, so the landing
	// spawns the shockwave.
	ShockwaveArmed bool

	// Flight: attack input still held.
	FlightHeld bool
}

var AttackSession = donburi.NewComponentType[AttackSessionData]()

// Attacking reports whether an attack is in progress.
func (a *AttackSessionData) Attacking() bool {
	return a.Spec != nil
}

// Clear ends the attack session.
func (a *AttackSessionData) Clear() {
	a.Spec = nil
	a.Frames = 0
	a.HitboxSpawned = false
	a.ShockwaveArmed = false
	a.FlightHeld = false
}

// Phase helpers over the frame counter.

func (a *AttackSessionData) InActive() bool {
	return a.Spec != nil && a.Frames >= a.Spec.Startup && a.Frames < a.Spec.Startup+a.Spec.Active
}

func (a *AttackSessionData) Finished() bool {
	return a.Spec != nil && a.Frames >= a.Spec.TotalFrames()
}
