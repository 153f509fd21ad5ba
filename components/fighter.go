package components

import (
	"github.com/stagebrawl/stagebrawl/config"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	PlayerIndex int // 1 or 2
	Archetype   string
	Facing      float64 // config.DirectionLeft or config.DirectionRight

	// Jump assistance
	CoyoteTime float64 // seconds remaining after walking off a ledge
	JumpCut    bool    // upward velocity already halved this jump

	RespawnInvulnFrames int

	// Per-slot cooldowns, keyed by attack variant
	Cooldowns map[config.AttackKey]int

	// Super armor and stance
	ArmorFrames      int
	StanceFrames     int
	StanceDamageMult float64

	// Movement buff
	BuffFrames    int
	BuffSpeedMult float64
	BuffAccelMult float64

	// Flight special
	FlightFrames int
}

var Fighter = donburi.NewComponentType[FighterData]()

// Invulnerable reports whether incoming hits are ignored entirely.
func (f *FighterData) Invulnerable(invincibilityTimer float64) bool {
	return invincibilityTimer > 0 || f.RespawnInvulnFrames > 0
}

// CooldownFor returns the remaining cooldown frames for an attack slot.
func (f *FighterData) CooldownFor(key config.AttackKey) int {
	if f.Cooldowns == nil {
		return 0
	}
	return f.Cooldowns[key]
}

// SetCooldown starts a cooldown for an attack slot.
func (f *FighterData) SetCooldown(key config.AttackKey, frames int) {
	if f.Cooldowns == nil {
		f.Cooldowns = make(map[config.AttackKey]int)
	}
	f.Cooldowns[key] = frames
}
