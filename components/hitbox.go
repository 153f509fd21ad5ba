package components

import (
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	OwnerEntity *donburi.Entry // The fighter that created this hitbox

	Damage    float64
	Knockback float64
	Angle     float64 // degrees, negative = upward bias

	FramesRemaining int
	AttackName      string

	// Multihit bookkeeping
	Multihit     bool
	HitInterval  int
	AgeFrames    int
	LastHitFrame int

	// Projectile motion
	Projectile bool
	VelX       float64
	VelY       float64
	Lifetime   int

	// Melee hitboxes track the owner so moving attacks carry their
	// hit region with them. Offsets are from the owner's feet.
	FollowOwner bool
	OffsetX     float64
	OffsetY     float64

	HitEntities map[*donburi.Entry]bool // Entities already hit (prevent multiple hits)
}

var Hitbox = donburi.NewComponentType[HitboxData]()
