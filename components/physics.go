package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX float64
	SpeedY float64

	// Movement caps, seeded from the archetype stats. Buffs scale the
	// effective values through the multipliers on FighterData.
	WalkSpeed   float64
	RunSpeed    float64
	AirSpeed    float64
	GroundAccel float64
	GroundDecel float64
	AirAccel    float64
	AirDecel    float64

	JumpStrength float64
	Weight       float64

	OnGround       *resolv.Object
	IgnorePlatform *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
