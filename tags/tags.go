package tags

import "github.com/yohamta/donburi"

var (
	Fighter        = donburi.NewTag().SetName("Fighter")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Hitbox         = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvPassThrough = "passthrough"
	ResolvFighter     = "Fighter"
	ResolvHitbox      = "Hitbox"
)
