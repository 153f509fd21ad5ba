package stages

import (
	"github.com/stagebrawl/stagebrawl/components"
	"github.com/stagebrawl/stagebrawl/config"
)

// Battlefield is the baseline competitive stage: a wide solid main
// platform with three pass-through platforms in a triangle formation
// and standard gravity.
func Battlefield() Definition {
	const (
		width  = 1200.0
		height = 800.0

		mainW = 800.0
		mainH = 40.0
		mainX = (width - mainW) / 2
		mainY = height - 120

		sideW = 180.0
		sideH = 20.0
		sideY = mainY - 120

		topW = 160.0
		topH = 20.0
		topY = sideY - 110
	)

	spawnY := mainY - 50
	center := mainX + mainW/2

	return Definition{
		Name:   "battlefield",
		Width:  width,
		Height: height,

		Platforms: []PlatformDef{
			{X: mainX, Y: mainY, W: mainW, H: mainH, Kind: components.PlatformSolid},
			{X: mainX + 50, Y: sideY, W: sideW, H: sideH, Kind: components.PlatformPassThrough},
			{X: mainX + mainW - sideW - 50, Y: sideY, W: sideW, H: sideH, Kind: components.PlatformPassThrough},
			{X: (width - topW) / 2, Y: topY, W: topW, H: topH, Kind: components.PlatformPassThrough},
		},

		BlastLeft:   -280,
		BlastRight:  width + 280,
		BlastTop:    -250,
		BlastBottom: height + 350,

		SpawnPoints: []components.Vector{
			{X: center - 250, Y: spawnY},
			{X: center + 250, Y: spawnY},
		},

		Gravity: &battlefieldGravity{
			highAltitudeY: topY + 50,
		},
	}
}

// battlefieldGravity is the reference policy: standard gravity with a
// reduced-gravity zone above the top platform and mild platform
// magnetism on landing. Grounded fighters keep their momentum; the
// only ground slowdown is the no-input deceleration in the movement
// system.
type battlefieldGravity struct {
	highAltitudeY float64
}

func (g *battlefieldGravity) Apply(phys *components.PhysicsData, pos components.Vector, grounded bool) {
	if grounded {
		return
	}

	gravity := config.Physics.Gravity
	if pos.Y < g.highAltitudeY {
		gravity *= 0.9
	}

	phys.SpeedY += gravity
	phys.SpeedX *= 1.0 - config.Physics.AirFriction
	if phys.SpeedY > 18.0 {
		phys.SpeedY = 18.0
	}
}

func (g *battlefieldGravity) OnLand(phys *components.PhysicsData) {
	phys.SpeedX *= 1.0 - 0.8*0.1
}
