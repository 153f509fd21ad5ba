package stages

import (
	"github.com/stagebrawl/stagebrawl/components"
	"github.com/stagebrawl/stagebrawl/config"
)

// Plains is the ground-focused stage: a full-width solid floor, a
// central tower flanked by side towers, floating platforms between
// them, heavier gravity and stronger landing magnetism.
func Plains() Definition {
	const (
		width  = 1400.0
		height = 700.0

		mainH = 100.0
		mainY = height - mainH

		towerW = 200.0
		towerH = 180.0
		towerX = (width - towerW) / 2
		towerY = mainY - towerH

		sideTowerW = 150.0
		sideTowerH = 120.0
		sideTowerY = mainY - sideTowerH
		leftTowerX = 150.0

		floatW = 120.0
		floatH = 20.0
	)

	rightTowerX := width - 150 - sideTowerW

	// Floating platforms centered in the gaps between towers; they
	// oscillate, exercising the moving platform variant.
	leftGapStart := leftTowerX + sideTowerW
	rightGapStart := towerX + towerW
	leftFloatX := leftGapStart + (towerX-leftGapStart-floatW)/2
	rightFloatX := rightGapStart + (rightTowerX-rightGapStart-floatW)/2

	spawnY := mainY - 60
	center := width / 2

	return Definition{
		Name:   "plains",
		Width:  width,
		Height: height,

		Platforms: []PlatformDef{
			{X: 0, Y: mainY, W: width, H: mainH, Kind: components.PlatformSolid},
			{X: towerX, Y: towerY, W: towerW, H: towerH, Kind: components.PlatformSolid},
			{X: leftTowerX, Y: sideTowerY, W: sideTowerW, H: sideTowerH, Kind: components.PlatformSolid},
			{X: rightTowerX, Y: sideTowerY, W: sideTowerW, H: sideTowerH, Kind: components.PlatformSolid},
			{X: leftFloatX, Y: towerY, W: floatW, H: floatH, Kind: components.PlatformMoving, Travel: 64, Period: 2},
			{X: rightFloatX, Y: towerY, W: floatW, H: floatH, Kind: components.PlatformMoving, Travel: 64, Period: 2},
		},

		BlastLeft:   -200,
		BlastRight:  width + 200,
		BlastTop:    -200,
		BlastBottom: height + 200,

		SpawnPoints: []components.Vector{
			{X: center - 320, Y: spawnY},
			{X: center + 320, Y: spawnY},
		},

		Gravity: &plainsGravity{
			edgeLeft:  100,
			edgeRight: width - 100,
		},
	}
}

// plainsGravity keeps fighters grounded: 15% stronger gravity, 30%
// more air friction, lower terminal velocity, extra gravity near the
// stage edges and strong landing magnetism.
type plainsGravity struct {
	edgeLeft  float64
	edgeRight float64
}

func (g *plainsGravity) Apply(phys *components.PhysicsData, pos components.Vector, grounded bool) {
	if grounded {
		applyGroundFriction(phys, 0.08)
		return
	}

	gravity := config.Physics.Gravity * 1.15
	if pos.X < g.edgeLeft || pos.X > g.edgeRight {
		gravity *= 1.05
	}

	phys.SpeedY += gravity
	phys.SpeedX *= 1.0 - config.Physics.AirFriction*1.3
	if phys.SpeedY > 16.0 {
		phys.SpeedY = 16.0
	}
}

func (g *plainsGravity) OnLand(phys *components.PhysicsData) {
	phys.SpeedX *= 1.0 - 1.2*0.15
}

// applyGroundFriction moves horizontal speed toward zero by a
// fraction of its magnitude, never overshooting.
func applyGroundFriction(phys *components.PhysicsData, friction float64) {
	phys.SpeedX *= 1.0 - friction
	if phys.SpeedX > -0.01 && phys.SpeedX < 0.01 {
		phys.SpeedX = 0
	}
}
