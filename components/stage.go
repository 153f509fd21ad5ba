package components

import "github.com/yohamta/donburi"

// GravityPolicy fully replaces the default gravity/friction/terminal
// velocity handling for one fighter for one tick. Implementations live
// in the stages package.
type GravityPolicy interface {
	// Apply adjusts the fighter's velocity for this tick. pos is the
	// fighter origin (bottom center), grounded the on-ground flag.
	Apply(phys *PhysicsData, pos Vector, grounded bool)

	// OnLand adjusts momentum the tick a fighter lands on a platform.
	OnLand(phys *PhysicsData)
}

// StageData is a singleton component describing the loaded stage.
type StageData struct {
	Name   string
	Width  float64
	Height float64

	// Blast zone bounds; crossing one KOs the fighter.
	BlastLeft   float64
	BlastRight  float64
	BlastTop    float64
	BlastBottom float64

	SpawnPoints []Vector

	// nil = engine default physics
	Gravity GravityPolicy
}

var Stage = donburi.NewComponentType[StageData]()

// SpawnPoint returns the spawn position for a player slot, deriving a
// fallback at 25%/75% of the stage width when the stage defines fewer
// points than fighters.
func (s *StageData) SpawnPoint(playerIndex int) Vector {
	if i := playerIndex - 1; i >= 0 && i < len(s.SpawnPoints) {
		return s.SpawnPoints[i]
	}
	x := s.Width * 0.25
	if playerIndex%2 == 0 {
		x = s.Width * 0.75
	}
	return Vector{X: x, Y: s.Height / 2}
}
