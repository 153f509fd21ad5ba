// Package stages defines the stage roster: platform layouts, blast
// zones, spawn points and per-stage gravity policies.
package stages

import "github.com/stagebrawl/stagebrawl/components"

// PlatformDef describes one platform rectangle of a stage layout.
type PlatformDef struct {
	X, Y, W, H float64
	Kind       components.PlatformKind

	// Moving platforms oscillate vertically by Travel pixels over
	// Period seconds each way.
	Travel float64
	Period float64
}

// Definition is a complete static stage description, consumed by the
// stage factory.
type Definition struct {
	Name   string
	Width  float64
	Height float64

	Platforms []PlatformDef

	BlastLeft   float64
	BlastRight  float64
	BlastTop    float64
	BlastBottom float64

	SpawnPoints []components.Vector

	Gravity components.GravityPolicy
}
