package components

import "github.com/yohamta/donburi"

// PlatformKind distinguishes platform behavior. Breakable and
// Temporary are reserved variants with no behavior yet.
type PlatformKind int

const (
	PlatformSolid PlatformKind = iota
	PlatformPassThrough
	PlatformMoving
	PlatformBreakable
	PlatformTemporary
)

type PlatformData struct {
	Kind PlatformKind
}

var Platform = donburi.NewComponentType[PlatformData]()
