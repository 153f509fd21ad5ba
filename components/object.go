package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Center returns the center of the collision rectangle.
func (o *ObjectData) Center() Vector {
	return Vector{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// BottomCenter returns the fighter origin: feet position at the
// bottom middle of the collision rectangle.
func (o *ObjectData) BottomCenter() Vector {
	return Vector{X: o.X + o.W/2, Y: o.Y + o.H}
}

// SetBottomCenter moves the rectangle so its bottom middle sits at v.
func (o *ObjectData) SetBottomCenter(v Vector) {
	o.X = v.X - o.W/2
	o.Y = v.Y - o.H
}

// Overlaps reports axis-aligned rectangle intersection with another
// object.
func (o *ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X < other.X+other.W && o.X+o.W > other.X &&
		o.Y < other.Y+other.H && o.Y+o.H > other.Y
}
