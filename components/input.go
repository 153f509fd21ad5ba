package components

import (
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for
// all logical actions, plus continuous axis values. Edge triggers are
// computed on demand by comparing frames, so digital and analog
// sources feed the same snapshot shape.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	AxisX float64 // [-1, 1]
	AxisY float64 // [-1, 1]
}

var Input = donburi.NewComponentType[InputData]()

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

func (in *InputData) JustReleased(a cfg.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}

// Horizontal combines the left/right booleans with the analog axis
// into a single -1/0/+1 direction.
func (in *InputData) Horizontal() float64 {
	switch {
	case in.Current[cfg.ActionLeft] || in.AxisX < -0.5:
		return -1
	case in.Current[cfg.ActionRight] || in.AxisX > 0.5:
		return 1
	}
	return 0
}

// Apply overwrites the current frame with a new snapshot, shifting the
// old current frame into Previous.
func (in *InputData) Apply(actions [cfg.ActionCount]bool, axisX, axisY float64) {
	in.Previous = in.Current
	in.Current = actions
	in.AxisX = axisX
	in.AxisY = axisY
}
