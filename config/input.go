package config

// ActionID represents a logical fighter action
type ActionID int

const (
	ActionLeft ActionID = iota
	ActionRight
	ActionUp
	ActionDown
	ActionAttack
	ActionSpecial
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionAttack:  "attack",
	ActionSpecial: "special",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
