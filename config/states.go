package config

// StateID identifies a fighter state machine state
type StateID int

const (
	StateNone StateID = iota

	Idle
	Walking
	Running
	Jumping
	Falling
	Landing
	Crouching

	LightAttack
	HeavyAttack
	SideSpecial
	UpSpecial
	DownSpecial
	NeutralSpecial

	HitStun

	// Reserved variants: declared for future movesets, no input path
	// produces them yet.
	Blocking
	Knockdown
	Grabbing
	Grabbed
)

// MatchStateID identifies a match lifecycle state
type MatchStateID int

const (
	MatchStateWaiting MatchStateID = iota
	MatchStatePlaying
	MatchStateFinished
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	Idle:           "idle",
	Walking:        "walking",
	Running:        "running",
	Jumping:        "jumping",
	Falling:        "falling",
	Landing:        "landing",
	Crouching:      "crouching",
	LightAttack:    "light_attack",
	HeavyAttack:    "heavy_attack",
	SideSpecial:    "side_special",
	UpSpecial:      "up_special",
	DownSpecial:    "down_special",
	NeutralSpecial: "neutral_special",
	HitStun:        "hitstun",
	Blocking:       "blocking",
	Knockdown:      "knockdown",
	Grabbing:       "grabbing",
	Grabbed:        "grabbed",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsAttack reports whether the state is one of the attack states.
func (s StateID) IsAttack() bool {
	switch s {
	case LightAttack, HeavyAttack, SideSpecial, UpSpecial, DownSpecial, NeutralSpecial:
		return true
	}
	return false
}
