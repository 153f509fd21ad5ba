package config

import "fmt"

// AttackDirection selects an attack slot from held direction at the
// moment of the attack edge trigger.
type AttackDirection int

const (
	AttackNeutral AttackDirection = iota
	AttackSide
	AttackUp
	AttackDown
)

var attackDirectionNames = map[AttackDirection]string{
	AttackNeutral: "neutral",
	AttackSide:    "side",
	AttackUp:      "up",
	AttackDown:    "down",
}

func (d AttackDirection) String() string {
	if name, ok := attackDirectionNames[d]; ok {
		return name
	}
	return "unknown"
}

// AttackKey identifies one of the 8 attack variants of an archetype:
// {neutral, side, up, down} x {normal, special}.
type AttackKey struct {
	Direction AttackDirection
	Special   bool
}

// AttackSpec is a validated attack descriptor. Frame counts are
// simulation ticks. Zero hitbox dimensions fall back to the archetype
// defaults.
type AttackSpec struct {
	Name  string
	State StateID

	Startup  int
	Active   int
	Recovery int

	Damage    float64
	Knockback float64
	Angle     float64 // degrees, negative = upward bias

	// Hitbox placement relative to the fighter origin. RangeX is
	// mirrored by facing.
	RangeX  float64
	OffsetY float64
	Width   float64
	Height  float64

	// Momentum effects applied when the attack starts. LaunchVX is
	// mirrored by facing.
	HaltMomentum bool
	LaunchVX     float64
	LaunchVY     float64

	Cooldown int // frames before this slot can trigger again

	// Super armor during the attack.
	ArmorFrames int

	// Multihit: the hitbox persists and re-applies every HitInterval
	// frames instead of being consumed by the first hit.
	Multihit    bool
	HitInterval int

	// Projectile: the hitbox detaches, integrates its own position and
	// expires on lifetime or stage bounds.
	Projectile         bool
	ProjectileSpeed    float64
	ProjectileLifetime int
	SpawnOffsetX       float64
	SpawnOffsetY       float64

	// BodySlam: no discrete hitbox; the attacker's own body is the
	// collider while sliding at SlideSpeed.
	BodySlam   bool
	SlideSpeed float64

	// Stance: no hitbox; reduces incoming damage and grants super
	// armor for StanceFrames.
	Stance           bool
	StanceFrames     int
	StanceDamageMult float64

	// Buff: no hitbox; multiplies movement caps for BuffFrames.
	Buff          bool
	BuffFrames    int
	BuffSpeedMult float64
	BuffAccelMult float64

	// Flight: continuous ascent while the attack input is held, with a
	// persistent multihit hitbox, capped at FlightFrames.
	Flight       bool
	FlightFrames int

	// GroundPound: leap on startup, shockwave hitbox on landing.
	GroundPound      bool
	ShockwaveWidth   float64
	ShockwaveHeight  float64
	ShockwaveFrames  int
	ShockwaveAngle   float64
	ShockwaveOffsetY float64
}

// Validate rejects descriptor combinations the combat resolver cannot
// execute. Called for every table entry at package init.
func (a AttackSpec) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("attack has no name")
	}
	if a.Active <= 0 {
		return fmt.Errorf("attack %q: active frames must be positive", a.Name)
	}
	if a.Startup < 0 || a.Recovery < 0 {
		return fmt.Errorf("attack %q: negative frame counts", a.Name)
	}
	if a.Damage < 0 {
		return fmt.Errorf("attack %q: negative damage", a.Name)
	}
	if a.Projectile && a.BodySlam {
		return fmt.Errorf("attack %q: projectile and body slam are exclusive", a.Name)
	}
	if a.Multihit && a.HitInterval <= 0 {
		return fmt.Errorf("attack %q: multihit requires a positive hit interval", a.Name)
	}
	if a.Projectile && (a.ProjectileSpeed == 0 || a.ProjectileLifetime <= 0) {
		return fmt.Errorf("attack %q: projectile requires speed and lifetime", a.Name)
	}
	if a.BodySlam && a.SlideSpeed <= 0 {
		return fmt.Errorf("attack %q: body slam requires a slide speed", a.Name)
	}
	if a.Stance && (a.StanceFrames <= 0 || a.StanceDamageMult <= 0) {
		return fmt.Errorf("attack %q: stance requires duration and damage multiplier", a.Name)
	}
	if a.Buff && a.BuffFrames <= 0 {
		return fmt.Errorf("attack %q: buff requires a duration", a.Name)
	}
	if a.Flight && a.FlightFrames <= 0 {
		return fmt.Errorf("attack %q: flight requires a duration", a.Name)
	}
	if a.GroundPound && (a.ShockwaveWidth <= 0 || a.ShockwaveHeight <= 0 || a.ShockwaveFrames <= 0) {
		return fmt.Errorf("attack %q: ground pound requires shockwave dimensions and frames", a.Name)
	}
	return nil
}

// TotalFrames is the tick on which the attack auto-ends.
func (a AttackSpec) TotalFrames() int {
	return a.Startup + a.Active + a.Recovery
}

// Attacks maps archetype name to its attack table.
var Attacks map[string]map[AttackKey]AttackSpec

// AttackFor resolves an attack slot for an archetype, returning the
// key actually matched so cooldowns track the resolved slot. A missing
// special variant falls back to the normal variant of the same
// direction; a fully missing direction falls back to neutral normal.
func AttackFor(archetype string, dir AttackDirection, special bool) (AttackSpec, AttackKey, bool) {
	table, ok := Attacks[archetype]
	if !ok {
		return AttackSpec{}, AttackKey{}, false
	}
	for _, key := range []AttackKey{
		{Direction: dir, Special: special},
		{Direction: dir},
		{Direction: AttackNeutral},
	} {
		if spec, ok := table[key]; ok {
			return spec, key, true
		}
	}
	return AttackSpec{}, AttackKey{}, false
}

func init() {
	balanced := map[AttackKey]AttackSpec{
		{Direction: AttackNeutral}: {
			Name:      "sword_slash",
			State:     LightAttack,
			Startup:   5,
			Active:    4,
			Recovery:  6,
			Damage:    7,
			Knockback: 4,
			RangeX:    70,
			OffsetY:   -40,
		},
		{Direction: AttackSide}: {
			Name:         "sword_thrust",
			State:        HeavyAttack,
			Startup:      12,
			Active:       6,
			Recovery:     18,
			Damage:       15,
			Knockback:    10,
			Angle:        -10,
			RangeX:       90,
			OffsetY:      -50,
			HaltMomentum: true,
		},
		{Direction: AttackUp}: {
			Name:      "rising_slash",
			State:     UpSpecial,
			Startup:   8,
			Active:    8,
			Recovery:  20,
			Damage:    16,
			Knockback: 15,
			Angle:     -80,
			RangeX:    20,
			OffsetY:   -100,
		},
		{Direction: AttackDown}: {
			Name:               "energy_projectile",
			State:              DownSpecial,
			Startup:            20,
			Active:             5,
			Recovery:           25,
			Damage:             10,
			Knockback:          8,
			Width:              30,
			Height:             20,
			Projectile:         true,
			ProjectileSpeed:    8,
			ProjectileLifetime: 60,
			SpawnOffsetX:       40,
			SpawnOffsetY:       -40,
		},
	}

	rushdown := map[AttackKey]AttackSpec{
		{Direction: AttackNeutral}: {
			Name:      "lightning_jab",
			State:     LightAttack,
			Startup:   3,
			Active:    2,
			Recovery:  0,
			Damage:    12,
			Knockback: 4,
			RangeX:    50,
			OffsetY:   -35,
		},
		{Direction: AttackSide}: {
			Name:      "dash_attack",
			State:     HeavyAttack,
			Startup:   1,
			Active:    8,
			Recovery:  1,
			Damage:    15,
			Knockback: 6,
			Angle:     -5,
			RangeX:    65,
			OffsetY:   -35,
			Cooldown:  120,
		},
		{Direction: AttackSide, Special: true}: {
			Name:        "lightning_dash",
			State:       SideSpecial,
			Startup:     5,
			Active:      15,
			Recovery:    20,
			Damage:      4,
			Knockback:   5,
			RangeX:      80,
			OffsetY:     -35,
			LaunchVX:    18,
			Cooldown:    300,
			Multihit:    true,
			HitInterval: 5,
		},
		{Direction: AttackUp}: {
			Name:         "whirlwind_flight",
			State:        UpSpecial,
			Startup:      5,
			Active:       120,
			Recovery:     5,
			Damage:       2,
			Knockback:    3,
			Angle:        -90,
			RangeX:       0,
			OffsetY:      -35,
			Cooldown:     600,
			Multihit:     true,
			HitInterval:  10,
			Flight:       true,
			FlightFrames: 120,
		},
		{Direction: AttackDown}: {
			Name:          "speed_boost",
			State:         DownSpecial,
			Startup:       8,
			Active:        6,
			Recovery:      6,
			Buff:          true,
			BuffFrames:    180,
			BuffSpeedMult: 1.5,
			BuffAccelMult: 1.3,
		},
	}

	grappler := map[AttackKey]AttackSpec{
		{Direction: AttackNeutral}: {
			Name:        "heavy_punch",
			State:       LightAttack,
			Startup:     8,
			Active:      6,
			Recovery:    18,
			Damage:      18,
			Knockback:   9,
			RangeX:      75,
			OffsetY:     -50,
			ArmorFrames: 10,
		},
		{Direction: AttackSide}: {
			Name:        "hammer_slam",
			State:       HeavyAttack,
			Startup:     12,
			Active:      25,
			Recovery:    30,
			Damage:      18,
			Knockback:   8,
			Angle:       -10,
			ArmorFrames: 40,
			BodySlam:    true,
			SlideSpeed:  9.0,
		},
		{Direction: AttackUp}: {
			Name:             "ground_pound",
			State:            UpSpecial,
			Startup:          5,
			Active:           30,
			Recovery:         30,
			Damage:           26,
			Knockback:        12,
			RangeX:           120,
			OffsetY:          -50,
			LaunchVY:         -19.2,
			Cooldown:         600,
			GroundPound:      true,
			ShockwaveWidth:   120,
			ShockwaveHeight:  80,
			ShockwaveFrames:  10,
			ShockwaveAngle:   -60,
			ShockwaveOffsetY: -20,
		},
		{Direction: AttackDown}: {
			Name:             "armor_stance",
			State:            DownSpecial,
			Startup:          10,
			Active:           8,
			Recovery:         12,
			Stance:           true,
			StanceFrames:     240,
			StanceDamageMult: 0.5,
		},
	}

	Attacks = map[string]map[AttackKey]AttackSpec{
		"balanced": balanced,
		"rushdown": rushdown,
		"grappler": grappler,
	}

	for archetype, table := range Attacks {
		for key, spec := range table {
			if err := spec.Validate(); err != nil {
				panic(fmt.Sprintf("config: %s %s: %v", archetype, key.Direction, err))
			}
		}
	}
}
