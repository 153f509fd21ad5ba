package config

import "github.com/yohamta/donburi/ecs"

// PhysicsConfig contains global physics configuration values
type PhysicsConfig struct {
	// Global physics
	Gravity          float64
	TerminalVelocity float64
	AirFriction      float64
	GroundFriction   float64

	// Integration
	DisplayRate   float64 // reference frame rate for displacement scaling
	SubStepPixels float64 // max displacement per collision sub-step

	// Platform landing
	LandingBandAbove float64 // pixels above platform top that still count as landing
	LandingBandBelow float64 // pixels below platform top that still count as landing
	PlatformInsetX   float64 // horizontal inset before a platform supports a fighter

	// Projectile culling bounds
	ProjectileCullLeft   float64
	ProjectileCullRight  float64
	ProjectileCullBottom float64
}

// FighterConfig contains base fighter configuration shared by all archetypes
type FighterConfig struct {
	// Ground movement
	WalkSpeed   float64
	RunSpeed    float64
	GroundAccel float64
	GroundDecel float64

	// Air movement
	AirAccel float64
	AirDecel float64

	// Jumping
	JumpStrength     float64
	ShortHopStrength float64
	CoyoteTime       float64 // seconds after leaving ground where jump still works
	LandingLag       float64 // seconds of lag after landing from an aerial

	// Dimensions
	Width  float64
	Height float64
}

// ArchetypeConfig contains per-archetype stat overrides
type ArchetypeConfig struct {
	Name   string
	Weight float64 // divides incoming knockback

	WalkSpeed float64
	RunSpeed  float64
	AirSpeed  float64

	GroundAccel  float64 // 0 = use base
	JumpStrength float64

	// Default hitbox dimensions for melee attacks
	HitboxWidth   float64
	HitboxHeight  float64
	HitboxOffsetY float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Damage scaling
	ScalingDivisor float64 // knockback multiplier = 1 + percent/divisor
	MaxPercent     float64

	// Hitstun: seconds = (damage + percent*PercentFactor) * BaseFactor
	HitstunBaseFactor    float64
	HitstunPercentFactor float64

	// Invincibility
	HitInvincibility float64 // seconds after taking a hit
}

// MatchConfig contains match lifecycle configuration values
type MatchConfig struct {
	StartingStocks      int
	MatchTime           float64 // seconds
	KOPercentThreshold  float64
	RespawnDelay        float64 // seconds off-stage before respawning
	RespawnInvulnFrames int
	RespawnHeightOffset float64 // spawn height above platform surface
}

// SimConfig holds general simulation configuration
type SimConfig struct {
	TickRate int
}

// Default is the ECS layer all entities are created on.
const Default ecs.LayerID = 0

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Global configuration instances
var C *SimConfig
var Physics PhysicsConfig
var Fighter FighterConfig
var Combat CombatConfig
var Match MatchConfig
var Archetypes map[string]ArchetypeConfig

func init() {
	C = &SimConfig{
		TickRate: 60,
	}

	Physics = PhysicsConfig{
		Gravity:          0.8,
		TerminalVelocity: 20.0,
		AirFriction:      0.02,
		GroundFriction:   0.15,

		DisplayRate:   60.0,
		SubStepPixels: 10.0,

		LandingBandAbove: 5.0,
		LandingBandBelow: 10.0,
		PlatformInsetX:   5.0,

		ProjectileCullLeft:   -100.0,
		ProjectileCullRight:  1380.0,
		ProjectileCullBottom: 800.0,
	}

	Fighter = FighterConfig{
		WalkSpeed:   8.0,
		RunSpeed:    12.0,
		GroundAccel: 1.2,
		GroundDecel: 1.8,

		AirAccel: 0.6,
		AirDecel: 0.3,

		JumpStrength:     15.0,
		ShortHopStrength: 8.0,
		CoyoteTime:       0.1,
		LandingLag:       0.2,

		Width:  60.0,
		Height: 80.0,
	}

	balanced := ArchetypeConfig{
		Name:   "balanced",
		Weight: 1.0,

		WalkSpeed: 3.5,
		RunSpeed:  6.5,
		AirSpeed:  4.0,

		JumpStrength: 16.0,

		HitboxWidth:   60.0,
		HitboxHeight:  50.0,
		HitboxOffsetY: -40.0,
	}

	rushdown := ArchetypeConfig{
		Name:   "rushdown",
		Weight: 0.7,

		WalkSpeed: 10.0,
		RunSpeed:  16.0,
		AirSpeed:  6.0,

		GroundAccel:  1.6,
		JumpStrength: 16.0,

		HitboxWidth:   50.0,
		HitboxHeight:  45.0,
		HitboxOffsetY: -35.0,
	}

	grappler := ArchetypeConfig{
		Name:   "grappler",
		Weight: 1.8,

		WalkSpeed: 1.5,
		RunSpeed:  3.0,
		AirSpeed:  2.5,

		JumpStrength: 16.0,

		HitboxWidth:   70.0,
		HitboxHeight:  60.0,
		HitboxOffsetY: -50.0,
	}

	Archetypes = map[string]ArchetypeConfig{
		"balanced": balanced,
		"rushdown": rushdown,
		"grappler": grappler,
	}

	Combat = CombatConfig{
		ScalingDivisor: 70.0,
		MaxPercent:     999.0,

		HitstunBaseFactor:    0.01,
		HitstunPercentFactor: 0.02,

		HitInvincibility: 0.3,
	}

	Match = MatchConfig{
		StartingStocks:      3,
		MatchTime:           180.0,
		KOPercentThreshold:  300.0,
		RespawnDelay:        2.0,
		RespawnInvulnFrames: 120,
		RespawnHeightOffset: -50.0,
	}
}
