package factory

import (
	"github.com/solarlune/resolv"
	"github.com/stagebrawl/stagebrawl/archetypes"
	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox spawns a melee hit instance in front of its owner. The
// rectangle comes from the attack, falling back to the archetype's
// default hitbox dimensions. It lives for the attack's active frames
// and follows the owner, so moving attacks carry their hit region.
// Multihit bookkeeping starts at -interval so contact applies on the
// first active frame.
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry, spec *cfg.AttackSpec) *donburi.Entry {
	fighter := components.Fighter.Get(owner)
	feet := components.Object.Get(owner).BottomCenter()

	w, h, offY := spec.Width, spec.Height, spec.OffsetY
	if stats, ok := cfg.Archetypes[fighter.Archetype]; ok {
		if w == 0 {
			w = stats.HitboxWidth
		}
		if h == 0 {
			h = stats.HitboxHeight
		}
		if offY == 0 {
			offY = stats.HitboxOffsetY
		}
	}
	offX := fighter.Facing * spec.RangeX

	hitbox := newHitInstance(ecs, feet.X+offX-w/2, feet.Y+offY-h/2, w, h)

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity:     owner,
		Damage:          spec.Damage,
		Knockback:       spec.Knockback,
		Angle:           spec.Angle,
		FramesRemaining: spec.Active,
		AttackName:      spec.Name,
		Multihit:        spec.Multihit,
		HitInterval:     spec.HitInterval,
		LastHitFrame:    -spec.HitInterval,
		FollowOwner:     true,
		OffsetX:         offX,
		OffsetY:         offY,
		HitEntities:     make(map[*donburi.Entry]bool),
	})

	return hitbox
}

// CreateProjectile spawns a detached hit instance that integrates its
// own velocity and expires on lifetime or stage bounds.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, spec *cfg.AttackSpec, x, y, velX, velY float64) *donburi.Entry {
	hitbox := newHitInstance(ecs, x-spec.Width/2, y-spec.Height/2, spec.Width, spec.Height)

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity: owner,
		Damage:      spec.Damage,
		Knockback:   spec.Knockback,
		Angle:       spec.Angle,
		AttackName:  spec.Name,
		Projectile:  true,
		VelX:        velX,
		VelY:        velY,
		Lifetime:    spec.ProjectileLifetime,
		HitEntities: make(map[*donburi.Entry]bool),
	})

	return hitbox
}

// CreateShockwave spawns the ground pound landing hitbox.
func CreateShockwave(ecs *ecs.ECS, owner *donburi.Entry, spec *cfg.AttackSpec, x, y float64) *donburi.Entry {
	w, h := spec.ShockwaveWidth, spec.ShockwaveHeight
	hitbox := newHitInstance(ecs, x-w/2, y+spec.ShockwaveOffsetY-h/2, w, h)

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity:     owner,
		Damage:          spec.Damage,
		Knockback:       spec.Knockback,
		Angle:           spec.ShockwaveAngle,
		FramesRemaining: spec.ShockwaveFrames,
		AttackName:      spec.Name,
		HitEntities:     make(map[*donburi.Entry]bool),
	})

	return hitbox
}

func newHitInstance(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags(tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})

	space := components.Space.Get(components.Space.MustFirst(ecs.World))
	space.Add(obj)

	return hitbox
}
