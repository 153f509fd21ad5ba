package factory

import (
	"github.com/solarlune/resolv"
	"github.com/stagebrawl/stagebrawl/archetypes"
	"github.com/stagebrawl/stagebrawl/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, object *resolv.Object, kind components.PlatformKind) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	components.Platform.SetValue(platform, components.PlatformData{Kind: kind})

	return platform
}

// CreateMovingPlatform builds a platform that oscillates vertically by
// travel pixels over period seconds each way, using a tween sequence.
func CreateMovingPlatform(ecs *ecs.ECS, object *resolv.Object, travel, period float64) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	components.Platform.SetValue(platform, components.PlatformData{Kind: components.PlatformMoving})

	tw := gween.NewSequence()
	obj := components.Object.Get(platform)
	tw.Add(
		gween.New(float32(obj.Y), float32(obj.Y-travel), float32(period), ease.Linear),
		gween.New(float32(obj.Y-travel), float32(obj.Y), float32(period), ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
