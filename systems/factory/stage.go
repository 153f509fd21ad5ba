package factory

import (
	"github.com/solarlune/resolv"
	"github.com/stagebrawl/stagebrawl/archetypes"
	"github.com/stagebrawl/stagebrawl/components"
	"github.com/stagebrawl/stagebrawl/stages"
	"github.com/stagebrawl/stagebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage builds the collision space, all platform entities and
// the stage singleton from a stage definition.
func CreateStage(ecs *ecs.ECS, def stages.Definition) *donburi.Entry {
	spaceEntry := CreateSpace(ecs, int(def.Width), int(def.Height), 16, 16)
	space := components.Space.Get(spaceEntry)

	for _, p := range def.Platforms {
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H)
		switch p.Kind {
		case components.PlatformSolid:
			obj.AddTags(tags.ResolvSolid)
		default:
			obj.AddTags(tags.ResolvPassThrough)
		}
		obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
		space.Add(obj)

		if p.Kind == components.PlatformMoving {
			CreateMovingPlatform(ecs, obj, p.Travel, p.Period)
		} else {
			CreatePlatform(ecs, obj, p.Kind)
		}
	}

	stage := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(stage, components.StageData{
		Name:        def.Name,
		Width:       def.Width,
		Height:      def.Height,
		BlastLeft:   def.BlastLeft,
		BlastRight:  def.BlastRight,
		BlastTop:    def.BlastTop,
		BlastBottom: def.BlastBottom,
		SpawnPoints: def.SpawnPoints,
		Gravity:     def.Gravity,
	})

	return stage
}
