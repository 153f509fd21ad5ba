package systems

import (
	"github.com/stagebrawl/stagebrawl/components"
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects advances moving platforms along their tween sequence
// and carries any fighter standing on them.
func UpdateObjects(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.C.TickRate))

	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Tween.Get(e)
		obj := components.Object.Get(e)

		y, _, seqDone := seq.Update(dt)
		if seqDone {
			seq.Reset()
		}

		if float64(y) == obj.Y {
			return
		}
		obj.Y = float64(y)
		obj.Update()
		carryRiders(ecs, obj)
	})
}

func carryRiders(ecs *ecs.ECS, plat *components.ObjectData) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.OnGround != plat.Object {
			return
		}
		obj := components.Object.Get(e)
		obj.Y = plat.Y - obj.H
		obj.Update()
	})
}
