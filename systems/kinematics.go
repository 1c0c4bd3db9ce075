package systems

import (
	"github.com/automoto/doomerang-gimmicks/components"
	"github.com/automoto/doomerang-gimmicks/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKinematics advances every motion sequence and turns the distance to
// the new target into the gimmick's velocity for this tick.
func UpdateKinematics(ecs *ecs.ECS) {
	room := components.MustRoom(ecs.World)
	dt := float32(room.Config.TickSeconds())

	tags.Kinematic.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		motion := components.Motion.Get(e)
		if motion.Paused || motion.Sequence == nil {
			body.Velocity = mgl64.Vec3{}
			return
		}

		distance, _, done := motion.Sequence.Update(dt)
		if done {
			motion.Sequence.Reset()
		}

		// A blocked gimmick catches up once the way is clear.
		target := motion.Target(float64(distance))
		body.Velocity = target.Sub(body.Pos)
		body.Velocity[2] = 0
	})
}
