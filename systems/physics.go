package systems

import (
	"github.com/automoto/doomerang-gimmicks/components"
	"github.com/automoto/doomerang-gimmicks/shared/gamemath"
	"github.com/automoto/doomerang-gimmicks/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	tags.Dynamic.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Crushed) {
			return
		}

		physics := components.Physics.Get(e)
		body := components.Body.Get(e)

		moveX := 0.0
		if e.HasComponent(components.Input) {
			moveX = components.Input.Get(e).MoveX
		}
		if moveX != 0 {
			accel := physics.Friction
			if accel <= 0 {
				accel = physics.WalkSpeed
			}
			physics.SpeedX = gamemath.Walk(physics.SpeedX, moveX*physics.WalkSpeed, accel)
		} else {
			physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction)
		}
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

		// Apply gravity
		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.MaxFallSpeed)

		body.Velocity = mgl64.Vec3{
			physics.SpeedX + body.Influence.X(),
			physics.SpeedY + body.Influence.Y(),
			body.Velocity.Z(),
		}
	})
}
