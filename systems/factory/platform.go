package factory

import (
	"fmt"

	"github.com/automoto/doomerang-gimmicks/components"
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MotionSpec overrides the configured motion of a kinematic gimmick. Zero
// fields keep the configured values.
type MotionSpec struct {
	Direction string
	Travel    float64
	Period    float64
}

// CreateKinematic spawns a lift, press or hook. It moves Travel pixels along
// Direction over Period seconds, returns the same way, and repeats.
func CreateKinematic(ecs *ecs.ECS, kind cfg.Kind, x, y, w, h float64, spec MotionSpec) (*donburi.Entry, error) {
	if !kind.Kinematic() {
		return nil, fmt.Errorf("%s is not a kinematic kind", kind)
	}

	g := components.MustRoom(ecs.World).Config.Gimmick(kind)
	if spec.Direction == "" {
		spec.Direction = g.Direction
	}
	if spec.Travel == 0 {
		spec.Travel = g.Travel
	}
	if spec.Period <= 0 {
		spec.Period = g.Period
	}
	axis, ok := cfg.DirectionVector(spec.Direction)
	if !ok {
		return nil, fmt.Errorf("%s has unknown direction %q", kind, spec.Direction)
	}
	if spec.Period <= 0 {
		return nil, fmt.Errorf("%s needs a positive period", kind)
	}

	e, err := spawnBody(ecs, kind, x, y, w, h, 0)
	if err != nil {
		return nil, err
	}

	// The gimmick moves using a *gween.Sequence of tweens, out and back.
	travel := float32(spec.Travel)
	period := float32(spec.Period)
	fn := g.EaseFunc()
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, travel, period, fn),
		gween.New(travel, 0, period, fn),
	)

	components.Motion.SetValue(e, components.MotionData{
		Sequence: tw,
		Origin:   components.Body.Get(e).Pos,
		Axis:     axis,
	})
	return e, nil
}

// CreateConveyor spawns a belt. speed is signed along X; zero uses the
// configured speed to the right.
func CreateConveyor(ecs *ecs.ECS, x, y, w, h, speed float64) (*donburi.Entry, error) {
	e, err := spawnBody(ecs, cfg.KindConveyor, x, y, w, h, 0)
	if err != nil {
		return nil, err
	}
	if speed == 0 {
		speed = components.MustRoom(ecs.World).Config.Gimmick(cfg.KindConveyor).Speed
	}
	components.Body.Get(e).Velocity = mgl64.Vec3{speed, 0, 0}
	return e, nil
}
