package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MotionData scripts a kinematic gimmick. The sequence yields a distance
// along Axis from Origin; the per-tick change becomes the body's velocity.
type MotionData struct {
	Sequence *gween.Sequence
	Origin   mgl64.Vec3
	Axis     mgl64.Vec3
	Paused   bool
}

var Motion = donburi.NewComponentType[MotionData]()

// Target is where the gimmick should be at the given distance.
func (m *MotionData) Target(distance float64) mgl64.Vec3 {
	return m.Origin.Add(m.Axis.Mul(distance))
}
