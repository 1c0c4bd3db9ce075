package collide

import (
	"github.com/go-gl/mathgl/mgl64"
	dmath "github.com/yohamta/donburi/features/math"
)

// ExRect is a rect carrying the simulation data the resolver needs. ID
// identifies the owning body so a mover can skip its own shape; zero means
// anonymous.
type ExRect struct {
	Rect
	Mass      int
	Velocity  mgl64.Vec3
	Attribute int
	ID        int
}

// ExBox3 is a Box3 carrying the same simulation data as ExRect.
type ExBox3 struct {
	Box3
	Mass      int
	Velocity  mgl64.Vec3
	Attribute int
	ID        int
}

// ExSphere3 is a Sphere3 carrying the same simulation data as ExRect.
type ExSphere3 struct {
	Sphere3
	Mass      int
	Velocity  mgl64.Vec3
	Attribute int
	ID        int
}

// BoundingSphere keeps b's simulation data on its bounding sphere.
func (b ExBox3) BoundingSphere() ExSphere3 {
	return ExSphere3{
		Sphere3:   b.Box3.BoundingSphere(),
		Mass:      b.Mass,
		Velocity:  b.Velocity,
		Attribute: b.Attribute,
		ID:        b.ID,
	}
}

// Mover is the body being resolved. Only X and Y of Pos are written by the
// resolver; Z is advanced by the caller.
type Mover struct {
	Pos       mgl64.Vec3
	Half      dmath.Vec2
	Velocity  mgl64.Vec3
	Mass      int
	Attribute int
	ID        int
	Exist     bool
}

// Rect returns the mover's 2D shape at its current position.
func (m Mover) Rect() Rect {
	return Rect{
		Center: dmath.Vec2{X: m.Pos.X(), Y: m.Pos.Y()},
		Half:   m.Half,
		Exist:  m.Exist,
	}
}

// ExRect returns the mover as an obstacle, e.g. for other movers this tick.
func (m Mover) ExRect() ExRect {
	return ExRect{
		Rect:      m.Rect(),
		Mass:      m.Mass,
		Velocity:  m.Velocity,
		Attribute: m.Attribute,
		ID:        m.ID,
	}
}

// Blocks reports whether o is heavy enough to stop m. Equal masses block.
func (o ExRect) Blocks(m Mover) bool {
	return o.Mass >= m.Mass
}
