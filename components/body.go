package components

import (
	cfg "github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BodyData is the collision state of every gimmick. Pos is the center of the
// rect in room pixels; Z is a depth used by trigger volumes only.
type BodyData struct {
	Kind     cfg.Kind
	ID       int
	Pos      mgl64.Vec3
	Half     dmath.Vec2
	Velocity mgl64.Vec3
	Mass     int
	Exist    bool

	// Resolver options used when this body moves
	AllowCompress bool
	HitPlayer     bool
	IgnoreExist   bool

	// Results of the last collision pass
	Compressed  bool
	Accompanied bool
	Truncated   bool
	OnGround    *donburi.Entry

	// Influence is the velocity handed over by what the body stood on last tick.
	Influence mgl64.Vec3
}

var Body = donburi.NewComponentType[BodyData]()

// Mover returns the body in the resolver's terms.
func (b *BodyData) Mover() collide.Mover {
	return collide.Mover{
		Pos:       b.Pos,
		Half:      b.Half,
		Velocity:  b.Velocity,
		Mass:      b.Mass,
		Attribute: b.Kind.Attribute(),
		ID:        b.ID,
		Exist:     b.Exist,
	}
}

// ExRect returns the body as an obstacle for other movers.
func (b *BodyData) ExRect() collide.ExRect {
	return b.Mover().ExRect()
}

// Box3 is the body's trigger volume: the rect extruded by its smaller half
// extent around Z.
func (b *BodyData) Box3() collide.ExBox3 {
	depth := b.Half.X
	if b.Half.Y < depth {
		depth = b.Half.Y
	}
	return collide.ExBox3{
		Box3: collide.Box3{
			Center: b.Pos,
			Half:   mgl64.Vec3{b.Half.X, b.Half.Y, depth},
			Exist:  b.Exist,
		},
		Mass:      b.Mass,
		Velocity:  b.Velocity,
		Attribute: b.Kind.Attribute(),
		ID:        b.ID,
	}
}

// Options returns the resolver options for moving this body. Accompany and
// Player are filled in per tick by the caller.
func (b *BodyData) Options() collide.Options {
	return collide.Options{
		AllowCompress: b.AllowCompress,
		HitPlayer:     b.HitPlayer,
		IgnoreExist:   b.IgnoreExist,
	}
}

// Sphere is the bounding sphere of Box3.
func (b *BodyData) Sphere() collide.ExSphere3 {
	return b.Box3().BoundingSphere()
}

// Apply writes a resolve result back.
func (b *BodyData) Apply(res collide.Result) {
	b.Pos = mgl64.Vec3{res.Pos.X(), res.Pos.Y(), b.Pos.Z()}
	b.Velocity = res.Velocity
	b.Compressed = res.Compressed
	b.Accompanied = res.Accompanied
	b.Truncated = res.Truncated
}
