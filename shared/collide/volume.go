package collide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box3 is a 3D axis-aligned box. Used for static trigger and volume queries,
// never by the resolver.
type Box3 struct {
	Center mgl64.Vec3
	Half   mgl64.Vec3
	Exist  bool
}

// Sphere3 is a sphere for static volume queries.
type Sphere3 struct {
	Center mgl64.Vec3
	Radius float64
	Exist  bool
}

func NewBox3(center, half mgl64.Vec3) Box3 {
	return Box3{Center: center, Half: half, Exist: true}
}

func NewSphere3(center mgl64.Vec3, radius float64) Sphere3 {
	return Sphere3{Center: center, Radius: radius, Exist: true}
}

// Translate returns b moved by d.
func (b Box3) Translate(d mgl64.Vec3) Box3 {
	b.Center = b.Center.Add(d)
	return b
}

// Translate returns s moved by d.
func (s Sphere3) Translate(d mgl64.Vec3) Sphere3 {
	s.Center = s.Center.Add(d)
	return s
}

// HitBox3Point reports whether p is inside b on all three axes, faces included.
func HitBox3Point(b Box3, p mgl64.Vec3, ignoreExist bool) bool {
	if !ignoreExist && !b.Exist {
		return false
	}
	for i := 0; i < 3; i++ {
		if p[i] < b.Center[i]-b.Half[i] || p[i] > b.Center[i]+b.Half[i] {
			return false
		}
	}
	return true
}

// HitBox3 inflates l by r's half size and tests r's center against it.
func HitBox3(l, r Box3, ignoreExist bool) bool {
	if !ignoreExist && (!l.Exist || !r.Exist) {
		return false
	}
	sum := Box3{Center: l.Center, Half: l.Half.Add(r.Half)}
	return HitBox3Point(sum, r.Center, true)
}

// HitBox3Sphere accumulates how far the sphere center lies outside each face
// pair and compares the squared length against the squared radius.
func HitBox3Sphere(b Box3, s Sphere3, ignoreExist bool) bool {
	if !ignoreExist && (!b.Exist || !s.Exist) {
		return false
	}
	var excess mgl64.Vec3
	for i := 0; i < 3; i++ {
		lo := b.Center[i] - b.Half[i]
		hi := b.Center[i] + b.Half[i]
		switch {
		case s.Center[i] < lo:
			excess[i] = s.Center[i] - lo
		case s.Center[i] > hi:
			excess[i] = s.Center[i] - hi
		}
	}
	return excess.Dot(excess) <= s.Radius*s.Radius
}

// HitSphere3 uses the same strict comparison as HitCircle.
func HitSphere3(a, b Sphere3, ignoreExist bool) bool {
	if !ignoreExist && (!a.Exist || !b.Exist) {
		return false
	}
	rr := a.Radius + b.Radius
	return lenSqr(a.Center.Sub(b.Center)) < rr*rr
}

// HitSphere3Point reports whether p is inside or on s.
func HitSphere3Point(s Sphere3, p mgl64.Vec3, ignoreExist bool) bool {
	if !ignoreExist && !s.Exist {
		return false
	}
	return lenSqr(s.Center.Sub(p)) <= s.Radius*s.Radius
}

// HitBox3PointOffset tests b shifted by offset against a world-space point.
func HitBox3PointOffset(b Box3, offset, p mgl64.Vec3, ignoreExist bool) bool {
	return HitBox3Point(b.Translate(offset), p, ignoreExist)
}

// HitBox3Offset shifts each box by its own offset before testing.
func HitBox3Offset(l Box3, lOff mgl64.Vec3, r Box3, rOff mgl64.Vec3, ignoreExist bool) bool {
	return HitBox3(l.Translate(lOff), r.Translate(rOff), ignoreExist)
}

// HitBox3SphereOffset shifts the box and the sphere before testing.
func HitBox3SphereOffset(b Box3, bOff mgl64.Vec3, s Sphere3, sOff mgl64.Vec3, ignoreExist bool) bool {
	return HitBox3Sphere(b.Translate(bOff), s.Translate(sOff), ignoreExist)
}

// BoundingSphere returns the smallest sphere containing b.
func (b Box3) BoundingSphere() Sphere3 {
	return Sphere3{Center: b.Center, Radius: math.Sqrt(lenSqr(b.Half)), Exist: b.Exist}
}

func lenSqr(v mgl64.Vec3) float64 {
	return v.Dot(v)
}
