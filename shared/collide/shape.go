// Package collide holds the collision shapes, their hit tests and the
// mass-aware resolver used by every movable gimmick. It has no dependencies on
// the ECS or the room so the tests can exercise it with plain values.
package collide

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle in center form.
type Rect struct {
	Center dmath.Vec2
	Half   dmath.Vec2
	Exist  bool
}

// Circle is a circle in center form.
type Circle struct {
	Center dmath.Vec2
	Radius float64
	Exist  bool
}

// NewRect returns an existing rect centered at (cx, cy).
func NewRect(cx, cy, halfW, halfH float64) Rect {
	return Rect{
		Center: dmath.Vec2{X: cx, Y: cy},
		Half:   dmath.Vec2{X: halfW, Y: halfH},
		Exist:  true,
	}
}

// NewCircle returns an existing circle centered at (cx, cy).
func NewCircle(cx, cy, radius float64) Circle {
	return Circle{
		Center: dmath.Vec2{X: cx, Y: cy},
		Radius: radius,
		Exist:  true,
	}
}

func (r Rect) Left() float64   { return r.Center.X - r.Half.X }
func (r Rect) Right() float64  { return r.Center.X + r.Half.X }
func (r Rect) Top() float64    { return r.Center.Y - r.Half.Y }
func (r Rect) Bottom() float64 { return r.Center.Y + r.Half.Y }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Center.X += dx
	r.Center.Y += dy
	return r
}

// Translate returns c moved by (dx, dy).
func (c Circle) Translate(dx, dy float64) Circle {
	c.Center.X += dx
	c.Center.Y += dy
	return c
}

// Corners returns the four corners, clockwise from the top-left.
func (r Rect) Corners() [4]dmath.Vec2 {
	return [4]dmath.Vec2{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
}

// HitRectPoint reports whether p lies inside r, edges included.
func HitRectPoint(r Rect, p dmath.Vec2, ignoreExist bool) bool {
	if !ignoreExist && !r.Exist {
		return false
	}
	return r.Left() <= p.X && p.X <= r.Right() &&
		r.Top() <= p.Y && p.Y <= r.Bottom()
}

// HitRect is the plain AABB overlap test. Touching edges count as a hit.
func HitRect(l, r Rect, ignoreExist bool) bool {
	if !ignoreExist && (!l.Exist || !r.Exist) {
		return false
	}
	return l.Left() <= r.Right() && r.Left() <= l.Right() &&
		l.Top() <= r.Bottom() && r.Top() <= l.Bottom()
}

// HitCirclePoint reports whether p lies inside or on c.
func HitCirclePoint(c Circle, p dmath.Vec2, ignoreExist bool) bool {
	if !ignoreExist && !c.Exist {
		return false
	}
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitCircle uses a strict comparison, so circles that only touch do not hit.
func HitCircle(a, b Circle, ignoreExist bool) bool {
	if !ignoreExist && (!a.Exist || !b.Exist) {
		return false
	}
	dx := a.Center.X - b.Center.X
	dy := a.Center.Y - b.Center.Y
	rr := a.Radius + b.Radius
	return dx*dx+dy*dy < rr*rr
}

// HitRectCircle approximates a rounded rectangle against the circle center:
// the rect grown by the radius along each axis in turn, then the corners.
func HitRectCircle(r Rect, c Circle, ignoreExist bool) bool {
	if !ignoreExist && (!r.Exist || !c.Exist) {
		return false
	}

	wide := r
	wide.Half.X += c.Radius
	if HitRectPoint(wide, c.Center, true) {
		return true
	}

	tall := r
	tall.Half.Y += c.Radius
	if HitRectPoint(tall, c.Center, true) {
		return true
	}

	for _, corner := range r.Corners() {
		probe := Circle{Center: corner, Radius: c.Radius}
		if HitCirclePoint(probe, c.Center, true) {
			return true
		}
	}
	return false
}

// HitRectPointOffset tests r shifted by offset against a world-space point.
func HitRectPointOffset(r Rect, offset, p dmath.Vec2, ignoreExist bool) bool {
	return HitRectPoint(r.Translate(offset.X, offset.Y), p, ignoreExist)
}

// HitRectOffset shifts each rect by its own offset before testing.
func HitRectOffset(l Rect, lOff dmath.Vec2, r Rect, rOff dmath.Vec2, ignoreExist bool) bool {
	return HitRect(l.Translate(lOff.X, lOff.Y), r.Translate(rOff.X, rOff.Y), ignoreExist)
}

// HitCircleOffset shifts each circle by its own offset before testing.
func HitCircleOffset(a Circle, aOff dmath.Vec2, b Circle, bOff dmath.Vec2, ignoreExist bool) bool {
	return HitCircle(a.Translate(aOff.X, aOff.Y), b.Translate(bOff.X, bOff.Y), ignoreExist)
}

// HitRectCircleOffset shifts the rect and the circle before testing.
func HitRectCircleOffset(r Rect, rOff dmath.Vec2, c Circle, cOff dmath.Vec2, ignoreExist bool) bool {
	return HitRectCircle(r.Translate(rOff.X, rOff.Y), c.Translate(cOff.X, cOff.Y), ignoreExist)
}
