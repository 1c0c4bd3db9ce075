// Package influence recognizes obstacles that push whatever touches them, such
// as conveyors, from their attribute tag and speed. The resolver never sees
// this: callers sum the returned velocities into a body before the next tick.
package influence

import (
	"math"

	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/go-gl/mathgl/mgl64"
)

const DefaultEpsilon = 0.0001

// Table maps an attribute tag to the reference speed an obstacle with that
// tag must move at to count as an influence.
type Table struct {
	Speeds  map[int]float64
	Epsilon float64
}

func NewTable(speeds map[int]float64, epsilon float64) *Table {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Table{Speeds: speeds, Epsilon: epsilon}
}

// Of returns the obstacle's velocity if its magnitude matches the reference
// speed configured for its attribute.
func (t *Table) Of(o collide.ExRect) (mgl64.Vec3, bool) {
	ref, ok := t.Speeds[o.Attribute]
	if !ok {
		return mgl64.Vec3{}, false
	}
	speed := math.Sqrt(o.Velocity.Dot(o.Velocity))
	if !NearlyEqual(speed, ref, t.Epsilon) {
		return mgl64.Vec3{}, false
	}
	return o.Velocity, true
}

// Sum adds up the influence of every obstacle in touching.
func (t *Table) Sum(touching []collide.ExRect) mgl64.Vec3 {
	var total mgl64.Vec3
	for _, o := range touching {
		if v, ok := t.Of(o); ok {
			total = total.Add(v)
		}
	}
	return total
}

func NearlyEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}
