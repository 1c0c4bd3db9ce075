package collide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	DefaultEpsilon       = 0.0001
	DefaultMaxIterations = 1000
)

// Params are the resolver's numeric knobs.
type Params struct {
	// Epsilon is added to every correction so the resolved edges never end
	// up flush, which would hit again on the next scan.
	Epsilon       float64
	MaxIterations int
}

func DefaultParams() Params {
	return Params{Epsilon: DefaultEpsilon, MaxIterations: DefaultMaxIterations}
}

// Options select per-call behavior. The zero value resolves against the
// obstacle list only, skips non-existing shapes and never reports a crush.
type Options struct {
	// Accompany is something the mover is attached to. When it overlaps the
	// mover, its velocity replaces the mover's for this call.
	Accompany *ExRect
	// Player is only a candidate when HitPlayer is set.
	Player        *ExRect
	HitPlayer     bool
	IgnoreExist   bool
	AllowCompress bool
}

// Result is the outcome of one resolve call.
type Result struct {
	Pos         mgl64.Vec3
	Velocity    mgl64.Vec3
	Compressed  bool
	Accompanied bool
	Iterations  int
	// Truncated is set when the iteration cap stopped a resolution that was
	// still finding obstacles. The position is the last one computed.
	Truncated bool
	Pushes    []dmath.Vec2
}

// Resolver moves bodies against obstacles. It is not safe for concurrent use;
// one resolver per game-logic goroutine.
type Resolver struct {
	params     Params
	comp       Compression
	compressed bool
}

func NewResolver(p Params) *Resolver {
	if p.Epsilon <= 0 {
		p.Epsilon = DefaultEpsilon
	}
	if p.MaxIterations <= 0 {
		p.MaxIterations = DefaultMaxIterations
	}
	return &Resolver{params: p}
}

func (r *Resolver) Params() Params {
	return r.params
}

// WasCompressed reports the crush flag of the last Resolve call.
func (r *Resolver) WasCompressed() bool {
	return r.compressed
}

// Resolve applies m's velocity and pushes it out of every obstacle at least
// as heavy as itself, one axis per obstacle hit. Velocity components on
// resolved axes are zeroed in the result.
func (r *Resolver) Resolve(m Mover, obstacles []ExRect, opts Options) Result {
	r.comp.Reset()
	r.compressed = false

	vel := m.Velocity
	shape := m.Rect()
	accompanied := false

	if acc := opts.Accompany; acc != nil && HitRect(acc.Rect, shape, opts.IgnoreExist) {
		vel = acc.Velocity
		accompanied = true
		seed := dmath.Vec2{X: sign(vel.X()), Y: sign(vel.Y())}
		if seed.X != 0 || seed.Y != 0 {
			r.comp.record(seed)
		}
	}

	// Movement signs are fixed before any correction zeroes a velocity axis.
	sx, sy := sign(vel.X()), sign(vel.Y())
	moved := shape.Translate(vel.X(), vel.Y())

	count := len(obstacles)
	if opts.HitPlayer && opts.Player != nil {
		count++
	}
	candidate := func(i int) *ExRect {
		if i < len(obstacles) {
			return &obstacles[i]
		}
		return opts.Player
	}

	eps := r.params.Epsilon
	iterations := 0
	resolved := false
	for iterations < r.params.MaxIterations {
		iterations++

		resolved = false
		for i := 0; i < count; i++ {
			o := candidate(i)
			if o.ID != 0 && o.ID == m.ID {
				continue
			}
			if !o.Blocks(m) || !HitRect(moved, o.Rect, opts.IgnoreExist) {
				continue
			}

			// An axis with no velocity left takes the opposite of the
			// obstacle's motion on it: the obstacle is pushing into the mover.
			// Static obstacles keep the mover's own sign.
			ox, oy := sx, sy
			if s := sign(o.Velocity.X()); vel.X() == 0 && s != 0 {
				ox = -s
			}
			if s := sign(o.Velocity.Y()); vel.Y() == 0 && s != 0 {
				oy = -s
			}
			if ox == 0 && oy == 0 {
				continue
			}

			px := penetration(moved.Left(), moved.Right(), o.Left(), o.Right(), ox)
			py := penetration(moved.Top(), moved.Bottom(), o.Top(), o.Bottom(), oy)

			var push dmath.Vec2
			if ox == 0 || (oy != 0 && (py < px || px == 0)) {
				moved.Center.Y -= (py + eps) * oy
				vel[1] = 0
				push = dmath.Vec2{Y: -oy}
			} else {
				moved.Center.X -= (px + eps) * ox
				vel[0] = 0
				push = dmath.Vec2{X: -ox}
			}

			if opts.AllowCompress {
				r.compressed = r.comp.Push(push)
			} else {
				r.comp.record(push)
			}
			resolved = true
			break
		}

		if !resolved || r.compressed {
			break
		}
	}

	return Result{
		Pos:         mgl64.Vec3{moved.Center.X, moved.Center.Y, m.Pos.Z()},
		Velocity:    vel,
		Compressed:  r.compressed,
		Accompanied: accompanied,
		Iterations:  iterations,
		Truncated:   resolved && !r.compressed,
		Pushes:      r.comp.Pushes(),
	}
}

// penetration is the overlap along one axis measured from the leading edge of
// the mover for the given movement sign.
func penetration(moverMin, moverMax, obstacleMin, obstacleMax, s float64) float64 {
	switch {
	case s > 0:
		return math.Abs(moverMax - obstacleMin)
	case s < 0:
		return math.Abs(moverMin - obstacleMax)
	}
	return 0
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
