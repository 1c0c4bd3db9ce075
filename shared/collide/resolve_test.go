package collide

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	dmath "github.com/yohamta/donburi/features/math"
)

const tolerance = 1e-9

func mover(x, y, vx, vy float64, mass int) Mover {
	return Mover{
		Pos:      mgl64.Vec3{x, y, 3},
		Half:     dmath.Vec2{X: 0.5, Y: 0.5},
		Velocity: mgl64.Vec3{vx, vy, 0.25},
		Mass:     mass,
		ID:       1,
		Exist:    true,
	}
}

func obstacle(x, y, vx, vy float64, mass int) ExRect {
	return ExRect{
		Rect:     NewRect(x, y, 0.5, 0.5),
		Mass:     mass,
		Velocity: mgl64.Vec3{vx, vy, 0},
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestResolveStopsAgainstWall(t *testing.T) {
	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 2, 0, 1), []ExRect{obstacle(2, 0, 0, 0, 5)}, Options{})

	if !near(res.Pos.X(), 1-DefaultEpsilon) {
		t.Errorf("x = %v, want %v", res.Pos.X(), 1-DefaultEpsilon)
	}
	if res.Pos.Y() != 0 {
		t.Errorf("y = %v, want 0", res.Pos.Y())
	}
	if res.Velocity.X() != 0 {
		t.Errorf("velocity x = %v, want 0", res.Velocity.X())
	}
	if res.Pos.Z() != 3 {
		t.Errorf("z = %v, the resolver must leave z alone", res.Pos.Z())
	}
	if res.Velocity.Z() != 0.25 {
		t.Errorf("velocity z = %v, want 0.25", res.Velocity.Z())
	}
	if res.Compressed {
		t.Error("single wall must not compress")
	}
}

func TestResolveKeepsSignAcrossObstacles(t *testing.T) {
	// The second wall reaches further left, so it still overlaps after the
	// first correction has zeroed the x velocity.
	walls := []ExRect{obstacle(2, 0, 0, 0, 5), obstacle(1.8, 0, 0, 0, 5)}

	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 2, 0, 1), walls, Options{})

	if want := 0.8 - DefaultEpsilon; !near(res.Pos.X(), want) {
		t.Errorf("x = %v, want %v", res.Pos.X(), want)
	}
	if right := res.Pos.X() + 0.5; right >= walls[1].Left() {
		t.Errorf("right edge %v still inside wall at %v", right, walls[1].Left())
	}
	if len(res.Pushes) != 2 || res.Pushes[0].X != -1 || res.Pushes[1].X != -1 {
		t.Errorf("pushes = %v, want two -x pushes", res.Pushes)
	}
	if res.Velocity.X() != 0 || res.Truncated {
		t.Errorf("velocity x = %v truncated = %v", res.Velocity.X(), res.Truncated)
	}
}

func TestResolveGroundedBodyUnderPress(t *testing.T) {
	floor := obstacle(0, 1.2, 0, 0, 5)
	press := obstacle(0, -0.6, 0, 0.5, 5)

	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 0, 0.5, 1), []ExRect{floor, press}, Options{AllowCompress: true})

	if !res.Compressed {
		t.Errorf("body between floor and press should compress, pushes %v", res.Pushes)
	}
	if len(res.Pushes) != 2 || res.Pushes[0].Y != -1 || res.Pushes[1].Y != 1 {
		t.Errorf("pushes = %v, want up from the floor then down from the press", res.Pushes)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := NewResolver(DefaultParams())
	walls := []ExRect{obstacle(2, 0, 0, 0, 5), obstacle(0, 2, 0, 0, 5)}

	first := r.Resolve(mover(0, 0, 2, 0, 1), walls, Options{AllowCompress: true})

	again := mover(first.Pos.X(), first.Pos.Y(), 0, 0, 1)
	second := r.Resolve(again, walls, Options{AllowCompress: true})

	if second.Pos.X() != first.Pos.X() || second.Pos.Y() != first.Pos.Y() {
		t.Errorf("second call moved the body from %v to %v", first.Pos, second.Pos)
	}
	if second.Compressed || r.WasCompressed() {
		t.Error("second call must not compress")
	}
	if len(second.Pushes) != 0 {
		t.Errorf("second call pushed %d times", len(second.Pushes))
	}
}

func TestResolveMassRule(t *testing.T) {
	tests := []struct {
		name      string
		moverMass int
		wallMass  int
		vx        float64
		blocked   bool
	}{
		{"lighter obstacle is ignored", 10, 5, 2, false},
		{"lighter moving obstacle is ignored", 10, 5, -3, false},
		{"equal mass blocks", 5, 5, 2, true},
		{"heavier blocks", 1, 5, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(DefaultParams())
			wall := obstacle(2, 0, tt.vx, 0, tt.wallMass)
			res := r.Resolve(mover(0, 0, 2, 0, tt.moverMass), []ExRect{wall}, Options{AllowCompress: true})

			if tt.blocked {
				if res.Pos.X() >= 1 {
					t.Errorf("x = %v, expected to be stopped before the wall", res.Pos.X())
				}
				return
			}
			if res.Pos.X() != 2 || res.Velocity.X() != 2 {
				t.Errorf("got pos %v vel %v, want the unresolved move", res.Pos, res.Velocity)
			}
		})
	}
}

func TestResolveCompression(t *testing.T) {
	squeeze := []ExRect{
		obstacle(-0.9, 0, 1, 0, 5),
		obstacle(0.9, 0, -1, 0, 5),
	}

	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 0, 0, 1), squeeze, Options{AllowCompress: true})
	if !res.Compressed || !r.WasCompressed() {
		t.Fatalf("squeezed body should be compressed, pushes %v", res.Pushes)
	}
	if len(res.Pushes) != 2 {
		t.Errorf("expected to stop after the second push, got %v", res.Pushes)
	}
	if res.Pushes[0].X != 1 || res.Pushes[1].X != -1 {
		t.Errorf("pushes = %v, want +x then -x", res.Pushes)
	}

	// The same pair without opting in just oscillates until the cap.
	r = NewResolver(Params{Epsilon: DefaultEpsilon, MaxIterations: 10})
	res = r.Resolve(mover(0, 0, 0, 0, 1), squeeze, Options{})
	if res.Compressed {
		t.Error("compression must only be reported when allowed")
	}
	if res.Iterations != 10 || !res.Truncated {
		t.Errorf("iterations = %d truncated = %v, want the cap to stop it", res.Iterations, res.Truncated)
	}
}

func TestResolveSameDirectionDoesNotCompress(t *testing.T) {
	wall := obstacle(-1.2, 0, 0, 0, 5)
	pusher := ExRect{
		Rect:     NewRect(-0.9, 0, 0.25, 2),
		Mass:     5,
		Velocity: mgl64.Vec3{1, 0, 0},
	}

	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, -1, 0, 1), []ExRect{wall, pusher}, Options{AllowCompress: true})

	if res.Compressed {
		t.Errorf("two pushes along +x must not compress, pushes %v", res.Pushes)
	}
	if len(res.Pushes) != 2 || res.Pushes[0].X != 1 || res.Pushes[1].X != 1 {
		t.Errorf("pushes = %v, want two +x pushes", res.Pushes)
	}
}

func TestResolveAxisChoice(t *testing.T) {
	tests := []struct {
		name   string
		wall   ExRect
		wantX  float64
		wantY  float64
		wantVX float64
		wantVY float64
	}{
		{
			name:   "equal penetration resolves x",
			wall:   obstacle(1.8, 1.8, 0, 0, 5),
			wantX:  1 - 0.2 - DefaultEpsilon,
			wantY:  1,
			wantVX: 0,
			wantVY: 1,
		},
		{
			name:   "smaller y penetration resolves y",
			wall:   obstacle(1.8, 1.9, 0, 0, 5),
			wantX:  1,
			wantY:  1 - 0.1 - DefaultEpsilon,
			wantVX: 1,
			wantVY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(DefaultParams())
			res := r.Resolve(mover(0, 0, 1, 1, 1), []ExRect{tt.wall}, Options{})
			if !near(res.Pos.X(), tt.wantX) || !near(res.Pos.Y(), tt.wantY) {
				t.Errorf("pos = (%v, %v), want (%v, %v)", res.Pos.X(), res.Pos.Y(), tt.wantX, tt.wantY)
			}
			if res.Velocity.X() != tt.wantVX || res.Velocity.Y() != tt.wantVY {
				t.Errorf("vel = (%v, %v), want (%v, %v)", res.Velocity.X(), res.Velocity.Y(), tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestResolveStaticContactIsSkipped(t *testing.T) {
	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 0, 0, 1), []ExRect{obstacle(0.5, 0, 0, 0, 5)}, Options{AllowCompress: true})

	if res.Pos.X() != 0 || res.Pos.Y() != 0 {
		t.Errorf("pos = %v, static overlap must not be resolved", res.Pos)
	}
	if res.Iterations != 1 || res.Truncated {
		t.Errorf("iterations = %d truncated = %v, want a single scan", res.Iterations, res.Truncated)
	}
}

func TestResolvePushedByMovingObstacle(t *testing.T) {
	// A lift rising into a resting body pushes it up.
	lift := obstacle(0, 0.8, 0, -1, 5)

	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 0, 0, 1), []ExRect{lift}, Options{})

	want := 0.8 - 0.5 - 0.5 - DefaultEpsilon
	if !near(res.Pos.Y(), want) {
		t.Errorf("y = %v, want %v", res.Pos.Y(), want)
	}
	if len(res.Pushes) != 1 || res.Pushes[0].Y != -1 {
		t.Errorf("pushes = %v, want one push up", res.Pushes)
	}
}

func TestResolveSkipsOwnShapeAndMissingShapes(t *testing.T) {
	own := obstacle(2, 0, 0, 0, 5)
	own.ID = 1
	hidden := obstacle(2, 0, 0, 0, 5)
	hidden.Exist = false

	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 2, 0, 1), []ExRect{own, hidden}, Options{})
	if res.Pos.X() != 2 {
		t.Errorf("x = %v, own and non-existing shapes must be skipped", res.Pos.X())
	}

	res = r.Resolve(mover(0, 0, 2, 0, 1), []ExRect{own, hidden}, Options{IgnoreExist: true})
	if res.Pos.X() >= 1 {
		t.Errorf("x = %v, IgnoreExist should make the hidden wall block", res.Pos.X())
	}
}

func TestResolveHitPlayer(t *testing.T) {
	player := obstacle(2, 0, 0, 0, 1)
	player.ID = 99

	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 2, 0, 1), nil, Options{Player: &player})
	if res.Pos.X() != 2 {
		t.Errorf("x = %v, the player only blocks with HitPlayer", res.Pos.X())
	}

	res = r.Resolve(mover(0, 0, 2, 0, 1), nil, Options{Player: &player, HitPlayer: true})
	if !near(res.Pos.X(), 1-DefaultEpsilon) {
		t.Errorf("x = %v, want %v", res.Pos.X(), 1-DefaultEpsilon)
	}
}

func TestResolveAccompany(t *testing.T) {
	hook := ExRect{
		Rect:     NewRect(0, 0, 0.5, 0.5),
		Mass:     100,
		Velocity: mgl64.Vec3{3, -1, 0},
	}

	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 0, 5, 1), nil, Options{Accompany: &hook})

	if !res.Accompanied {
		t.Fatal("overlapping hook should carry the body")
	}
	if res.Pos.X() != 3 || res.Pos.Y() != -1 {
		t.Errorf("pos = %v, want the hook's motion", res.Pos)
	}
	if res.Velocity != hook.Velocity {
		t.Errorf("velocity = %v, want %v", res.Velocity, hook.Velocity)
	}
	if len(res.Pushes) != 1 || res.Pushes[0] != (dmath.Vec2{X: 1, Y: -1}) {
		t.Errorf("pushes = %v, want the hook's sign seeded", res.Pushes)
	}

	far := hook
	far.Center = dmath.Vec2{X: 10, Y: 10}
	res = r.Resolve(mover(0, 0, 0, 5, 1), nil, Options{Accompany: &far})
	if res.Accompanied || res.Pos.Y() != 5 {
		t.Errorf("distant hook must not carry the body, got %+v", res)
	}
}

func TestResolveAccompanyIntoWallCompresses(t *testing.T) {
	hook := ExRect{
		Rect:     NewRect(0, 0, 0.5, 0.5),
		Mass:     100,
		Velocity: mgl64.Vec3{1, 0, 0},
	}
	wall := obstacle(1.8, 0, 0, 0, 5)

	r := NewResolver(DefaultParams())
	res := r.Resolve(mover(0, 0, 0, 0, 1), []ExRect{wall}, Options{Accompany: &hook, AllowCompress: true})
	if !res.Compressed {
		t.Errorf("dragged into a wall should compress, pushes %v", res.Pushes)
	}

	res = r.Resolve(mover(0, 0, 0, 0, 1), []ExRect{wall}, Options{Accompany: &hook})
	if res.Compressed {
		t.Error("compression must only be reported when allowed")
	}
	if !near(res.Pos.X(), 1-0.2-DefaultEpsilon) {
		t.Errorf("x = %v, want %v", res.Pos.X(), 1-0.2-DefaultEpsilon)
	}
}

func TestCompressionPush(t *testing.T) {
	tests := []struct {
		name   string
		pushes []dmath.Vec2
		want   bool
	}{
		{"single push", []dmath.Vec2{{X: 1}}, false},
		{"same direction", []dmath.Vec2{{X: 1}, {X: 1}}, false},
		{"perpendicular", []dmath.Vec2{{X: 1}, {Y: -1}}, false},
		{"left then right", []dmath.Vec2{{X: -1}, {X: 1}}, true},
		{"up then down after a side push", []dmath.Vec2{{Y: -1}, {X: 1}, {Y: 1}}, true},
		{"diagonal seed against a wall", []dmath.Vec2{{X: 1, Y: 1}, {X: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Compression
			got := false
			for _, p := range tt.pushes {
				got = c.Push(p)
			}
			if got != tt.want || c.Crushed() != tt.want {
				t.Errorf("crushed = %v, want %v", got, tt.want)
			}
			c.Reset()
			if c.Crushed() || len(c.Pushes()) != 0 {
				t.Error("Reset should clear the history")
			}
		})
	}
}

func TestNewResolverDefaults(t *testing.T) {
	r := NewResolver(Params{})
	if got := r.Params(); got != DefaultParams() {
		t.Errorf("params = %+v, want %+v", got, DefaultParams())
	}
}
