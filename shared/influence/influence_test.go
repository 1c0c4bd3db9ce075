package influence

import (
	"testing"

	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/go-gl/mathgl/mgl64"
)

const conveyorTag = 5

func belt(vx, vy float64, attribute int) collide.ExRect {
	return collide.ExRect{
		Rect:      collide.NewRect(0, 0, 4, 0.5),
		Mass:      1000,
		Velocity:  mgl64.Vec3{vx, vy, 0},
		Attribute: attribute,
	}
}

func TestTableOf(t *testing.T) {
	table := NewTable(map[int]float64{conveyorTag: 1.5}, 0)

	tests := []struct {
		name string
		o    collide.ExRect
		want bool
	}{
		{"matching speed right", belt(1.5, 0, conveyorTag), true},
		{"matching speed left", belt(-1.5, 0, conveyorTag), true},
		{"within epsilon", belt(1.50005, 0, conveyorTag), true},
		{"too slow", belt(1.0, 0, conveyorTag), false},
		{"stopped", belt(0, 0, conveyorTag), false},
		{"unknown attribute", belt(1.5, 0, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := table.Of(tt.o)
			if ok != tt.want {
				t.Fatalf("Of() ok = %v, want %v", ok, tt.want)
			}
			if ok && v != tt.o.Velocity {
				t.Errorf("Of() = %v, want %v", v, tt.o.Velocity)
			}
			if !ok && v != (mgl64.Vec3{}) {
				t.Errorf("Of() = %v, want zero", v)
			}
		})
	}
}

func TestTableSum(t *testing.T) {
	table := NewTable(map[int]float64{conveyorTag: 2}, 0.001)
	touching := []collide.ExRect{
		belt(2, 0, conveyorTag),
		belt(0, -2, conveyorTag),
		belt(3, 0, conveyorTag),
		belt(2, 0, 1),
	}

	got := table.Sum(touching)
	want := mgl64.Vec3{2, -2, 0}
	if got != want {
		t.Errorf("Sum() = %v, want %v", got, want)
	}
	if table.Epsilon != 0.001 {
		t.Errorf("epsilon = %v, want 0.001", table.Epsilon)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1.00005, DefaultEpsilon) {
		t.Error("values within epsilon should be equal")
	}
	if NearlyEqual(1, 1.001, DefaultEpsilon) {
		t.Error("values beyond epsilon should differ")
	}
}
