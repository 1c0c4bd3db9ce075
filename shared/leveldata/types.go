// Package leveldata provides TMX room parsing for the gimmick simulation.
// It has no dependencies on donburi or resolv, only plain data.
package leveldata

// RoomData holds everything the simulation needs from a TMX room file.
type RoomData struct {
	Walls       []SolidRect
	Gimmicks    []GimmickSpawn
	Triggers    []TriggerVolume
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect is a run of solid tiles merged into one rectangle.
type SolidRect struct {
	X, Y, W, H float64
}

// GimmickSpawn is an object from the "Gimmicks" group. Kind is the object
// class. Zero Travel, Period and Speed mean the configured value applies.
type GimmickSpawn struct {
	Kind      string
	Name      string
	X, Y      float64
	W, H      float64
	Z         float64
	Direction string // "up", "down", "left", "right"
	Travel    float64
	Period    float64
	Speed     float64
}

// TriggerVolume is a box from the "Triggers" group. The TMX rectangle gives
// X/Y extent, the "z" and "depth" properties the third axis.
type TriggerVolume struct {
	Name     string
	X, Y     float64
	W, H     float64
	Z, Depth float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
