package tags

import "github.com/yohamta/donburi"

var (
	Wall     = donburi.NewTag().SetName("Wall")
	Player   = donburi.NewTag().SetName("Player")
	Block    = donburi.NewTag().SetName("Block")
	Lift     = donburi.NewTag().SetName("Lift")
	Press    = donburi.NewTag().SetName("Press")
	Conveyor = donburi.NewTag().SetName("Conveyor")
	Hook     = donburi.NewTag().SetName("Hook")
	Trigger  = donburi.NewTag().SetName("Trigger")

	// Kinematic bodies follow a Motion; Dynamic bodies fall under Physics.
	Kinematic = donburi.NewTag().SetName("Kinematic")
	Dynamic   = donburi.NewTag().SetName("Dynamic")
)

// Resolv tags for the broadphase
const (
	ResolvSolid = "solid"
	ResolvBody  = "body"
)
