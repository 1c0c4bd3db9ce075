package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the room's broadphase. There is one per world.
var Space = donburi.NewComponentType[resolv.Space]()
