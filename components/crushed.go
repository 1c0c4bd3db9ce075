package components

import "github.com/yohamta/donburi"

// CrushedData marks a body that was compressed between two obstacles. It is
// already out of the broadphase and is removed from the world on the next
// crush pass.
type CrushedData struct {
	Tick int
}

var Crushed = donburi.NewComponentType[CrushedData]()
