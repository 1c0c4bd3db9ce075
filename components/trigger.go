package components

import (
	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/yohamta/donburi"
)

// TriggerData is a 3D volume that counts bodies entering it.
type TriggerData struct {
	Name    string
	Volume  collide.Box3
	Inside  map[int]bool // body IDs currently inside
	Entered int
}

var Trigger = donburi.NewComponentType[TriggerData]()
