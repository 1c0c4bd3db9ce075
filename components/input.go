package components

import "github.com/yohamta/donburi"

// InputData is the scripted intent of a player. MoveX is -1, 0 or 1. Grab
// lets a hook carry the player while they overlap.
type InputData struct {
	MoveX float64
	Grab  bool
}

var Input = donburi.NewComponentType[InputData]()
