package systems

import (
	"github.com/automoto/doomerang-gimmicks/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func spaceOf(w donburi.World) *resolv.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e)
	}
	return nil
}
