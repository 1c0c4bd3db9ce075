package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links a body to its broadphase proxy. The proxy is the body's
// rect grown by Margin on every side.
type ObjectData struct {
	*resolv.Object
	Margin float64
}

var Object = donburi.NewComponentType[ObjectData]()

// Sync moves the proxy to follow b and refreshes its cells.
func (o *ObjectData) Sync(b *BodyData) {
	o.X = b.Pos.X() - b.Half.X - o.Margin
	o.Y = b.Pos.Y() - b.Half.Y - o.Margin
	o.Update()
}
