package collide

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Compression collects the push directions applied to one mover during one
// resolve call. Two directions with a negative dot product mean the mover is
// being squeezed from opposite sides.
type Compression struct {
	pushes  []dmath.Vec2
	crushed bool
}

// Push records dir and reports whether the mover is now crushed.
func (c *Compression) Push(dir dmath.Vec2) bool {
	c.record(dir)
	if len(c.pushes) < 2 {
		return c.crushed
	}

	newest := c.pushes[len(c.pushes)-1]
	for _, prev := range c.pushes[:len(c.pushes)-1] {
		if newest.X*prev.X+newest.Y*prev.Y < 0 {
			c.crushed = true
			break
		}
	}
	return c.crushed
}

func (c *Compression) record(dir dmath.Vec2) {
	c.pushes = append(c.pushes, dir)
}

func (c *Compression) Crushed() bool {
	return c.crushed
}

// Pushes returns a copy of the recorded directions, oldest first.
func (c *Compression) Pushes() []dmath.Vec2 {
	out := make([]dmath.Vec2, len(c.pushes))
	copy(out, c.pushes)
	return out
}

// Reset clears the history, keeping the backing array.
func (c *Compression) Reset() {
	c.pushes = c.pushes[:0]
	c.crushed = false
}
