package config

import "fmt"

// Kind identifies a gimmick. Its integer value doubles as the attribute tag
// carried by every collision shape the gimmick produces.
type Kind int

const (
	KindNone Kind = iota
	KindWall
	KindPlayer
	KindBlock
	KindLift
	KindPress
	KindConveyor
	KindHook
)

var kindNames = map[Kind]string{
	KindNone:     "none",
	KindWall:     "wall",
	KindPlayer:   "player",
	KindBlock:    "block",
	KindLift:     "lift",
	KindPress:    "press",
	KindConveyor: "conveyor",
	KindHook:     "hook",
}

// Kinds lists every spawnable kind in resolution order: static geometry first,
// then kinematic gimmicks, then dynamic bodies.
var Kinds = []Kind{KindWall, KindConveyor, KindLift, KindPress, KindHook, KindBlock, KindPlayer}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Attribute is the tag stored on collision shapes.
func (k Kind) Attribute() int {
	return int(k)
}

// Kinematic kinds follow a scripted path instead of gravity.
func (k Kind) Kinematic() bool {
	switch k {
	case KindLift, KindPress, KindHook:
		return true
	}
	return false
}

// Dynamic kinds fall and slide under physics.
func (k Kind) Dynamic() bool {
	return k == KindPlayer || k == KindBlock
}

// Order is the kind's position in Kinds, used to sort obstacle candidates.
func (k Kind) Order() int {
	for i, kk := range Kinds {
		if kk == k {
			return i
		}
	}
	return len(Kinds)
}

func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s && k != KindNone {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown gimmick kind %q", s)
}
