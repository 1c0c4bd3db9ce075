package config

import (
	"fmt"
	"os"

	"github.com/automoto/doomerang-gimmicks/shared/collide"
	"github.com/automoto/doomerang-gimmicks/shared/influence"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the only ECS layer; nothing is drawn.
const Default ecs.LayerID = 0

// CollisionConfig contains resolver tuning
type CollisionConfig struct {
	Epsilon       float64 `yaml:"epsilon"`
	MaxIterations int     `yaml:"maxIterations"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
}

// RoomConfig contains the broadphase grid and the tick rate
type RoomConfig struct {
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
	TickRate   int `yaml:"tickRate"`

	// BroadphaseMargin pads every body's proxy in the space so that bodies
	// pushed during resolution still see their neighbours.
	BroadphaseMargin float64 `yaml:"broadphaseMargin"`
}

// GimmickConfig contains the tunables of one gimmick kind
type GimmickConfig struct {
	Mass int `yaml:"mass"`

	// Size used when the level object has none (point objects)
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Resolver options
	AllowCompress bool `yaml:"allowCompress"`
	HitPlayer     bool `yaml:"hitPlayer"`
	IgnoreExist   bool `yaml:"ignoreExist"`

	// Speed is the walk speed of a player and the belt speed of a conveyor
	Speed     float64 `yaml:"speed"`
	Friction  float64 `yaml:"friction"`
	Influence bool    `yaml:"influence"` // Speed is a reference speed for influence matching

	// Scripted motion (lift, press, hook)
	Travel    float64 `yaml:"travel"`    // pixels from origin
	Period    float64 `yaml:"period"`    // seconds per leg
	Direction string  `yaml:"direction"` // "up", "down", "left", "right"
	Ease      string  `yaml:"ease"`
}

var directions = map[string]mgl64.Vec3{
	"up":    {0, -1, 0},
	"down":  {0, 1, 0},
	"left":  {-1, 0, 0},
	"right": {1, 0, 0},
}

var eases = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inSine":    ease.InSine,
	"outSine":   ease.OutSine,
	"inOutSine": ease.InOutSine,
}

// DirectionVector maps a direction name to a unit vector in room space (Y down).
func DirectionVector(name string) (mgl64.Vec3, bool) {
	v, ok := directions[name]
	return v, ok
}

// EaseFunc returns the configured easing, linear when unset.
func (g GimmickConfig) EaseFunc() ease.TweenFunc {
	if fn, ok := eases[g.Ease]; ok {
		return fn
	}
	return ease.Linear
}

// Config holds every tunable the simulation reads. It is built once and
// treated as read-only afterwards.
type Config struct {
	Collision CollisionConfig          `yaml:"collision"`
	Physics   PhysicsConfig            `yaml:"physics"`
	Room      RoomConfig               `yaml:"room"`
	Gimmicks  map[string]GimmickConfig `yaml:"gimmicks"`
}

// NewDefault returns the built-in configuration.
func NewDefault() *Config {
	return &Config{
		Collision: CollisionConfig{
			Epsilon:       collide.DefaultEpsilon,
			MaxIterations: collide.DefaultMaxIterations,
		},
		Physics: PhysicsConfig{
			Gravity:      0.75,
			MaxFallSpeed: 10.0,
			MaxSpeed:     6.0,
		},
		Room: RoomConfig{
			CellWidth:        16,
			CellHeight:       16,
			TickRate:         60,
			BroadphaseMargin: 16,
		},
		Gimmicks: map[string]GimmickConfig{
			KindWall.String(): {
				Mass: 10000,
			},
			KindPlayer.String(): {
				Mass:          1,
				Width:         14,
				Height:        30,
				AllowCompress: true,
				Speed:         2.0,
				Friction:      0.5,
			},
			KindBlock.String(): {
				Mass:          1,
				Width:         16,
				Height:        16,
				AllowCompress: true,
				HitPlayer:     true,
				Friction:      0.5,
			},
			KindLift.String(): {
				Mass:      1000,
				Travel:    64,
				Period:    2,
				Direction: "up",
				Ease:      "linear",
			},
			KindPress.String(): {
				Mass:      1000,
				Travel:    48,
				Period:    1,
				Direction: "down",
				Ease:      "inQuad",
			},
			KindConveyor.String(): {
				Mass:      10000,
				Speed:     1.5,
				Influence: true,
			},
			KindHook.String(): {
				Mass:      1000,
				Travel:    96,
				Period:    3,
				Direction: "right",
				Ease:      "inOutSine",
			},
		},
	}
}

// Gimmick returns the tunables for k, or the zero value when k is not configured.
func (c *Config) Gimmick(k Kind) GimmickConfig {
	return c.Gimmicks[k.String()]
}

// ResolverParams converts the collision section for the resolver.
func (c *Config) ResolverParams() collide.Params {
	return collide.Params{
		Epsilon:       c.Collision.Epsilon,
		MaxIterations: c.Collision.MaxIterations,
	}
}

// InfluenceTable maps the attribute of every influencing kind to its speed.
func (c *Config) InfluenceTable() *influence.Table {
	speeds := make(map[int]float64)
	for _, k := range Kinds {
		if g := c.Gimmick(k); g.Influence {
			speeds[k.Attribute()] = g.Speed
		}
	}
	return influence.NewTable(speeds, c.Collision.Epsilon)
}

// TickSeconds is the duration of one tick.
func (c *Config) TickSeconds() float64 {
	return 1.0 / float64(c.Room.TickRate)
}

// Validate checks the values the simulation divides by or loops on.
func (c *Config) Validate() error {
	if c.Collision.Epsilon <= 0 {
		return fmt.Errorf("collision epsilon must be positive, got %v", c.Collision.Epsilon)
	}
	if c.Collision.MaxIterations <= 0 {
		return fmt.Errorf("collision maxIterations must be positive, got %d", c.Collision.MaxIterations)
	}
	if c.Room.CellWidth <= 0 || c.Room.CellHeight <= 0 {
		return fmt.Errorf("room cell size must be positive, got %dx%d", c.Room.CellWidth, c.Room.CellHeight)
	}
	if c.Room.TickRate <= 0 {
		return fmt.Errorf("room tickRate must be positive, got %d", c.Room.TickRate)
	}
	if c.Room.BroadphaseMargin < 0 {
		return fmt.Errorf("room broadphaseMargin must not be negative, got %v", c.Room.BroadphaseMargin)
	}

	for name, g := range c.Gimmicks {
		k, err := ParseKind(name)
		if err != nil {
			return err
		}
		if g.Mass < 0 {
			return fmt.Errorf("%s mass must not be negative, got %d", name, g.Mass)
		}
		if g.Width < 0 || g.Height < 0 {
			return fmt.Errorf("%s size must not be negative, got %vx%v", name, g.Width, g.Height)
		}
		if k.Dynamic() && (g.Mass <= 0 || g.Width <= 0 || g.Height <= 0) {
			return fmt.Errorf("%s needs a positive mass and size, got mass %d size %vx%v", name, g.Mass, g.Width, g.Height)
		}
		if k.Kinematic() && g.Travel != 0 {
			if g.Period <= 0 {
				return fmt.Errorf("%s period must be positive, got %v", name, g.Period)
			}
			if _, ok := directions[g.Direction]; !ok {
				return fmt.Errorf("%s direction must be up, down, left or right, got %q", name, g.Direction)
			}
		}
		if _, ok := eases[g.Ease]; g.Ease != "" && !ok {
			return fmt.Errorf("%s has unknown ease %q", name, g.Ease)
		}
	}
	return nil
}

// Parse decodes YAML on top of the defaults. Gimmick entries are merged
// field by field over the default entry for their kind.
func Parse(data []byte) (*Config, error) {
	c := NewDefault()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var doc struct {
		Gimmicks map[string]yaml.Node `yaml:"gimmicks"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	defaults := NewDefault().Gimmicks
	if c.Gimmicks == nil {
		c.Gimmicks = make(map[string]GimmickConfig, len(doc.Gimmicks))
	}
	for name, node := range doc.Gimmicks {
		g := defaults[name]
		if err := node.Decode(&g); err != nil {
			return nil, fmt.Errorf("parse config: gimmick %s: %w", name, err)
		}
		c.Gimmicks[name] = g
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
