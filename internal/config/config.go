package config

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/joystick"
	"github.com/san-kum/strikeball/internal/motion"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.02
	DefaultDuration = 30.0

	DefaultBallMaxSpeed = 20.0
	DefaultBallRadius   = 0.25

	DefaultEntityMaxSpeed      = 6.0
	DefaultEntityRadius        = 0.5
	DefaultRotationSmoothTime  = 0.06
	DefaultMinAngleForRotation = 2.0
	DefaultHitRadius           = 2.0
	DefaultHitForce            = 10.0
	DefaultKickForce           = 20.0

	DefaultMaxDistance       = 100.0
	DefaultRelocateThreshold = 120.0
	DefaultInputDeadZone     = 0.001

	MinMaxDistance   = 50.0
	MinInputDeadZone = 0.001
)

type Config struct {
	Name     string         `yaml:"name"`
	Dt       float64        `yaml:"dt"`
	Duration float64        `yaml:"duration"`
	Seed     int64          `yaml:"seed"`
	Lane     LaneConfig     `yaml:"lane"`
	Ball     BallConfig     `yaml:"ball"`
	Player   EntityConfig   `yaml:"player"`
	Enemy    EntityConfig   `yaml:"enemy"`
	Joystick JoystickConfig `yaml:"joystick"`
}

type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Vec() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

type LaneConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfLength float64 `yaml:"half_length"`
}

type BallConfig struct {
	Position Vec3    `yaml:"position"`
	MaxSpeed float64 `yaml:"max_speed"`
	Radius   float64 `yaml:"radius"`
}

type EntityConfig struct {
	Position            Vec3    `yaml:"position"`
	Heading             float64 `yaml:"heading"`
	Radius              float64 `yaml:"radius"`
	MaxSpeed            float64 `yaml:"max_speed"`
	RotationSmoothTime  float64 `yaml:"rotation_smooth_time"`
	MinAngleForRotation float64 `yaml:"min_angle_for_rotation"`
	HitRadius           float64 `yaml:"hit_radius"`
	HitForce            float64 `yaml:"hit_force"`
	KickForce           float64 `yaml:"kick_force"`
}

type JoystickConfig struct {
	MaxDistance       float64 `yaml:"max_distance"`
	RelocateThreshold float64 `yaml:"relocate_threshold"`
	InputDeadZone     float64 `yaml:"input_dead_zone"`
}

func defaultEntity(z, heading float64) EntityConfig {
	return EntityConfig{
		Position:            Vec3{Z: z},
		Heading:             heading,
		Radius:              DefaultEntityRadius,
		MaxSpeed:            DefaultEntityMaxSpeed,
		RotationSmoothTime:  DefaultRotationSmoothTime,
		MinAngleForRotation: DefaultMinAngleForRotation,
		HitRadius:           DefaultHitRadius,
		HitForce:            DefaultHitForce,
		KickForce:           DefaultKickForce,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "classic",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Seed:     1,
		Lane:     LaneConfig{HalfWidth: 4, HalfLength: 9},
		Ball: BallConfig{
			MaxSpeed: DefaultBallMaxSpeed,
			Radius:   DefaultBallRadius,
		},
		Player: defaultEntity(-7, 0),
		Enemy:  defaultEntity(7, 180),
		Joystick: JoystickConfig{
			MaxDistance:       DefaultMaxDistance,
			RelocateThreshold: DefaultRelocateThreshold,
			InputDeadZone:     DefaultInputDeadZone,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configs the simulation cannot run.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return invalid("dt", "must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return invalid("duration", "must be positive, got %g", c.Duration)
	}
	if c.Lane.HalfWidth <= 0 || c.Lane.HalfLength <= 0 {
		return invalid("lane", "extents must be positive")
	}
	if c.Ball.MaxSpeed <= 0 {
		return invalid("ball.max_speed", "must be positive, got %g", c.Ball.MaxSpeed)
	}
	for _, ent := range []struct {
		name string
		cfg  EntityConfig
	}{{"player", c.Player}, {"enemy", c.Enemy}} {
		e := ent.cfg
		if e.MaxSpeed <= 0 {
			return invalid(ent.name+".max_speed", "must be positive, got %g", e.MaxSpeed)
		}
		if e.HitRadius < 0 || e.MinAngleForRotation < 0 || e.RotationSmoothTime < 0 {
			return invalid(ent.name, "hit radius, min angle and smooth time must not be negative")
		}
	}
	j := c.Joystick
	if j.MaxDistance < MinMaxDistance {
		return invalid("joystick.max_distance", "must be at least %g, got %g", MinMaxDistance, j.MaxDistance)
	}
	if j.RelocateThreshold < j.MaxDistance {
		return invalid("joystick.relocate_threshold", "must be at least max_distance (%g), got %g", j.MaxDistance, j.RelocateThreshold)
	}
	if j.InputDeadZone <= 0 {
		return invalid("joystick.input_dead_zone", "must be positive, got %g", j.InputDeadZone)
	}
	return nil
}

// Sanitize pulls joystick values back into range instead of rejecting them.
func (c *Config) Sanitize() {
	c.Joystick.MaxDistance = math.Max(MinMaxDistance, c.Joystick.MaxDistance)
	c.Joystick.RelocateThreshold = math.Max(c.Joystick.MaxDistance, c.Joystick.RelocateThreshold)
	c.Joystick.InputDeadZone = math.Max(MinInputDeadZone, c.Joystick.InputDeadZone)
}

func (e EntityConfig) Motion() motion.Config {
	return motion.Config{
		MaxSpeed:            e.MaxSpeed,
		RotationSmoothTime:  e.RotationSmoothTime,
		MinAngleForRotation: e.MinAngleForRotation,
		HitRadius:           e.HitRadius,
		HitForce:            e.HitForce,
		KickForce:           e.KickForce,
	}
}

func (j JoystickConfig) Stick() joystick.Config {
	return joystick.Config{
		MaxDistance:       j.MaxDistance,
		RelocateThreshold: j.RelocateThreshold,
		InputDeadZone:     j.InputDeadZone,
	}
}
