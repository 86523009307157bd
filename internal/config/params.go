package config

import (
	"fmt"
	"sort"
)

func (c *Config) params() map[string]*float64 {
	m := map[string]*float64{
		"dt":                          &c.Dt,
		"duration":                    &c.Duration,
		"lane.half_width":             &c.Lane.HalfWidth,
		"lane.half_length":            &c.Lane.HalfLength,
		"ball.max_speed":              &c.Ball.MaxSpeed,
		"ball.radius":                 &c.Ball.Radius,
		"joystick.max_distance":       &c.Joystick.MaxDistance,
		"joystick.relocate_threshold": &c.Joystick.RelocateThreshold,
		"joystick.input_dead_zone":    &c.Joystick.InputDeadZone,
	}
	for prefix, e := range map[string]*EntityConfig{"player": &c.Player, "enemy": &c.Enemy} {
		m[prefix+".heading"] = &e.Heading
		m[prefix+".radius"] = &e.Radius
		m[prefix+".max_speed"] = &e.MaxSpeed
		m[prefix+".rotation_smooth_time"] = &e.RotationSmoothTime
		m[prefix+".min_angle_for_rotation"] = &e.MinAngleForRotation
		m[prefix+".hit_radius"] = &e.HitRadius
		m[prefix+".hit_force"] = &e.HitForce
		m[prefix+".kick_force"] = &e.KickForce
	}
	return m
}

// Set assigns a numeric field by its dotted yaml path, e.g. "enemy.max_speed".
func (c *Config) Set(key string, value float64) error {
	p, ok := c.params()[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
	*p = value
	return nil
}

// Get reads a numeric field by its dotted yaml path.
func (c *Config) Get(key string) (float64, error) {
	p, ok := c.params()[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
	return *p, nil
}

// Params lists every key accepted by Set.
func (c *Config) Params() []string {
	m := c.params()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
