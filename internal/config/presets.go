package config

import (
	"fmt"
	"sort"
)

// Presets maps a name to a config modifier applied over DefaultConfig.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"rookie": func(c *Config) {
		c.Enemy.MaxSpeed = 3
		c.Enemy.KickForce = 12
		c.Ball.MaxSpeed = 14
	},
	"pro": func(c *Config) {
		c.Enemy.MaxSpeed = 9
		c.Enemy.HitRadius = 2.5
		c.Ball.MaxSpeed = 26
	},
	"sprint": func(c *Config) {
		c.Ball.MaxSpeed = 32
		c.Player.MaxSpeed = 8
		c.Enemy.MaxSpeed = 8
		c.Duration = 15
	},
	"wide": func(c *Config) {
		c.Lane.HalfWidth = 7
		c.Player.HitRadius = 2.5
		c.Enemy.HitRadius = 2.5
	},
}

func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	cfg.Name = name
	apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
