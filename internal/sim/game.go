package sim

import (
	"github.com/san-kum/strikeball/internal/arena"
	"github.com/san-kum/strikeball/internal/ball"
	"github.com/san-kum/strikeball/internal/config"
	"github.com/san-kum/strikeball/internal/events"
	"github.com/san-kum/strikeball/internal/input"
	"github.com/san-kum/strikeball/internal/joystick"
)

const (
	PlayerName = "player"
	EnemyName  = "enemy"
)

// NewGame wires a player and an AI enemy from cfg. provider feeds the
// player's joystick; a nil provider leaves the player idle.
func NewGame(cfg *config.Config, provider input.Provider, view joystick.View) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	world := arena.NewWorld(arena.Bounds{
		HalfWidth:  cfg.Lane.HalfWidth,
		HalfLength: cfg.Lane.HalfLength,
	}, cfg.Ball.Radius)
	ballModel := ball.NewModel(ball.Config{
		Position: cfg.Ball.Position.Vec(),
		MaxSpeed: cfg.Ball.MaxSpeed,
	}, cfg.Seed)

	bus := events.NewBus()
	var stick *joystick.Joystick
	if provider != nil {
		stick = joystick.New(joystick.NewModel(cfg.Joystick.Stick()), input.NewMachine(provider), bus, view)
	}

	s := New(world, ballModel, stick)

	p := cfg.Player
	s.AddEntity(PlayerName, world.AddBody(p.Position.Vec(), p.Heading, p.Radius), p.Motion(), NewPlayerPolicy(bus))
	en := cfg.Enemy
	s.AddEntity(EnemyName, world.AddBody(en.Position.Vec(), en.Heading, en.Radius), en.Motion(), AIPolicy{})

	return s, nil
}

// SimConfig extracts the run length settings.
func SimConfig(cfg *config.Config) Config {
	return Config{Dt: cfg.Dt, Duration: cfg.Duration}
}
