package sim_test

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/strikeball/internal/config"
	"github.com/san-kum/strikeball/internal/input"
	"github.com/san-kum/strikeball/internal/sim"
)

var _ = Describe("Game", func() {
	var (
		cfg *config.Config
		dt  float64
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		dt = cfg.Dt
	})

	Describe("joystick drag", func() {
		It("drives the player at max speed along +x on a full right drag", func() {
			script := input.NewScript([]input.Sample{
				{Position: mgl64.Vec2{0, 0}, JustPressed: true},
				{Position: mgl64.Vec2{200, 0}, Held: true},
			})
			game, err := sim.NewGame(cfg, script, nil)
			Expect(err).NotTo(HaveOccurred())
			defer game.Close()

			player := game.Entity(sim.PlayerName)
			start := player.Body.Position()

			game.Step(dt)
			Expect(player.Motion.State.Moving).To(BeTrue())
			Expect(player.Body.Position()).To(Equal(start))

			game.Step(dt)
			v := player.Motion.State.Velocity
			Expect(v.X()).To(BeNumerically("~", cfg.Player.MaxSpeed, 1e-9))
			Expect(v.Y()).To(BeZero())
			Expect(v.Z()).To(BeNumerically("~", 0, 1e-9))

			moved := player.Body.Position().Sub(start)
			Expect(moved.X()).To(BeNumerically("~", cfg.Player.MaxSpeed*dt, 1e-9))
			Expect(moved.Z()).To(BeNumerically("~", 0, 1e-9))
		})

		It("stops and kicks on release", func() {
			script := input.NewScript([]input.Sample{
				{Position: mgl64.Vec2{0, 0}, JustPressed: true},
				{Position: mgl64.Vec2{0, 0}, JustReleased: true},
			})
			game, err := sim.NewGame(cfg, script, nil)
			Expect(err).NotTo(HaveOccurred())
			defer game.Close()

			player := game.Entity(sim.PlayerName)
			game.Serve()
			game.World().Ball().Reset(player.Body.Position().Add(mgl64.Vec3{0, 0, 1.5}))

			game.Step(dt)
			Expect(player.Kicks()).To(BeZero())

			game.Step(dt)
			Expect(player.Motion.State.Moving).To(BeFalse())
			Expect(player.Kicks()).To(Equal(1))
			Expect(player.Body.Heading()).To(BeNumerically("~", 0, 1e-9))
			Expect(game.World().Ball().Velocity().Len()).To(BeNumerically("~", cfg.Player.KickForce, 1e-9))
		})
	})

	Describe("strike range", func() {
		var game *sim.Simulator

		BeforeEach(func() {
			var err error
			game, err = sim.NewGame(cfg, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			game.Serve()
		})

		AfterEach(func() { game.Close() })

		It("lands a kick at distance 1.5", func() {
			player := game.Entity(sim.PlayerName)
			player.Body.MoveRotation(90)
			b := game.World().Ball()
			b.Reset(player.Body.Position().Add(mgl64.Vec3{0, 0, 1.5}))

			Expect(player.Kick(b)).To(BeTrue())
			Expect(player.Body.Heading()).To(BeNumerically("~", 0, 1e-9))
			Expect(b.Velocity().Z()).To(BeNumerically("~", cfg.Player.KickForce, 1e-9))
		})

		It("ignores a kick at distance 2.5", func() {
			player := game.Entity(sim.PlayerName)
			player.Body.MoveRotation(90)
			b := game.World().Ball()
			b.Reset(player.Body.Position().Add(mgl64.Vec3{0, 0, 2.5}))

			Expect(player.Kick(b)).To(BeFalse())
			Expect(player.Body.Heading()).To(BeNumerically("~", 90, 1e-9))
			Expect(b.Velocity().Len()).To(BeZero())
			Expect(player.Kicks()).To(BeZero())
		})
	})

	Describe("a full run", func() {
		It("keeps the ball under its max speed on every frame", func() {
			game, err := sim.NewGame(cfg, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			defer game.Close()

			result, err := game.Run(context.Background(), sim.Config{Dt: dt, Duration: 5})
			Expect(err).NotTo(HaveOccurred())
			for _, f := range result.Frames {
				Expect(f.Ball.Speed()).To(BeNumerically("<=", cfg.Ball.MaxSpeed+1e-9))
				Expect(f.Ball.Position.Y()).To(BeZero())
			}
		})

		It("is deterministic for a fixed seed", func() {
			run := func() mgl64.Vec3 {
				game, err := sim.NewGame(cfg, nil, nil)
				Expect(err).NotTo(HaveOccurred())
				defer game.Close()
				result, err := game.Run(context.Background(), sim.Config{Dt: dt, Duration: 2})
				Expect(err).NotTo(HaveOccurred())
				return result.Frames[len(result.Frames)-1].Ball.Position
			}
			Expect(run()).To(Equal(run()))
		})
	})
})
