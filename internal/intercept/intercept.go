// Package intercept predicts where along the lane axis an entity should stand
// to meet the ball.
//
// The model is a one-dimensional heuristic, not a closing-distance solve. AI
// difficulty is tuned against its behaviour, so changes to Time alter gameplay.
package intercept

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Time estimates how long until the entity and ball meet.
//
// d is entityX - ballX, v is the ball's x velocity and speed the entity's max
// speed. When the ball drifts sideways faster than the entity can move, the
// naive |d|/speed is used. Otherwise d/v clamped to zero; a stationary ball
// (v == 0) meets now.
func Time(d, v, speed float64) float64 {
	if speed*speed-v*v < 0 {
		return math.Abs(d) / speed
	}
	if v == 0 {
		return 0
	}
	return math.Max(0, d/v)
}

// Target returns the position to steer toward. Only x is predicted; y and z
// are the entity's own.
func Target(entity, ball mgl64.Vec3, ballVelX, speed float64) mgl64.Vec3 {
	t := Time(entity.X()-ball.X(), ballVelX, speed)
	return mgl64.Vec3{ball.X() + ballVelX*t, entity.Y(), entity.Z()}
}
