package motion

import "math"

const minSmoothTime = 1e-4

// SmoothDamp moves current toward target like a critically damped spring
// and returns the new value and rate. Converges in roughly smoothTime and
// never passes the target.
func SmoothDamp(current, target, rate, smoothTime, dt float64) (float64, float64) {
	if dt <= 0 {
		return current, rate
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (rate + omega*change) * dt
	rate = (rate - omega*temp) * decay
	out := target + (change+temp)*decay

	if (target-current > 0) == (out > target) {
		out = target
		rate = 0
	}
	return out, rate
}

// SmoothDampAngle is SmoothDamp taking the short way around the circle.
func SmoothDampAngle(current, target, rate, smoothTime, dt float64) (float64, float64) {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, rate, smoothTime, dt)
}

// DeltaAngle returns the shortest signed difference target-current in (-180, 180].
func DeltaAngle(current, target float64) float64 {
	d := repeat(target-current, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// NormalizeAngle wraps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	d := repeat(deg, 360)
	if d >= 360 {
		d = 0
	}
	return d
}

func repeat(t, length float64) float64 {
	return math.Max(0, math.Min(length, t-math.Floor(t/length)*length))
}
