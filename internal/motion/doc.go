// Package motion integrates entity velocity and heading once per fixed tick.
//
// Velocity is set from a 2D input vector mapped onto the x/z plane. Heading
// follows the velocity through a critically damped spring ([SmoothDampAngle])
// whose angular-rate memory is carried in [State] and passed explicitly in
// and out of every call.
//
// Angles are in degrees, measured as atan2(x, z): 0 faces +z, 90 faces +x.
package motion
