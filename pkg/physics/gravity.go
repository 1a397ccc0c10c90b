package physics

import (
	"math"

	"github.com/zeusync/vecmath/pkg/vector"
)

// GravitationalAcceleration returns G·mass/radius², the magnitude of the
// acceleration at the surface of a body. A zero radius gives +Inf.
func GravitationalAcceleration(mass, radius float64) float64 {
	return G * mass / (radius * radius)
}

// EscapeVelocity returns sqrt(2·G·mass/radius).
func EscapeVelocity(mass, radius float64) float64 {
	return math.Sqrt(2 * G * mass / radius)
}

// SurfaceGravity is the gravitational acceleration at the surface of a body as
// a vector pointing down the k axis.
func SurfaceGravity(mass, radius float64) vector.Vec3 {
	g, _ := vector.Select3("k", -GravitationalAcceleration(mass, radius))
	return g
}
