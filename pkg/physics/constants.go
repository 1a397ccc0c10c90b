package physics

// Mathematical and physical constants in SI units.
// Values follow CODATA 2018 and the IUGG mean Earth radius.
const (
	// EarthGravity is standard gravity in m/s², signed so that down is negative.
	EarthGravity = -9.806_65

	// EarthMass in kg.
	EarthMass = 5.972_168e24

	// EarthRadius is the mean radius in m.
	EarthRadius = 6_371e3

	// G is the Newtonian gravitational constant in m³/(kg·s²).
	G = 6.674_30e-11

	Pi  = 3.141_592_653_589_793
	Tau = 6.283_185_307_179_586
	E   = 2.718_281_828_459_045

	// C is the speed of light in vacuum in m/s.
	C = 299_792_458

	// VacuumPermeability μ0 in N/A².
	VacuumPermeability = 1.256_637_06e-6

	// VacuumPermittivity ε0 in F/m.
	VacuumPermittivity = 8.854_187_812_8e-12
)
