package component

// ProbeMode selects how the ground sensor queries the collision world.
type ProbeMode string

const (
	ProbeShape ProbeMode = "shape"
	ProbeRay   ProbeMode = "ray"
)

// GroundSensor holds the probe configuration and the latest contact result.
type GroundSensor struct {
	Grounded bool
	// ContactTolerance is the longest gap below the collision volume that
	// still counts as contact.
	ContactTolerance float64
	ProbeHalfHeight  float64
	ProbeRadius      float64
	// MaxSlopeAngle in degrees; steeper contact normals are ignored.
	// Zero disables the check.
	MaxSlopeAngle float64
	Mode          ProbeMode
	// Distance of the accepted contact, or -1 when not grounded.
	Distance float64
}

var GroundSensorComponent = NewComponent[GroundSensor]()
