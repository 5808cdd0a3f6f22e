package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform places an entity in the world. Rotation uses the right-handed,
// Y-up convention where an unrotated entity faces -Z.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

var TransformComponent = NewComponent[Transform]()

// FacingYaw returns the rotation of an entity turned yaw radians about +Y.
func FacingYaw(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
}

func (t Transform) Forward() mgl64.Vec3 {
	return t.orientation().Rotate(mgl64.Vec3{0, 0, -1})
}

func (t Transform) Back() mgl64.Vec3 {
	return t.Forward().Mul(-1)
}

func (t Transform) Right() mgl64.Vec3 {
	return t.orientation().Rotate(mgl64.Vec3{1, 0, 0})
}

func (t Transform) Left() mgl64.Vec3 {
	return t.Right().Mul(-1)
}

// Yaw returns the heading about +Y, zero when facing -Z.
func (t Transform) Yaw() float64 {
	f := t.Forward()
	return math.Atan2(-f.X(), -f.Z())
}

// orientation treats an unset (zero) quaternion as identity.
func (t Transform) orientation() mgl64.Quat {
	if t.Rotation.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	return t.Rotation.Normalize()
}
