package quat3d

import "strconv"

// AxisAngle represents a rotation in degrees around a given 3D axis. This being the case, an AxisAngle can easily also be stored in a 4-dimensional vector; it's separated
// here into a 3D Vector and angle for simplicity and readability.
type AxisAngle struct {
	Axis  Vector3 // 3 dimensional axis for rotating
	Angle float32 // Rotation in degrees
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis (which is normalized) and angular rotation in degrees.
func NewAxisAngle(axis Vector3, angle float32) AxisAngle {
	return AxisAngle{
		Axis:  axis.Unit(),
		Angle: angle,
	}
}

// ToQuaternion returns the unit Quaternion representing the AxisAngle's rotation.
func (aa AxisAngle) ToQuaternion() Quaternion {
	return NewQuaternionFromAxisAngle(aa.Axis, aa.Angle)
}

// RotateVector rotates the given Vector by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of [0, 1, 0] (+Y, or "Up") and an Angle of 90, axisAngle.RotateVector(Vector3{1, 0, 0}) would return Vector3{0, 0, -1}.
func (aa AxisAngle) RotateVector(vec Vector3) Vector3 {
	return aa.ToQuaternion().RotatedVector(vec)
}

// Add returns the AxisAngle representing this rotation followed by the other one.
func (aa AxisAngle) Add(other AxisAngle) AxisAngle {
	return other.ToQuaternion().Mult(aa.ToQuaternion()).ToAxisAngle()
}

// Sub returns the AxisAngle representing this rotation followed by the inverse of the other one.
func (aa AxisAngle) Sub(other AxisAngle) AxisAngle {
	other.Angle *= -1
	return aa.Add(other)
}

func (aa AxisAngle) String() string {
	return "{Axis: " + aa.Axis.String() + ", Angle: " + strconv.FormatFloat(float64(aa.Angle), 'f', -1, 32) + "}"
}

// ToAxisAngle returns the Quaternion's rotation as an AxisAngle; see Quaternion.AxisAndAngle().
func (quat Quaternion) ToAxisAngle() AxisAngle {
	axis, angle := quat.AxisAndAngle()
	return AxisAngle{Axis: axis, Angle: angle}
}
