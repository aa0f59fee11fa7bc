package quat3d

import (
	"math"

	"github.com/solarlune/quat3d/math32"
)

// NewQuaternionFromAxisAngle returns a unit Quaternion rotating by angle (in degrees) around the given axis.
// The axis is normalized first if it isn't already (roughly) of unit length.
func NewQuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	axis = axis.Unit()
	s, c := math32.Sincos(math32.ToRadians(angle / 2))
	return NewQuaternionFromVector(c, axis.Scale(s)).Normalized()
}

// NewQuaternionFromAxisAngleComponents is NewQuaternionFromAxisAngle, but with the axis given as separate components.
func NewQuaternionFromAxisAngleComponents(x, y, z, angle float32) Quaternion {
	return NewQuaternionFromAxisAngle(Vector3{X: x, Y: y, Z: z}, angle)
}

// AxisAndAngle returns the normalized rotation axis and the rotation angle (in degrees) that the Quaternion represents.
// A Quaternion with a (nearly) zero vector part gives a zero axis and an angle of 0.
func (quat Quaternion) AxisAndAngle() (Vector3, float32) {

	length := math32.Hypot3(quat.X, quat.Y, quat.Z)

	if math32.FuzzyIsNull(length) {
		return Vector3{}, 0
	}

	axis := quat.Vector()
	if !math32.FuzzyIsNull(length - 1) {
		axis = axis.Divide(length)
	}

	return axis, math32.ToDegrees(2 * math32.Atan2(length, quat.W))

}

// ToRotationMatrix returns the 3x3 rotation matrix corresponding to the Quaternion, which is assumed to be normalized.
func (quat Quaternion) ToRotationMatrix() Matrix3 {

	f2x := quat.X + quat.X
	f2y := quat.Y + quat.Y
	f2z := quat.Z + quat.Z

	f2xw := f2x * quat.W
	f2yw := f2y * quat.W
	f2zw := f2z * quat.W

	f2xx := f2x * quat.X
	f2xy := f2x * quat.Y
	f2xz := f2x * quat.Z
	f2yy := f2y * quat.Y
	f2yz := f2y * quat.Z
	f2zz := f2z * quat.Z

	return Matrix3{
		{1 - (f2yy + f2zz), f2xy - f2zw, f2xz + f2yw},
		{f2xy + f2zw, 1 - (f2xx + f2zz), f2yz - f2xw},
		{f2xz - f2yw, f2yz + f2xw, 1 - (f2xx + f2yy)},
	}

}

// NewQuaternionFromRotationMatrix returns the normalized Quaternion corresponding to the given rotation matrix.
// The matrix is expected to be a pure rotation (orthonormal, with a determinant of 1).
func NewQuaternionFromRotationMatrix(matrix Matrix3) Quaternion {

	var scalar float32
	var axis [3]float32

	trace := matrix[0][0] + matrix[1][1] + matrix[2][2]

	if trace > 0.00000001 {

		s := 2 * math32.Sqrt(trace+1)
		scalar = 0.25 * s
		axis[0] = (matrix[2][1] - matrix[1][2]) / s
		axis[1] = (matrix[0][2] - matrix[2][0]) / s
		axis[2] = (matrix[1][0] - matrix[0][1]) / s

	} else {

		// Work from the largest diagonal element to keep s well away from zero.
		next := [3]int{1, 2, 0}

		i := 0
		if matrix[1][1] > matrix[0][0] {
			i = 1
		}
		if matrix[2][2] > matrix[i][i] {
			i = 2
		}
		j := next[i]
		k := next[j]

		s := 2 * math32.Sqrt(matrix[i][i]-matrix[j][j]-matrix[k][k]+1)
		axis[i] = 0.25 * s
		scalar = (matrix[k][j] - matrix[j][k]) / s
		axis[j] = (matrix[j][i] + matrix[i][j]) / s
		axis[k] = (matrix[k][i] + matrix[i][k]) / s

	}

	return NewQuaternion(scalar, axis[0], axis[1], axis[2]).Normalized()

}

// Axes returns the three axes of the orthonormal coordinate frame the Quaternion rotates the world axes onto;
// these are the columns of the Quaternion's rotation matrix.
func (quat Quaternion) Axes() (xAxis, yAxis, zAxis Vector3) {
	mat := quat.ToRotationMatrix()
	return mat.Column(0), mat.Column(1), mat.Column(2)
}

// NewQuaternionFromAxes returns the Quaternion rotating the world axes onto the three given axes, which should form an
// orthonormal, right-handed basis.
func NewQuaternionFromAxes(xAxis, yAxis, zAxis Vector3) Quaternion {
	return NewQuaternionFromRotationMatrix(NewMatrix3FromColumns(xAxis, yAxis, zAxis))
}

// NewQuaternionFromDirection returns the Quaternion that orients the +Z axis along direction, keeping the rotated +Y axis
// in the plane of direction and up. A zero direction gives the identity Quaternion.
// If up is zero or parallel to direction, the shortest-arc rotation from +Z onto direction is returned instead.
func NewQuaternionFromDirection(direction, up Vector3) Quaternion {

	if direction.IsZero() {
		return NewQuaternionIdentity()
	}

	zAxis := direction.Unit()
	xAxis := up.Cross(zAxis)

	if math32.FuzzyIsNull(xAxis.MagnitudeSquared()) {
		return NewQuaternionRotationTo(WorldBackward, zAxis)
	}

	xAxis = xAxis.Unit()
	yAxis := zAxis.Cross(xAxis)

	return NewQuaternionFromAxes(xAxis, yAxis, zAxis)

}

// NewQuaternionRotationTo returns the shortest-arc unit Quaternion rotating the from vector onto the to vector.
// If the vectors point in opposite directions, the result is a 180 degree rotation around some axis perpendicular to from.
func NewQuaternionRotationTo(from, to Vector3) Quaternion {

	v0 := from.Unit()
	v1 := to.Unit()

	d := v0.Dot(v1) + 1

	if math32.FuzzyIsNull(d) {
		axis := WorldRight.Cross(v0)
		if math32.FuzzyIsNull(axis.MagnitudeSquared()) {
			axis = WorldUp.Cross(v0)
		}
		return NewQuaternionFromVector(0, axis.Unit())
	}

	d = math32.Sqrt(2 * d)
	axis := v0.Cross(v1).Divide(d)

	return NewQuaternionFromVector(d*0.5, axis).Normalized()

}

// NewQuaternionFromEulerAngles returns the Quaternion for the given Euler angles, in degrees. The rotation is applied
// around the Z axis by roll, then around the X axis by pitch, and lastly around the Y axis by yaw.
func NewQuaternionFromEulerAngles(pitch, yaw, roll float32) Quaternion {

	s1, c1 := math32.Sincos(math32.ToRadians(yaw) * 0.5)
	s2, c2 := math32.Sincos(math32.ToRadians(roll) * 0.5)
	s3, c3 := math32.Sincos(math32.ToRadians(pitch) * 0.5)

	c1c2 := c1 * c2
	s1s2 := s1 * s2

	return NewQuaternion(
		c1c2*c3+s1s2*s3,
		c1c2*s3+s1s2*c3,
		s1*c2*c3-c1*s2*s3,
		c1*s2*c3-s1*c2*s3,
	)

}

// NewQuaternionFromEulerVector is NewQuaternionFromEulerAngles, taking a Vector3 of (pitch, yaw, roll).
func NewQuaternionFromEulerVector(angles Vector3) Quaternion {
	return NewQuaternionFromEulerAngles(angles.X, angles.Y, angles.Z)
}

// EulerAngles returns the pitch, yaw, and roll angles (in degrees) that correspond to the Quaternion; see
// NewQuaternionFromEulerAngles for the rotation order. The Quaternion doesn't need to be normalized.
//
// Pitch is in [-90, 90], while yaw and roll are in (-180, 180]. At (or extremely near) a pitch of +/-90 degrees,
// yaw and roll rotate around the same axis; there the whole remaining rotation is put into yaw, and roll is 0.
func (quat Quaternion) EulerAngles() (pitch, yaw, roll float32) {

	x, y, z, w := float64(quat.X), float64(quat.Y), float64(quat.Z), float64(quat.W)

	lengthSquared := x*x + y*y + z*z + w*w
	if lengthSquared <= 0.000000000001 {
		return 0, 0, 0
	}

	// Dividing by the squared length takes the place of normalizing the Quaternion.
	sinPitch := 2 * (x*w - y*z) / lengthSquared

	var p, ya, r float64

	if math.Abs(sinPitch) >= 1-0.0000001 {
		p = math.Copysign(math.Pi/2, sinPitch)
		ya = 2 * math.Atan2(y, w)
	} else {
		p = math.Asin(sinPitch)
		ya = math.Atan2(2*(x*z+y*w), lengthSquared-2*(x*x+y*y))
		r = math.Atan2(2*(x*y+z*w), lengthSquared-2*(x*x+z*z))
	}

	pitch = math32.ToDegrees(float32(p))
	yaw = math32.WrapDegrees(math32.ToDegrees(float32(ya)))
	roll = math32.ToDegrees(float32(r))

	return

}

// ToEulerAngles returns the Quaternion's Euler angles as a Vector3 of (pitch, yaw, roll), in degrees.
func (quat Quaternion) ToEulerAngles() Vector3 {
	pitch, yaw, roll := quat.EulerAngles()
	return Vector3{X: pitch, Y: yaw, Z: roll}
}
