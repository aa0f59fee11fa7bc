package quat3d

import (
	"math"

	"github.com/solarlune/quat3d/math32"
)

// Quaternion represents a rotation in 3D space (when normalized), or more generally any element of the quaternion algebra;
// the results of raw arithmetic (Add, Mult, Scale, etc) need not be of unit length.
// W is the scalar part of the Quaternion, and X, Y, and Z make up the vector part.
//
// Note that the zero value Quaternion{} is the null quaternion, not the identity rotation; use NewQuaternionIdentity()
// for a Quaternion that doesn't rotate anything.
//
// Quaternion functions return modified copies, apart from the explicitly in-place ones (Set*, Normalize, and the
// *Assign operators), which need exclusive access to the Quaternion they're called on.
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion creates a new Quaternion out of the scalar part and the x, y, and z components of its vector part, in that order.
func NewQuaternion(scalar, x, y, z float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: scalar}
}

// NewQuaternionFromVector creates a new Quaternion out of a scalar and a vector part.
func NewQuaternionFromVector(scalar float32, vector Vector3) Quaternion {
	return Quaternion{X: vector.X, Y: vector.Y, Z: vector.Z, W: scalar}
}

// NewQuaternionFromVector4 creates a new Quaternion out of a Vector4 in (x, y, z, w) order.
func NewQuaternionFromVector4(vector Vector4) Quaternion {
	return Quaternion{X: vector.X, Y: vector.Y, Z: vector.Z, W: vector.W}
}

// NewQuaternionIdentity returns the identity Quaternion (1, 0, 0, 0), representing no rotation.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// Scalar returns the scalar part (W) of the Quaternion.
func (quat Quaternion) Scalar() float32 {
	return quat.W
}

// Vector returns the vector part (X, Y, Z) of the Quaternion.
func (quat Quaternion) Vector() Vector3 {
	return Vector3{X: quat.X, Y: quat.Y, Z: quat.Z}
}

// SetScalar sets the scalar part of the Quaternion in place.
func (quat *Quaternion) SetScalar(scalar float32) {
	quat.W = scalar
}

// SetX sets the X component of the vector part of the Quaternion in place.
func (quat *Quaternion) SetX(x float32) {
	quat.X = x
}

// SetY sets the Y component of the vector part of the Quaternion in place.
func (quat *Quaternion) SetY(y float32) {
	quat.Y = y
}

// SetZ sets the Z component of the vector part of the Quaternion in place.
func (quat *Quaternion) SetZ(z float32) {
	quat.Z = z
}

// SetVector sets the whole vector part of the Quaternion in place.
func (quat *Quaternion) SetVector(vector Vector3) {
	quat.X = vector.X
	quat.Y = vector.Y
	quat.Z = vector.Z
}

// IsNull returns true if all four components of the Quaternion are zero (negative zero included).
func (quat Quaternion) IsNull() bool {
	return quat.X == 0 && quat.Y == 0 && quat.Z == 0 && quat.W == 0
}

// IsFinite returns true if none of the Quaternion's components are NaN or infinite.
func (quat Quaternion) IsFinite() bool {
	for _, c := range [4]float32{quat.X, quat.Y, quat.Z, quat.W} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// IsIdentity returns true if the Quaternion's scalar part is 1 and its vector part is zero.
func (quat Quaternion) IsIdentity() bool {
	return quat.X == 0 && quat.Y == 0 && quat.Z == 0 && quat.W == 1
}

// ToVector4 returns the Quaternion as a Vector4 in (x, y, z, w) order.
func (quat Quaternion) ToVector4() Vector4 {
	return Vector4{X: quat.X, Y: quat.Y, Z: quat.Z, W: quat.W}
}

// Length returns the length of the Quaternion (the Euclidean norm of all four components).
func (quat Quaternion) Length() float32 {
	return math32.Hypot4(quat.X, quat.Y, quat.Z, quat.W)
}

// LengthSquared returns the squared length of the Quaternion.
func (quat Quaternion) LengthSquared() float32 {
	return quat.X*quat.X + quat.Y*quat.Y + quat.Z*quat.Z + quat.W*quat.W
}

// Normalized returns a unit length copy of the Quaternion. A Quaternion that is null (or so close to it that
// its length can't be divided by) gives the null Quaternion.
func (quat Quaternion) Normalized() Quaternion {
	length := quat.Length()
	if math32.FuzzyIsNull(length) {
		return Quaternion{}
	}
	return quat.Divide(length)
}

// Normalize normalizes the Quaternion in place. A null Quaternion stays null.
func (quat *Quaternion) Normalize() {
	*quat = quat.Normalized()
}

// Inverted returns the inverse of the Quaternion: its conjugate divided by its squared length. Multiplying a Quaternion
// by its inverse gives the identity. The inverse of a null Quaternion is null.
func (quat Quaternion) Inverted() Quaternion {

	w, x, y, z := float64(quat.W), float64(quat.X), float64(quat.Y), float64(quat.Z)
	length := w*w + x*x + y*y + z*z

	if math.Abs(length) <= 0.000000000001 {
		return Quaternion{}
	}

	return NewQuaternion(float32(w/length), float32(-x/length), float32(-y/length), float32(-z/length))

}

// Conjugated returns the conjugate of the Quaternion: the vector part negated, with the scalar part unchanged.
func (quat Quaternion) Conjugated() Quaternion {
	return Quaternion{X: -quat.X, Y: -quat.Y, Z: -quat.Z, W: quat.W}
}

// Dot returns the dot product of the Quaternion and another Quaternion.
func (quat Quaternion) Dot(other Quaternion) float32 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// QuaternionDot returns the dot product of two Quaternions.
func QuaternionDot(q1, q2 Quaternion) float32 {
	return q1.Dot(q2)
}

// Add returns the componentwise sum of the Quaternion and the other Quaternion.
func (quat Quaternion) Add(other Quaternion) Quaternion {
	quat.X += other.X
	quat.Y += other.Y
	quat.Z += other.Z
	quat.W += other.W
	return quat
}

// Sub returns the componentwise difference of the Quaternion and the other Quaternion.
func (quat Quaternion) Sub(other Quaternion) Quaternion {
	quat.X -= other.X
	quat.Y -= other.Y
	quat.Z -= other.Z
	quat.W -= other.W
	return quat
}

// Scale returns the Quaternion with all four components multiplied by the given factor.
func (quat Quaternion) Scale(factor float32) Quaternion {
	quat.X *= factor
	quat.Y *= factor
	quat.Z *= factor
	quat.W *= factor
	return quat
}

// Divide returns the Quaternion with all four components divided by the given divisor.
// Dividing by zero follows IEEE float rules; check the divisor beforehand if that matters.
func (quat Quaternion) Divide(divisor float32) Quaternion {
	quat.X /= divisor
	quat.Y /= divisor
	quat.Z /= divisor
	quat.W /= divisor
	return quat
}

// Negated returns the Quaternion with all four components negated. A negated unit Quaternion represents the same rotation.
func (quat Quaternion) Negated() Quaternion {
	return Quaternion{X: -quat.X, Y: -quat.Y, Z: -quat.Z, W: -quat.W}
}

// Mult returns the Hamilton product of the Quaternion and the other Quaternion (quat * other). When both are rotations, the
// result rotates by other first, then by quat. Quaternion multiplication is not commutative.
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	v1 := quat.Vector()
	v2 := other.Vector()
	scalar := quat.W*other.W - v1.Dot(v2)
	vector := v2.Scale(quat.W).Add(v1.Scale(other.W)).Add(v1.Cross(v2))
	return NewQuaternionFromVector(scalar, vector)
}

// AddAssign adds the other Quaternion to the Quaternion in place.
func (quat *Quaternion) AddAssign(other Quaternion) {
	*quat = quat.Add(other)
}

// SubAssign subtracts the other Quaternion from the Quaternion in place.
func (quat *Quaternion) SubAssign(other Quaternion) {
	*quat = quat.Sub(other)
}

// ScaleAssign multiplies the Quaternion by the factor in place.
func (quat *Quaternion) ScaleAssign(factor float32) {
	*quat = quat.Scale(factor)
}

// DivideAssign divides the Quaternion by the divisor in place.
func (quat *Quaternion) DivideAssign(divisor float32) {
	*quat = quat.Divide(divisor)
}

// MultAssign sets the Quaternion to quat * other in place.
func (quat *Quaternion) MultAssign(other Quaternion) {
	*quat = quat.Mult(other)
}

// RotatedVector returns the given vector rotated by the Quaternion, using the sandwich product quat * v * quat^-1.
// As the inverse is used, the Quaternion doesn't need to be normalized.
func (quat Quaternion) RotatedVector(vector Vector3) Vector3 {
	return quat.Mult(NewQuaternionFromVector(0, vector)).Mult(quat.Inverted()).Vector()
}

// Equals returns true if all four components of the Quaternions are exactly equal.
func (quat Quaternion) Equals(other Quaternion) bool {
	return quat == other
}

// FuzzyEquals returns true if each component of the two Quaternions is relatively equal (see math32.FuzzyCompare),
// treating components that are both nearly zero as equal.
func (quat Quaternion) FuzzyEquals(other Quaternion) bool {
	return fuzzyComponent(quat.W, other.W) &&
		fuzzyComponent(quat.X, other.X) &&
		fuzzyComponent(quat.Y, other.Y) &&
		fuzzyComponent(quat.Z, other.Z)
}

func fuzzyComponent(a, b float32) bool {
	if math32.FuzzyIsNull(a) && math32.FuzzyIsNull(b) {
		return true
	}
	return math32.FuzzyCompare(a, b)
}

// SameRotation returns true if the two Quaternions represent the same 3D rotation. As q and -q rotate identically,
// this compares the squared dot product of the normalized Quaternions against 1.
func (quat Quaternion) SameRotation(other Quaternion) bool {
	d := quat.Normalized().Dot(other.Normalized())
	return math32.FuzzyEqual(d*d, 1)
}
