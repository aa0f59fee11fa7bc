package quat3d

import (
	"math"
	"strconv"

	"github.com/solarlune/quat3d/math32"
)

// WorldRight represents a unit vector in the global direction of +X on quat3d's right-handed coordinate system (right).
var WorldRight = NewVector3(1, 0, 0)

// WorldLeft represents a unit vector in the global direction of -X.
var WorldLeft = WorldRight.Invert()

// WorldUp represents a unit vector in the global direction of +Y (upwards).
var WorldUp = NewVector3(0, 1, 0)

// WorldDown represents a unit vector in the global direction of -Y.
var WorldDown = WorldUp.Invert()

// WorldBackward represents a unit vector in the global direction of +Z (backwards, towards you).
var WorldBackward = NewVector3(0, 0, 1)

// WorldForward represents a unit vector in the global direction of -Z.
var WorldForward = WorldBackward.Invert()

// Vector3 represents a 3D Vector, which can be used for usual 3D applications (position, direction, axes of rotation, etc).
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
// Vectors are most efficient when copied, so try not to store pointers to them.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector
	Y float32 // The Y (2nd) component of the Vector
	Z float32 // The Z (3rd) component of the Vector
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3Zero creates a new "zero-ed out" Vector3.
func NewVector3Zero() Vector3 {
	return Vector3{}
}

// Add returns a copy of the calling Vector3, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Hypot3(vec.X, vec.Y, vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids a square root.
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the calling Vector3 and the other Vector3.
func (vec Vector3) Distance(other Vector3) float32 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A Vector3 that is already unit length is returned as-is, and one whose squared length is 1e-12 or less becomes the
// zero Vector3.
func (vec Vector3) Unit() Vector3 {
	x, y, z := float64(vec.X), float64(vec.Y), float64(vec.Z)
	l := x*x + y*y + z*z
	if math.Abs(l-1) <= 0.00001 {
		return vec
	} else if l <= 0.000000000001 {
		return Vector3{}
	}
	l = math.Sqrt(l)
	vec.X, vec.Y, vec.Z = float32(x/l), float32(y/l), float32(z/l)
	return vec
}

// Scale scales a Vector3 by the given scalar.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector3 by the given scalar.
func (vec Vector3) Divide(scalar float32) Vector3 {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Angle returns the angle between the calling Vector3 and the provided other Vector3, in degrees.
func (vec Vector3) Angle(other Vector3) float32 {
	dot := math32.Clamp(vec.Unit().Dot(other.Unit()), -1, 1)
	return math32.ToDegrees(math32.Acos(dot))
}

// Set sets the values in the Vector3 to the x, y, and z values provided.
func (vec Vector3) Set(x, y, z float32) Vector3 {
	vec.X = x
	vec.Y = y
	vec.Z = z
	return vec
}

// Floats returns a [3]float32 array consisting of the Vector3's contents.
func (vec Vector3) Floats() [3]float32 {
	return [3]float32{vec.X, vec.Y, vec.Z}
}

// IsZero returns true if all components of the Vector3 are exactly 0 (negative zero included).
func (vec Vector3) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

// Equals returns true if the two Vectors are close enough in all values to absorb the rounding errors
// of chained float32 rotations.
func (vec Vector3) Equals(other Vector3) bool {
	eps := float32(0.0001)
	return math32.Abs(vec.X-other.X) <= eps && math32.Abs(vec.Y-other.Y) <= eps && math32.Abs(vec.Z-other.Z) <= eps
}

func (vec Vector3) String() string {
	return "{" + strconv.FormatFloat(float64(vec.X), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Y), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Z), 'f', -1, 32) + "}"
}

// Vector4 represents a 4D Vector. Quaternions convert to and from Vector4s in (x, y, z, w) order.
type Vector4 struct {
	X float32 // The X (1st) component of the Vector
	Y float32 // The Y (2nd) component of the Vector
	Z float32 // The Z (3rd) component of the Vector
	W float32 // The W (4th) component of the Vector
}

// NewVector4 creates a new Vector4 with the specified x, y, z, and w components.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector3 returns the X, Y, and Z components of the Vector4.
func (vec Vector4) Vector3() Vector3 {
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// Floats returns a [4]float32 array consisting of the Vector4's contents.
func (vec Vector4) Floats() [4]float32 {
	return [4]float32{vec.X, vec.Y, vec.Z, vec.W}
}
