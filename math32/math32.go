// math32 is a stand-in for the built-in math package, but the functions take float32s (or any comparable numbers) instead of float64s.
// quat3d's vectors, quaternions, and matrices are all float32, so this keeps the conversions in one place.
package math32

import (
	"math"

	"golang.org/x/exp/constraints"
)

const Pi = math.Pi

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ToRadians is a helper function to easily convert degrees to radians (which is what the trigonometric functions use internally).
func ToRadians(degrees float32) float32 {
	return Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees (which is what quat3d's public rotation functions take).
func ToDegrees(radians float32) float32 {
	return radians / Pi * 180
}

// Min returns the minimum value out of two provided values.
func Min[number Number](x, y number) number {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[number Number](x, y number) number {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number Number](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// FuzzyIsNull returns true if f is close enough to zero to be treated as zero in float32 math.
func FuzzyIsNull(f float32) bool {
	return Abs(f) <= 0.00001
}

// FuzzyCompare returns true if a and b are relatively equal. Note that FuzzyCompare never
// treats a value as equal to zero unless it is exactly zero; use FuzzyEqual for values that may be near zero.
func FuzzyCompare(a, b float32) bool {
	return Abs(a-b)*100000 <= Min(Abs(a), Abs(b))
}

// FuzzyEqual is a more tolerant version of FuzzyCompare that also handles values close to zero.
func FuzzyEqual(a, b float32) bool {
	if FuzzyIsNull(a) && FuzzyIsNull(b) {
		return true
	}
	return Abs(Abs(a)-Abs(b)) <= 0.00003
}

// WrapDegrees wraps the given angle in degrees into the range (-180, 180].
func WrapDegrees(degrees float32) float32 {
	d := Mod(degrees, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return math.IsNaN(float64(x))
}

// IsInf returns if the provided float32 (x) is Inf in the direction of the sign provided.
func IsInf(x float32, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// Round returns the nearest integer, rounding half away from zero.
//
// Special cases are:
//
//	Round(±0) = ±0
//	Round(±Inf) = ±Inf
//	Round(NaN) = NaN
func Round(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Hypot4 returns Sqrt(a*a + b*b + c*c + d*d), accumulated in float64 to avoid
// float32 overflow and underflow in the intermediate squares.
func Hypot4(a, b, c, d float32) float32 {
	fa, fb, fc, fd := float64(a), float64(b), float64(c), float64(d)
	return float32(math.Sqrt(fa*fa + fb*fb + fc*fc + fd*fd))
}

// Hypot3 returns Sqrt(a*a + b*b + c*c), accumulated in float64.
func Hypot3(a, b, c float32) float32 {
	fa, fb, fc := float64(a), float64(b), float64(c)
	return float32(math.Sqrt(fa*fa + fb*fb + fc*fc))
}

// Sin returns the sine of the radian argument x.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Sincos returns Sin(x), Cos(x).
//
// Special cases are:
//
//	Sincos(±0) = ±0, 1
//	Sincos(±Inf) = NaN, NaN
//	Sincos(NaN) = NaN, NaN
func Sincos(x float32) (float32, float32) {
	sin, cos := math.Sincos(float64(x))
	return float32(sin), float32(cos)
}

// Acos returns the arccosine, in radians, of x.
//
// Special case is:
//
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using
// the signs of the two to determine the quadrant
// of the return value.
//
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +Pi
//	Atan2(-0, x<=-0) = -Pi
//	Atan2(y>0, 0) = +Pi/2
//	Atan2(y<0, 0) = -Pi/2
//	Atan2(+Inf, +Inf) = +Pi/4
//	Atan2(-Inf, +Inf) = -Pi/4
//	Atan2(+Inf, -Inf) = 3Pi/4
//	Atan2(-Inf, -Inf) = -3Pi/4
//	Atan2(y, +Inf) = 0
//	Atan2(y>0, -Inf) = +Pi
//	Atan2(y<0, -Inf) = -Pi
//	Atan2(+Inf, x) = +Pi/2
//	Atan2(-Inf, x) = -Pi/2
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Mod returns the floating-point remainder of x/y.
// The magnitude of the result is less than y and its
// sign agrees with that of x.
//
// Special cases are:
//
//	Mod(±Inf, y) = NaN
//	Mod(NaN, y) = NaN
//	Mod(x, 0) = NaN
//	Mod(x, ±Inf) = x
//	Mod(x, NaN) = NaN
func Mod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}
