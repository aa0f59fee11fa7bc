package quat3d

import (
	"github.com/solarlune/quat3d/math32"
	gonumquat "gonum.org/v1/gonum/num/quat"
)

// Slerp spherically interpolates between two Quaternions along the shortest arc, where t = 0 returns q1 exactly and
// t = 1 returns q2 exactly. Values of t outside of [0, 1] extrapolate along the same great circle.
// When the Quaternions are nearly identical, a plain linear interpolation is used to avoid dividing by a tiny sine.
// The inputs should be normalized.
func Slerp(q1, q2 Quaternion, t float32) Quaternion {

	if t == 0 {
		return q1
	} else if t == 1 {
		return q2
	}

	q2b := q2
	dot := q1.Dot(q2)

	if dot < 0 {
		q2b = q2.Negated()
		dot = -dot
	}

	factor1 := 1 - t
	factor2 := t

	if 1-dot > 0.0000001 {
		angle := math32.Acos(math32.Clamp(dot, -1, 1))
		sinOfAngle := math32.Sin(angle)
		if sinOfAngle > 0.0000001 {
			factor1 = math32.Sin((1-t)*angle) / sinOfAngle
			factor2 = math32.Sin(t*angle) / sinOfAngle
		}
	}

	return q1.Scale(factor1).Add(q2b.Scale(factor2))

}

// Slerp is shorthand for Slerp(quat, other, t).
func (quat Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	return Slerp(quat, other, t)
}

// Nlerp interpolates linearly between two Quaternions along the shortest path and normalizes the result.
// This is faster than Slerp, but doesn't move at a constant angular speed. t is clamped to [0, 1], with t <= 0
// returning q1 exactly and t >= 1 returning q2 exactly.
func Nlerp(q1, q2 Quaternion, t float32) Quaternion {

	if t <= 0 {
		return q1
	} else if t >= 1 {
		return q2
	}

	q2b := q2
	if q1.Dot(q2) < 0 {
		q2b = q2.Negated()
	}

	return q1.Scale(1 - t).Add(q2b.Scale(t)).Normalized()

}

// Nlerp is shorthand for Nlerp(quat, other, t).
func (quat Quaternion) Nlerp(other Quaternion, t float32) Quaternion {
	return Nlerp(quat, other, t)
}

// Squad performs spherical quadrangle interpolation from q1 to q2, using the control Quaternions a and b (see
// NewQuaternionSquadControl) to keep the angular velocity continuous across a sequence of rotations.
func Squad(q1, a, b, q2 Quaternion, t float32) Quaternion {
	return Slerp(Slerp(q1, q2, t), Slerp(a, b, t), 2*t*(1-t))
}

// NewQuaternionSquadControl returns the Squad control Quaternion for current, given the Quaternions before and after it in
// a sequence of rotations. All three should be normalized.
func NewQuaternionSquadControl(previous, current, next Quaternion) Quaternion {

	// Keep the neighbours in the same hemisphere so the logarithms measure the short way around.
	if current.Dot(previous) < 0 {
		previous = previous.Negated()
	}
	if current.Dot(next) < 0 {
		next = next.Negated()
	}

	inv := current.Conjugated()
	toNext := inv.Mult(next).Log()
	toPrevious := inv.Mult(previous).Log()

	return current.Mult(toNext.Add(toPrevious).Scale(-0.25).Exp()).Normalized()

}

func toGonum(quat Quaternion) gonumquat.Number {
	return gonumquat.Number{
		Real: float64(quat.W),
		Imag: float64(quat.X),
		Jmag: float64(quat.Y),
		Kmag: float64(quat.Z),
	}
}

func fromGonum(n gonumquat.Number) Quaternion {
	return NewQuaternion(float32(n.Real), float32(n.Imag), float32(n.Jmag), float32(n.Kmag))
}

// Exp returns the quaternion exponential of the Quaternion. For a pure Quaternion (0, axis * angle) with a unit axis,
// this is the unit Quaternion rotating by 2 * angle radians around axis.
func (quat Quaternion) Exp() Quaternion {
	return fromGonum(gonumquat.Exp(toGonum(quat)))
}

// Log returns the natural logarithm of the Quaternion; the inverse of Exp. For a unit Quaternion rotating by angle radians
// around a unit axis, this is the pure Quaternion (0, axis * angle / 2).
func (quat Quaternion) Log() Quaternion {
	return fromGonum(gonumquat.Log(toGonum(quat)))
}

// Pow raises the Quaternion to the given real power. For a unit Quaternion, this scales its rotation angle by exponent,
// so Pow(0.5) rotates half as far around the same axis.
func (quat Quaternion) Pow(exponent float32) Quaternion {
	return fromGonum(gonumquat.Pow(toGonum(quat), gonumquat.Number{Real: float64(exponent)}))
}
