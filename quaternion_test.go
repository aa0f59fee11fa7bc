package quat3d

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/quat3d/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonumquat "gonum.org/v1/gonum/num/quat"
)

func assertQuatNear(t *testing.T, want, got Quaternion, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.W, got.W, 1e-5, msgAndArgs...)
	assert.InDelta(t, want.X, got.X, 1e-5, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-5, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, 1e-5, msgAndArgs...)
}

func assertVecNear(t *testing.T, want, got Vector3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, 1e-4, msgAndArgs...)
}

func assertDegreesNear(t *testing.T, want, got float32, msgAndArgs ...interface{}) {
	t.Helper()
	assert.LessOrEqual(t, math32.Abs(math32.WrapDegrees(want-got)), float32(0.05), msgAndArgs...)
}

func randomRotation(r *rand.Rand) Quaternion {
	axis := NewVector3(r.Float32()*2-1, r.Float32()*2-1, r.Float32()*2-1)
	if axis.IsZero() {
		axis = WorldUp
	}
	return NewQuaternionFromAxisAngle(axis, r.Float32()*720-360)
}

func toMgl(q Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func fromMgl(q mgl32.Quat) Quaternion {
	return NewQuaternion(q.W, q.V[0], q.V[1], q.V[2])
}

func TestQuaternionCreate(t *testing.T) {

	var null Quaternion
	assert.True(t, null.IsNull())
	assert.False(t, null.IsIdentity())

	identity := NewQuaternionIdentity()
	assert.Equal(t, float32(1), identity.Scalar())
	assert.Equal(t, Vector3{}, identity.Vector())
	assert.True(t, identity.IsIdentity())
	assert.False(t, identity.IsNull())

	negativeZero := float32(0)
	negativeZero = -negativeZero
	assert.True(t, NewQuaternion(1, negativeZero, negativeZero, negativeZero).IsIdentity())
	assert.True(t, NewQuaternion(negativeZero, negativeZero, negativeZero, negativeZero).IsNull())

	q := NewQuaternion(34, 1, 2.5, -89.25)
	assert.Equal(t, float32(34), q.W)
	assert.Equal(t, float32(1), q.X)
	assert.Equal(t, float32(2.5), q.Y)
	assert.Equal(t, float32(-89.25), q.Z)
	assert.False(t, q.IsNull())

	assert.Equal(t, q, NewQuaternionFromVector(34, NewVector3(1, 2.5, -89.25)))
	assert.Equal(t, q, NewQuaternionFromVector4(NewVector4(1, 2.5, -89.25, 34)))
	assert.Equal(t, NewVector4(1, 2.5, -89.25, 34), q.ToVector4())

	q.SetX(3)
	q.SetY(10.5)
	q.SetZ(-12.5)
	q.SetScalar(-4)
	assert.Equal(t, NewQuaternion(-4, 3, 10.5, -12.5), q)

	q.SetVector(NewVector3(0, 0, 0))
	q.SetScalar(1)
	assert.True(t, q.IsIdentity())

	q.SetScalar(0)
	assert.True(t, q.IsNull())
	assert.True(t, q.IsFinite())

	q.SetY(float32(math.NaN()))
	assert.False(t, q.IsFinite())
	assert.False(t, NewQuaternion(float32(math.Inf(-1)), 0, 0, 0).IsFinite())

}

func TestQuaternionLength(t *testing.T) {

	tests := []struct {
		name       string
		q          Quaternion
		length     float32
		lengthSqrd float32
	}{
		{"null", NewQuaternion(0, 0, 0, 0), 0, 0},
		{"1x", NewQuaternion(0, 1, 0, 0), 1, 1},
		{"1y", NewQuaternion(0, 0, 1, 0), 1, 1},
		{"1z", NewQuaternion(0, 0, 0, 1), 1, 1},
		{"1w", NewQuaternion(1, 0, 0, 0), 1, 1},
		{"-1x", NewQuaternion(0, -1, 0, 0), 1, 1},
		{"-1w", NewQuaternion(-1, 0, 0, 0), 1, 1},
		{"two", NewQuaternion(2, 2, -2, 2), 4, 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.length, tc.q.Length())
			assert.Equal(t, tc.lengthSqrd, tc.q.LengthSquared())
		})
	}

}

func TestQuaternionNormalized(t *testing.T) {

	tests := []struct {
		name string
		q    Quaternion
	}{
		{"1x", NewQuaternion(0, 1, 0, 0)},
		{"-1w", NewQuaternion(-1, 0, 0, 0)},
		{"two", NewQuaternion(2, 2, -2, 2)},
		{"uneven", NewQuaternion(0.25, 3, -40, 7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			length := tc.q.Length()
			n := tc.q.Normalized()

			assert.InDelta(t, 1, n.Length(), 1e-6)
			assertQuatNear(t, tc.q, n.Scale(length))

			inPlace := tc.q
			inPlace.Normalize()
			assert.Equal(t, n, inPlace)

		})
	}

	assert.True(t, Quaternion{}.Normalized().IsNull())
	assert.True(t, NewQuaternion(0.000001, 0, 0, 0).Normalized().IsNull(), "a nearly null quaternion can't be normalized")

	null := Quaternion{}
	null.Normalize()
	assert.True(t, null.IsNull())

}

func TestQuaternionInverted(t *testing.T) {

	tests := []struct {
		name string
		q    Quaternion
		want Quaternion
	}{
		{"identity", NewQuaternionIdentity(), NewQuaternionIdentity()},
		{"1x", NewQuaternion(0, 1, 0, 0), NewQuaternion(0, -1, 0, 0)},
		{"two", NewQuaternion(2, 2, -2, 2), NewQuaternion(0.125, -0.125, 0.125, -0.125)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := tc.q.Inverted()
			assertQuatNear(t, tc.want, inv)
			assertQuatNear(t, NewQuaternionIdentity(), tc.q.Mult(inv))
			assertQuatNear(t, NewQuaternionIdentity(), inv.Mult(tc.q))
		})
	}

	assert.True(t, Quaternion{}.Inverted().IsNull())

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		q := randomRotation(r)
		// A unit quaternion's inverse is its conjugate.
		assertQuatNear(t, q.Conjugated(), q.Inverted())
	}

}

func TestQuaternionConjugated(t *testing.T) {
	assert.Equal(t, NewQuaternion(4, -1, -2, -3), NewQuaternion(4, 1, 2, 3).Conjugated())
	assert.Equal(t, NewQuaternionIdentity(), NewQuaternionIdentity().Conjugated())
}

func TestQuaternionDot(t *testing.T) {

	tests := []struct {
		q1, q2 Quaternion
		dot    float32
	}{
		{Quaternion{}, Quaternion{}, 0},
		{NewQuaternion(1, 0, 0, 0), NewQuaternion(1, 0, 0, 0), 1},
		{NewQuaternion(0, 1, 0, 0), NewQuaternion(0, 0, 1, 0), 0},
		{NewQuaternion(4, 1, 2, 3), NewQuaternion(8, 5, 6, 7), 4*8 + 1*5 + 2*6 + 3*7},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.dot, tc.q1.Dot(tc.q2))
		assert.Equal(t, tc.dot, QuaternionDot(tc.q2, tc.q1))
	}

}

func TestQuaternionCompare(t *testing.T) {

	q := NewQuaternion(4, 1, 2, 3)
	assert.True(t, q.Equals(NewQuaternion(4, 1, 2, 3)))
	assert.False(t, q.Equals(NewQuaternion(4, 1, 2, 3.0001)))
	assert.True(t, q == NewQuaternion(4, 1, 2, 3))

	negativeZero := float32(0)
	negativeZero = -negativeZero
	assert.True(t, Quaternion{}.Equals(NewQuaternion(negativeZero, 0, negativeZero, 0)))

	assert.True(t, q.FuzzyEquals(NewQuaternion(4.000001, 1, 2, 3)))
	assert.False(t, q.FuzzyEquals(NewQuaternion(4.01, 1, 2, 3)))
	assert.True(t, NewQuaternion(1, 0.0000001, 0, 0).FuzzyEquals(NewQuaternionIdentity()))

	rot := NewQuaternionFromAxisAngle(NewVector3(1, 2, -3), 45)
	assert.True(t, rot.SameRotation(rot.Negated()))
	assert.True(t, rot.SameRotation(rot.Scale(3)))
	assert.False(t, rot.SameRotation(NewQuaternionFromAxisAngle(NewVector3(1, 2, -3), 50)))

}

func TestQuaternionArithmetic(t *testing.T) {

	q1 := NewQuaternion(4, 1, 2, 3)
	q2 := NewQuaternion(8, 5, 6, 7)

	assert.Equal(t, NewQuaternion(12, 6, 8, 10), q1.Add(q2))
	assert.Equal(t, NewQuaternion(-4, -4, -4, -4), q1.Sub(q2))
	assert.Equal(t, NewQuaternion(8, 2, 4, 6), q1.Scale(2))
	assert.Equal(t, NewQuaternion(2, 0.5, 1, 1.5), q1.Divide(2))
	assert.Equal(t, NewQuaternion(-4, -1, -2, -3), q1.Negated())

	// Operations return copies.
	assert.Equal(t, NewQuaternion(4, 1, 2, 3), q1)

	q := q1
	q.AddAssign(q2)
	assert.Equal(t, q1.Add(q2), q)

	q = q1
	q.SubAssign(q2)
	assert.Equal(t, q1.Sub(q2), q)

	q = q1
	q.ScaleAssign(-0.5)
	assert.Equal(t, q1.Scale(-0.5), q)

	q = q1
	q.DivideAssign(4)
	assert.Equal(t, q1.Divide(4), q)

	q = q1
	q.MultAssign(q2)
	assert.Equal(t, q1.Mult(q2), q)

}

// hamilton is the expanded Hamilton product, written out component by component.
func hamilton(q1, q2 Quaternion) Quaternion {
	return NewQuaternion(
		q1.W*q2.W-q1.X*q2.X-q1.Y*q2.Y-q1.Z*q2.Z,
		q1.W*q2.X+q1.X*q2.W+q1.Y*q2.Z-q1.Z*q2.Y,
		q1.W*q2.Y-q1.X*q2.Z+q1.Y*q2.W+q1.Z*q2.X,
		q1.W*q2.Z+q1.X*q2.Y-q1.Y*q2.X+q1.Z*q2.W,
	)
}

func TestQuaternionMult(t *testing.T) {

	tests := []struct {
		name   string
		q1, q2 Quaternion
		want   Quaternion
	}{
		{"null", Quaternion{}, Quaternion{}, Quaternion{}},
		{"unitvec", NewQuaternion(1, 1, 0, 0), NewQuaternion(1, 0, 1, 0), NewQuaternion(1, 1, 1, 1)},
		{"complex", NewQuaternion(7, 1, 2, 3), NewQuaternion(8, 4, 5, 6), NewQuaternion(24, 33, 57, 63)},
		{"ij=k", NewQuaternion(0, 1, 0, 0), NewQuaternion(0, 0, 1, 0), NewQuaternion(0, 0, 0, 1)},
		{"ji=-k", NewQuaternion(0, 0, 1, 0), NewQuaternion(0, 1, 0, 0), NewQuaternion(0, 0, 0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.q1.Mult(tc.q2))
		})
	}

	// Every combination of components in [-1, 1] in steps of 0.5; all the products are exact in float32.
	steps := []float32{-1, -0.5, 0, 0.5, 1}
	for _, w := range steps {
		for _, x := range steps {
			for _, y := range steps {
				for _, z := range steps {
					q1 := NewQuaternion(w, x, y, z)
					q2 := NewQuaternion(x, z, w, y)
					require.Equal(t, hamilton(q1, q2), q1.Mult(q2), "%s * %s", q1, q2)
				}
			}
		}
	}

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		q1 := NewQuaternion(r.Float32()*4-2, r.Float32()*4-2, r.Float32()*4-2, r.Float32()*4-2)
		q2 := NewQuaternion(r.Float32()*4-2, r.Float32()*4-2, r.Float32()*4-2, r.Float32()*4-2)
		want := fromGonum(gonumquat.Mul(toGonum(q1), toGonum(q2)))
		assertQuatNear(t, want, q1.Mult(q2))
	}

}

func TestQuaternionRotatedVector(t *testing.T) {

	// 90 degrees around +Y turns +X into -Z.
	assertVecNear(t, WorldForward, NewQuaternionFromAxisAngle(WorldUp, 90).RotatedVector(WorldRight))
	assertVecNear(t, WorldUp, NewQuaternionFromAxisAngle(WorldRight, 90).RotatedVector(WorldForward))
	assertVecNear(t, NewVector3(1, 2, 3), NewQuaternionIdentity().RotatedVector(NewVector3(1, 2, 3)))

	r := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {

		q := randomRotation(r)
		v := NewVector3(r.Float32()*10-5, r.Float32()*10-5, r.Float32()*10-5)

		want := toMgl(q).Rotate(mgl32.Vec3{v.X, v.Y, v.Z})
		got := q.RotatedVector(v)
		assertVecNear(t, NewVector3(want[0], want[1], want[2]), got)

		// The sandwich product with the inverse cancels out the length of a non-unit quaternion.
		assertVecNear(t, got, q.Scale(3.5).RotatedVector(v))

		// Rotation preserves length.
		assert.InDelta(t, v.Magnitude(), got.Magnitude(), 1e-4)

		// Rotating by q1 * q2 is rotating by q2, then by q1.
		q2 := randomRotation(r)
		assertVecNear(t, q.RotatedVector(q2.RotatedVector(v)), q.Mult(q2).RotatedVector(v))

	}

}

func TestQuaternionAxisAngle(t *testing.T) {

	tests := []struct {
		name  string
		axis  Vector3
		angle float32
	}{
		{"null", NewVector3(0, 0, 0), 0},
		{"xonly", NewVector3(1, 0, 0), 90},
		{"yonly", NewVector3(0, 1, 0), 180},
		{"zonly", NewVector3(0, 0, 1), 270},
		{"complex", NewVector3(1, 2, -3), 45},
		{"negative", NewVector3(-4, 0.5, 2), -60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			q := NewQuaternionFromAxisAngle(tc.axis, tc.angle)
			assert.InDelta(t, 1, q.Length(), 1e-6)

			// Straightforward rendition of the axis-angle formula.
			unit := tc.axis.Unit()
			s, c := math32.Sincos(math32.ToRadians(tc.angle) / 2)
			assertQuatNear(t, NewQuaternion(c, unit.X*s, unit.Y*s, unit.Z*s), q)

			assert.Equal(t, q, NewQuaternionFromAxisAngleComponents(tc.axis.X, tc.axis.Y, tc.axis.Z, tc.angle))

			if !tc.axis.IsZero() {
				mgl := mgl32.QuatRotate(math32.ToRadians(tc.angle), mgl32.Vec3{unit.X, unit.Y, unit.Z})
				assertQuatNear(t, fromMgl(mgl), q)
			}

			axis, angle := q.AxisAndAngle()

			if tc.angle == 0 {
				assert.Equal(t, Vector3{}, axis)
				assert.Equal(t, float32(0), angle)
				return
			}

			if tc.angle < 0 {
				// The angle comes back positive, with the axis flipped around.
				assertVecNear(t, unit.Invert(), axis)
				assert.InDelta(t, -tc.angle, angle, 1e-3)
			} else {
				assertVecNear(t, unit, axis)
				assert.InDelta(t, tc.angle, angle, 1e-3)
			}

			aa := q.ToAxisAngle()
			assert.Equal(t, axis, aa.Axis)
			assert.Equal(t, angle, aa.Angle)

		})
	}

	// Non-unit axes are normalized, while axes that are already unit length pass through untouched.
	assertQuatNear(t, NewQuaternionFromAxisAngle(WorldUp, 30), NewQuaternionFromAxisAngle(NewVector3(0, 12, 0), 30))

}

func TestQuaternionRotationMatrix(t *testing.T) {

	tests := []struct {
		name  string
		axis  Vector3
		angle float32
	}{
		{"identity", WorldUp, 0},
		{"x 90", WorldRight, 90},
		{"y 45", WorldUp, 45},
		{"z -30", WorldBackward, -30},
		{"complex", NewVector3(1, 2, -3), 45},
		// 180 degree rotations have a trace of -1, exercising the largest-diagonal branch.
		{"x 180", WorldRight, 180},
		{"y 180", WorldUp, 180},
		{"z 180", WorldBackward, 180},
		{"xy 180", NewVector3(1, 1, 0), 180},
		{"near 180", NewVector3(0.2, -1, 0.4), 179},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			q := NewQuaternionFromAxisAngle(tc.axis, tc.angle)
			mat := q.ToRotationMatrix()

			assert.True(t, mat.Equals(NewMatrix3Rotate(tc.axis, tc.angle)), "%s\n%s", mat, NewMatrix3Rotate(tc.axis, tc.angle))

			mglMat := toMgl(q).Mat4()
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					assert.InDelta(t, mglMat.At(row, col), mat[row][col], 1e-5, "[%d][%d]", row, col)
				}
			}

			assert.InDelta(t, 1, mat.Determinant(), 1e-5)
			assert.True(t, mat.Mult(mat.Transposed()).IsIdentity())

			back := NewQuaternionFromRotationMatrix(mat)
			assert.InDelta(t, 1, back.Length(), 1e-6)
			assert.True(t, back.SameRotation(q), "%s vs %s", back, q)
			assert.True(t, mat.ToQuaternion().SameRotation(q))

		})
	}

	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		q := randomRotation(r)
		back := NewQuaternionFromRotationMatrix(q.ToRotationMatrix())
		require.True(t, back.SameRotation(q), "%s vs %s", back, q)
	}

}

func TestQuaternionAxes(t *testing.T) {

	tests := []struct {
		name                string
		axis                Vector3
		angle               float32
		xAxis, yAxis, zAxis Vector3
	}{
		{"identity", WorldUp, 0, WorldRight, WorldUp, WorldBackward},
		{"xonly", WorldRight, 90, WorldRight, WorldBackward, WorldDown},
		{"yonly", WorldUp, 180, WorldLeft, WorldUp, WorldForward},
		{"zonly", WorldBackward, 270, WorldDown, WorldRight, WorldBackward},
		{
			"complex", NewVector3(1, 2, -3), 45,
			NewVector3(0.728028, -0.525105, -0.440727),
			NewVector3(0.608789, 0.790791, 0.0634566),
			NewVector3(0.315202, -0.314508, 0.895395),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			q := NewQuaternionFromAxisAngle(tc.axis, tc.angle)

			x, y, z := q.Axes()
			assertVecNear(t, tc.xAxis, x)
			assertVecNear(t, tc.yAxis, y)
			assertVecNear(t, tc.zAxis, z)

			back := NewQuaternionFromAxes(tc.xAxis, tc.yAxis, tc.zAxis)
			assert.True(t, back.SameRotation(q), "%s vs %s", back, q)

		})
	}

}

func TestQuaternionRotationTo(t *testing.T) {

	tests := []struct {
		name     string
		from, to Vector3
	}{
		{"+X -> +X", NewVector3(10, 0, 0), NewVector3(10, 0, 0)},
		{"-X -> -X", NewVector3(-10, 0, 0), NewVector3(-10, 0, 0)},
		{"+Y -> +Y", NewVector3(0, 10, 0), NewVector3(0, 10, 0)},
		{"-Y -> -Y", NewVector3(0, -10, 0), NewVector3(0, -10, 0)},
		{"+Z -> +Z", NewVector3(0, 0, 10), NewVector3(0, 0, 10)},
		{"-Z -> -Z", NewVector3(0, 0, -10), NewVector3(0, 0, -10)},
		{"+X+Y+Z -> +X+Y+Z", NewVector3(10, 10, 10), NewVector3(10, 10, 10)},
		{"-X-Y-Z -> -X-Y-Z", NewVector3(-10, -10, -10), NewVector3(-10, -10, -10)},

		{"+Z -> +X", NewVector3(0, 0, 10), NewVector3(10, 0, 0)},
		{"+Z -> -X", NewVector3(0, 0, 10), NewVector3(-10, 0, 0)},
		{"+Z -> +Y", NewVector3(0, 0, 10), NewVector3(0, 10, 0)},
		{"+Z -> -Y", NewVector3(0, 0, 10), NewVector3(0, -10, 0)},
		{"-Z -> +X", NewVector3(0, 0, -10), NewVector3(10, 0, 0)},
		{"-Z -> -X", NewVector3(0, 0, -10), NewVector3(-10, 0, 0)},
		{"-Z -> +Y", NewVector3(0, 0, -10), NewVector3(0, 10, 0)},
		{"-Z -> -Y", NewVector3(0, 0, -10), NewVector3(0, -10, 0)},
		{"+X -> +Y", NewVector3(10, 0, 0), NewVector3(0, 10, 0)},
		{"+X -> -Y", NewVector3(10, 0, 0), NewVector3(0, -10, 0)},
		{"-X -> +Y", NewVector3(-10, 0, 0), NewVector3(0, 10, 0)},
		{"-X -> -Y", NewVector3(-10, 0, 0), NewVector3(0, -10, 0)},
		{"+X+Y+Z -> +X-Y-Z", NewVector3(10, 10, 10), NewVector3(10, -10, -10)},
		{"-X-Y+Z -> -X+Y-Z", NewVector3(-10, -10, 10), NewVector3(-10, 10, -10)},
		{"+X+Y+Z -> +Z", NewVector3(10, 10, 10), NewVector3(0, 0, 10)},

		{"+X -> -X", NewVector3(10, 0, 0), NewVector3(-10, 0, 0)},
		{"+Y -> -Y", NewVector3(0, 10, 0), NewVector3(0, -10, 0)},
		{"+Z -> -Z", NewVector3(0, 0, 10), NewVector3(0, 0, -10)},
		{"+X+Y+Z -> -X-Y-Z", NewVector3(10, 10, 10), NewVector3(-10, -10, -10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			q1 := NewQuaternionRotationTo(tc.from, tc.to)
			assert.InDelta(t, 1, q1.Length(), 1e-5)
			assertVecNear(t, tc.to.Unit(), q1.RotatedVector(tc.from).Unit())

			q2 := NewQuaternionRotationTo(tc.to, tc.from)
			assert.InDelta(t, 1, q2.Length(), 1e-5)
			assertVecNear(t, tc.from.Unit(), q2.RotatedVector(tc.to).Unit())

		})
	}

	// The shortest arc between perpendicular vectors is a 90 degree turn.
	_, angle := NewQuaternionRotationTo(WorldRight, WorldUp).AxisAndAngle()
	assert.InDelta(t, 90, angle, 1e-3)

	// Very short vectors still have a direction to rotate from.
	short := NewQuaternionRotationTo(NewVector3(0.00001, 0, 0), WorldUp)
	axis, angle := short.AxisAndAngle()
	assert.InDelta(t, 90, angle, 1e-3)
	assertVecNear(t, WorldBackward, axis)

}

func TestQuaternionFromDirection(t *testing.T) {

	type testCase struct {
		name          string
		direction, up Vector3
	}

	orientations := []Quaternion{NewQuaternionIdentity()}
	for angle := float32(45); angle <= 360; angle += 45 {
		orientations = append(orientations,
			NewQuaternionFromAxisAngle(WorldRight, angle),
			NewQuaternionFromAxisAngle(WorldUp, angle),
			NewQuaternionFromAxisAngle(WorldBackward, angle),
			NewQuaternionFromAxisAngle(WorldRight, angle).
				Mult(NewQuaternionFromAxisAngle(WorldUp, angle)).
				Mult(NewQuaternionFromAxisAngle(WorldBackward, angle)),
		)
	}

	tests := []testCase{}

	for _, q := range orientations {
		_, y, z := q.Axes()
		tests = append(tests, testCase{"ortho " + q.String(), z.Scale(10), y.Scale(10)})
	}

	tests = append(tests,
		testCase{"dir: +X, up: +X", NewVector3(10, 0, 0), NewVector3(10, 0, 0)},
		testCase{"dir: +X, up: -X", NewVector3(10, 0, 0), NewVector3(-10, 0, 0)},
		testCase{"dir: +Y, up: +Y", NewVector3(0, 10, 0), NewVector3(0, 10, 0)},
		testCase{"dir: +Y, up: -Y", NewVector3(0, 10, 0), NewVector3(0, -10, 0)},
		testCase{"dir: +Z, up: +Z", NewVector3(0, 0, 10), NewVector3(0, 0, 10)},
		testCase{"dir: +Z, up: -Z", NewVector3(0, 0, 10), NewVector3(0, 0, -10)},
		testCase{"dir: +X+Y+Z, up: +X+Y+Z", NewVector3(10, 10, 10), NewVector3(10, 10, 10)},
		testCase{"dir: +X+Y+Z, up: -X-Y-Z", NewVector3(10, 10, 10), NewVector3(-10, -10, -10)},
		testCase{"zero direction", Vector3{}, WorldUp},
	)

	for _, q := range orientations {
		_, _, z := q.Axes()
		tests = append(tests, testCase{"no up " + q.String(), z.Scale(10), Vector3{}})
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			expectedZ := WorldBackward
			if !tc.direction.IsZero() {
				expectedZ = tc.direction.Unit()
			}
			expectedY := tc.up.Unit()

			result := NewQuaternionFromDirection(tc.direction, tc.up)
			assert.InDelta(t, 1, result.Length(), 1e-5)

			x, y, z := result.Axes()
			assertVecNear(t, expectedZ, z)

			if !math32.FuzzyIsNull(expectedZ.Cross(expectedY).MagnitudeSquared()) {
				assertVecNear(t, expectedY, y)
				assertVecNear(t, expectedY.Cross(expectedZ), x)
			}

		})
	}

	assert.True(t, NewQuaternionFromDirection(Vector3{}, WorldUp).IsIdentity())

}

func TestQuaternionEulerAngles(t *testing.T) {

	tests := []struct {
		name             string
		pitch, yaw, roll float32
		want             Quaternion
	}{
		{"null", 0, 0, 0, NewQuaternion(1, 0, 0, 0)},
		{"xonly", 90, 0, 0, NewQuaternion(0.707107, 0.707107, 0, 0)},
		{"yonly", 0, 180, 0, NewQuaternion(0, 0, 1, 0)},
		{"zonly", 0, 0, 270, NewQuaternion(-0.707107, 0, 0, 0.707107)},
		{"x+z", 30, 0, 45, NewQuaternion(0.892399, 0.239118, -0.099046, 0.369644)},
		{"x+y", 30, 90, 0, NewQuaternion(0.683013, 0.183013, 0.683013, -0.183013)},
		{"y+z", 0, 45, 30, NewQuaternion(0.892399, 0.099046, 0.369644, 0.239118)},
		{"complex", 30, 240, -45, NewQuaternion(-0.531976, -0.43968, 0.723317, -0.02226)},
		{"gimbal lock 1", 90, -90, 0, NewQuaternion(0.5, 0.5, -0.5, 0.5)},
		{"gimbal lock 2", 90, 40, 0, NewQuaternion(0.664463, 0.664463, 0.241845, -0.241845)},
		{"gimbal lock 3", 90, 170, 0, NewQuaternion(0.0616285, 0.0616285, 0.704416, -0.704416)},
		{"gimbal lock fraction 1", -90, 90.001152, 0, NewQuaternion(0.499989986, -0.5, 0.5, 0.5)},
		{"gimbal lock fraction 2", -90, -179.999985, 0, NewQuaternion(1.0000001e-07, 1.00000001e-10, -0.707106769, -0.707105756)},
		{"gimbal lock fraction 3", -90, 90.0011597, 0, NewQuaternion(0.499989986, -0.49999994, 0.5, 0.5)},
		{"gimbal lock fraction 4", -90, -180, 0, NewQuaternion(1.0000001e-11, 1.00000001e-11, -0.707106769, -0.707096756)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			qx := NewQuaternionFromAxisAngle(WorldRight, tc.pitch)
			qy := NewQuaternionFromAxisAngle(WorldUp, tc.yaw)
			qz := NewQuaternionFromAxisAngle(WorldBackward, tc.roll)
			composed := qy.Mult(qx.Mult(qz))

			answer := NewQuaternionFromEulerAngles(tc.pitch, tc.yaw, tc.roll)

			assert.True(t, math32.FuzzyEqual(answer.W, composed.W), "w %v vs %v", answer.W, composed.W)
			assert.True(t, math32.FuzzyEqual(answer.X, composed.X), "x %v vs %v", answer.X, composed.X)
			assert.True(t, math32.FuzzyEqual(answer.Y, composed.Y), "y %v vs %v", answer.Y, composed.Y)
			assert.True(t, math32.FuzzyEqual(answer.Z, composed.Z), "z %v vs %v", answer.Z, composed.Z)

			assert.True(t, math32.FuzzyEqual(answer.W, tc.want.W), "w %v vs %v", answer.W, tc.want.W)
			assert.True(t, math32.FuzzyEqual(answer.X, tc.want.X), "x %v vs %v", answer.X, tc.want.X)
			assert.True(t, math32.FuzzyEqual(answer.Y, tc.want.Y), "y %v vs %v", answer.Y, tc.want.Y)
			assert.True(t, math32.FuzzyEqual(answer.Z, tc.want.Z), "z %v vs %v", answer.Z, tc.want.Z)

			assert.Equal(t, answer, NewQuaternionFromEulerVector(NewVector3(tc.pitch, tc.yaw, tc.roll)))

			for _, q := range []Quaternion{answer, tc.want} {

				pitch, yaw, roll := q.EulerAngles()
				assertDegreesNear(t, tc.pitch, pitch, "pitch of %s", q)
				assertDegreesNear(t, tc.yaw, yaw, "yaw of %s", q)
				assertDegreesNear(t, tc.roll, roll, "roll of %s", q)

				assert.Equal(t, NewVector3(pitch, yaw, roll), q.ToEulerAngles())

			}

		})
	}

}

func TestQuaternionEulerAnglesNearGimbalLock(t *testing.T) {

	for _, pitch := range []float32{89.5, 89.75, 89.8, 89.9, -89.75, -89.9} {

		q := NewQuaternionFromEulerAngles(pitch, 10, 40)
		back := NewQuaternionFromEulerVector(q.ToEulerAngles())

		require.True(t, back.SameRotation(q), "pitch %v: %s -> %s", pitch, q, back)

		// Pitches this close to 90 still keep their yaw and roll apart.
		for _, v := range []Vector3{WorldRight, WorldUp, WorldBackward} {
			want := q.RotatedVector(v)
			got := back.RotatedVector(v)
			assert.InDelta(t, 0, want.Sub(got).Magnitude(), 0.001, "pitch %v, rotating %s", pitch, v)
		}

	}

}

func TestQuaternionEulerAnglesRanges(t *testing.T) {

	r := rand.New(rand.NewSource(5))

	for i := 0; i < 500; i++ {

		q := randomRotation(r)
		pitch, yaw, roll := q.EulerAngles()

		require.LessOrEqual(t, math32.Abs(pitch), float32(90.001))
		require.Greater(t, yaw, float32(-180))
		require.LessOrEqual(t, yaw, float32(180))
		require.GreaterOrEqual(t, roll, float32(-180))
		require.LessOrEqual(t, roll, float32(180))

		back := NewQuaternionFromEulerAngles(pitch, yaw, roll)
		require.True(t, back.SameRotation(q), "%s -> (%v, %v, %v) -> %s", q, pitch, yaw, roll, back)

	}

	// Euler angles don't need a normalized quaternion.
	q := NewQuaternionFromEulerAngles(10, 20, 30)
	pitch, yaw, roll := q.Scale(5).EulerAngles()
	assertDegreesNear(t, 10, pitch)
	assertDegreesNear(t, 20, yaw)
	assertDegreesNear(t, 30, roll)

}

func TestSlerp(t *testing.T) {

	axis := NewVector3(1, 2, -3)

	tests := []struct {
		name           string
		angle1, angle2 float32
		t              float32
		want           float32
	}{
		{"first", 90, 180, 0, 90},
		{"second", 90, 180, 1, 180},
		{"middle", 90, 180, 0.5, 135},
		{"wide angle", 0, 270, 0.5, -45},
		{"extrapolate before", 90, 180, -0.5, 45},
		{"extrapolate after", 90, 180, 1.5, 225},
		{"same", 60, 60, 0.3, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			q1 := NewQuaternionFromAxisAngle(axis, tc.angle1)
			q2 := NewQuaternionFromAxisAngle(axis, tc.angle2)
			want := NewQuaternionFromAxisAngle(axis, tc.want)

			result := Slerp(q1, q2, tc.t)
			assertQuatNear(t, want, result)
			assert.Equal(t, result, q1.Slerp(q2, tc.t))

		})
	}

	q1 := NewQuaternionFromAxisAngle(axis, 10)
	q2 := NewQuaternionFromAxisAngle(WorldUp, 200)
	assert.Equal(t, q1, Slerp(q1, q2, 0), "t = 0 is exactly q1")
	assert.Equal(t, q2, Slerp(q1, q2, 1), "t = 1 is exactly q2, even when the shorter arc ends at -q2")

	r := rand.New(rand.NewSource(6))

	for i := 0; i < 100; i++ {

		q1 := randomRotation(r)
		q2 := randomRotation(r)
		if q1.Dot(q2) < 0 {
			q2 = q2.Negated()
		}
		amount := r.Float32()

		result := Slerp(q1, q2, amount)
		assert.InDelta(t, 1, result.Length(), 1e-5)

		// Constant angular speed: the angle travelled is proportional to t.
		_, total := q2.Mult(q1.Conjugated()).AxisAndAngle()
		_, travelled := result.Mult(q1.Conjugated()).AxisAndAngle()
		assert.InDelta(t, total*amount, travelled, 0.05)

		want := fromMgl(mgl32.QuatSlerp(toMgl(q1), toMgl(q2), amount))
		assert.True(t, want.SameRotation(result), "%s vs %s", want, result)

	}

}

func TestNlerp(t *testing.T) {

	axis := NewVector3(1, 2, -3)

	tests := []struct {
		name           string
		angle1, angle2 float32
		t              float32
		want           float32
	}{
		{"first", 90, 180, 0, 90},
		{"clamped before", 90, 180, -0.5, 90},
		{"second", 90, 180, 1, 180},
		{"clamped after", 90, 180, 1.5, 180},
		{"middle", 90, 180, 0.5, 135},
		{"wide angle", 0, 270, 0.5, -45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			q1 := NewQuaternionFromAxisAngle(axis, tc.angle1)
			q2 := NewQuaternionFromAxisAngle(axis, tc.angle2)
			want := NewQuaternionFromAxisAngle(axis, tc.want)

			result := Nlerp(q1, q2, tc.t)
			assertQuatNear(t, want, result)
			assert.Equal(t, result, q1.Nlerp(q2, tc.t))

		})
	}

	q1 := NewQuaternionFromAxisAngle(axis, 10)
	q2 := NewQuaternionFromAxisAngle(WorldUp, 200)
	assert.Equal(t, q1, Nlerp(q1, q2, -1))
	assert.Equal(t, q2, Nlerp(q1, q2, 2))
	assert.InDelta(t, 1, Nlerp(q1, q2, 0.25).Length(), 1e-6)

}

func TestSquad(t *testing.T) {

	q1 := NewQuaternionFromAxisAngle(WorldUp, 0)
	q2 := NewQuaternionFromAxisAngle(WorldUp, 90)

	for _, amount := range []float32{0, 0.25, 0.5, 0.75, 1} {
		// With the control points on the endpoints, Squad is Slerp.
		assertQuatNear(t, Slerp(q1, q2, amount), Squad(q1, q1, q2, q2, amount))
	}

	a := NewQuaternionFromAxisAngle(WorldRight, 20)
	b := NewQuaternionFromAxisAngle(WorldBackward, -20)
	assertQuatNear(t, q1, Squad(q1, a, b, q2, 0))
	assertQuatNear(t, q2, Squad(q1, a, b, q2, 1))

	// Evenly spaced rotations around one axis need no correction, so the control point is the rotation itself.
	previous := NewQuaternionFromAxisAngle(WorldUp, -30)
	current := NewQuaternionFromAxisAngle(WorldUp, 0)
	next := NewQuaternionFromAxisAngle(WorldUp, 30)
	assertQuatNear(t, current, NewQuaternionSquadControl(previous, current, next))

	control := NewQuaternionSquadControl(a, q1, b)
	assert.InDelta(t, 1, control.Length(), 1e-5)

}

func TestQuaternionExpLogPow(t *testing.T) {

	q := NewQuaternionFromAxisAngle(NewVector3(1, 2, -3), 80)

	log := q.Log()
	axis := NewVector3(1, 2, -3).Unit()
	assert.InDelta(t, 0, log.W, 1e-6)
	assertVecNear(t, axis.Scale(math32.ToRadians(40)), log.Vector())

	assertQuatNear(t, q, log.Exp())

	assertQuatNear(t, NewQuaternionFromAxisAngle(axis, 40), q.Pow(0.5))
	assertQuatNear(t, NewQuaternionFromAxisAngle(axis, 160), q.Pow(2))
	assertQuatNear(t, q.Mult(q), q.Pow(2))
	assertQuatNear(t, q.Inverted(), q.Pow(-1))
	assertQuatNear(t, NewQuaternionIdentity(), q.Pow(0))

	assertQuatNear(t, NewQuaternionIdentity(), Quaternion{}.Exp())

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		q := randomRotation(r)
		if q.W < 0 {
			q = q.Negated()
		}
		amount := r.Float32()
		assertQuatNear(t, Slerp(NewQuaternionIdentity(), q, amount), q.Pow(amount))
	}

}

func TestQuaternionString(t *testing.T) {
	assert.Equal(t, "Quaternion(scalar:1, vector:(0, 0, 0))", NewQuaternionIdentity().String())
	assert.Equal(t, "Quaternion(scalar:0.5, vector:(-1.25, 2, 3))", NewQuaternion(0.5, -1.25, 2, 3).String())
}

func TestQuaternionBinary(t *testing.T) {

	data, err := NewQuaternionIdentity().MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x3f, 0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, data)

	q := NewQuaternion(-3.5, 1, 2.25, -1e-7)
	data, err = q.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 16)

	var decoded Quaternion
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, q, decoded)

	err = decoded.UnmarshalBinary(data[:15])
	assert.ErrorIs(t, err, ErrInvalidQuaternionData)
	assert.Equal(t, q, decoded, "a failed decode leaves the quaternion alone")

}

func TestQuaternionJSON(t *testing.T) {

	data, err := json.Marshal(NewQuaternion(1, 0, 0.5, -2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"w":1,"x":0,"y":0.5,"z":-2}`, string(data))

	var q Quaternion
	require.NoError(t, json.Unmarshal(data, &q))
	assert.Equal(t, NewQuaternion(1, 0, 0.5, -2), q)

	require.NoError(t, json.Unmarshal([]byte(`{"y":1}`), &q))
	assert.Equal(t, NewQuaternion(1, 0, 1, 0), q, "missing components come from the identity")

	var list []Quaternion
	require.NoError(t, json.Unmarshal([]byte(`[{"w":0,"x":1,"y":0,"z":0},{}]`), &list))
	assert.Equal(t, []Quaternion{NewQuaternion(0, 1, 0, 0), NewQuaternionIdentity()}, list)

	assert.Error(t, json.Unmarshal([]byte(`{"w":"one"}`), &q))

}

func BenchmarkQuaternionMult(b *testing.B) {
	q1 := NewQuaternionFromAxisAngle(NewVector3(1, 2, -3), 45)
	q2 := NewQuaternionFromEulerAngles(10, 20, 30)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q1 = q1.Mult(q2)
	}
}

func BenchmarkQuaternionRotatedVector(b *testing.B) {
	q := NewQuaternionFromAxisAngle(NewVector3(1, 2, -3), 45)
	v := NewVector3(1, 0, 0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v = q.RotatedVector(v)
	}
}

func BenchmarkSlerp(b *testing.B) {
	q1 := NewQuaternionFromAxisAngle(NewVector3(1, 2, -3), 45)
	q2 := NewQuaternionFromEulerAngles(10, 20, 30)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Slerp(q1, q2, float32(i%100)/100)
	}
}
