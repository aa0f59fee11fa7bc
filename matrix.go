package quat3d

import (
	"strconv"

	"github.com/solarlune/quat3d/math32"
)

// Matrix3 represents a 3x3 rotation matrix. A Matrix3 is indexed as matrix[row][column] and transforms column vectors
// (v' = M * v), so the columns of a rotation Matrix3 are the rotated X, Y, and Z axes.
type Matrix3 [3][3]float32

// NewMatrix3 returns a new identity Matrix3.
func NewMatrix3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewMatrix3FromColumns returns a new Matrix3 with the given vectors as its columns.
func NewMatrix3FromColumns(x, y, z Vector3) Matrix3 {
	mat := Matrix3{}
	mat.SetColumn(0, x)
	mat.SetColumn(1, y)
	mat.SetColumn(2, z)
	return mat
}

// NewMatrix3Rotate returns a new Matrix3 designed to rotate by the angle given (in degrees) along the axis given.
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle.
func NewMatrix3Rotate(axis Vector3, angle float32) Matrix3 {

	// Default to spinning on +Y axis if there is no valid axis
	if axis.IsZero() {
		axis = WorldUp
	}

	mat := NewMatrix3()
	vector := axis.Unit()
	s, c := math32.Sincos(math32.ToRadians(angle))
	m := 1 - c

	mat[0][0] = m*vector.X*vector.X + c
	mat[0][1] = m*vector.X*vector.Y - vector.Z*s
	mat[0][2] = m*vector.Z*vector.X + vector.Y*s

	mat[1][0] = m*vector.X*vector.Y + vector.Z*s
	mat[1][1] = m*vector.Y*vector.Y + c
	mat[1][2] = m*vector.Y*vector.Z - vector.X*s

	mat[2][0] = m*vector.Z*vector.X - vector.Y*s
	mat[2][1] = m*vector.Y*vector.Z + vector.X*s
	mat[2][2] = m*vector.Z*vector.Z + c

	return mat

}

// ToQuaternion returns a Quaternion representative of the Matrix3's rotation (assuming it is a pure rotation matrix).
func (matrix Matrix3) ToQuaternion() Quaternion {
	return NewQuaternionFromRotationMatrix(matrix)
}

// Row returns the indiced row from the Matrix3 as a Vector3.
func (matrix Matrix3) Row(rowIndex int) Vector3 {
	return Vector3{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
	}
}

// Column returns the indiced column from the Matrix3 as a Vector3.
func (matrix Matrix3) Column(columnIndex int) Vector3 {
	return Vector3{
		X: matrix[0][columnIndex],
		Y: matrix[1][columnIndex],
		Z: matrix[2][columnIndex],
	}
}

// SetRow sets the Matrix3 with the row in rowIndex set to the 3D vector passed.
func (matrix *Matrix3) SetRow(rowIndex int, vec Vector3) {
	matrix[rowIndex][0] = vec.X
	matrix[rowIndex][1] = vec.Y
	matrix[rowIndex][2] = vec.Z
}

// SetColumn sets the Matrix3 with the column in columnIndex set to the 3D vector passed.
func (matrix *Matrix3) SetColumn(columnIndex int, vec Vector3) {
	matrix[0][columnIndex] = vec.X
	matrix[1][columnIndex] = vec.Y
	matrix[2][columnIndex] = vec.Z
}

// Transposed transposes a Matrix3. For orthonormal matrices (like rotation matrices), this is equivalent to inverting it.
func (matrix Matrix3) Transposed() Matrix3 {

	new := Matrix3{}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			new[i][j] = matrix[j][i]
		}
	}

	return new

}

// Determinant returns the determinant of the Matrix3; 1 for any proper rotation matrix.
func (matrix Matrix3) Determinant() float32 {
	return matrix[0][0]*(matrix[1][1]*matrix[2][2]-matrix[1][2]*matrix[2][1]) -
		matrix[0][1]*(matrix[1][0]*matrix[2][2]-matrix[1][2]*matrix[2][0]) +
		matrix[0][2]*(matrix[1][0]*matrix[2][1]-matrix[1][1]*matrix[2][0])
}

// Inverted returns an inverted version of the Matrix3, computed as the adjugate divided by the determinant.
// A singular Matrix3 gives a zero'd out Matrix3.
func (matrix Matrix3) Inverted() Matrix3 {

	det := matrix.Determinant()

	if det == 0 {
		return Matrix3{}
	}

	det = 1 / det

	m := Matrix3{}

	m[0][0] = det * (matrix[1][1]*matrix[2][2] - matrix[1][2]*matrix[2][1])
	m[0][1] = det * -(matrix[0][1]*matrix[2][2] - matrix[0][2]*matrix[2][1])
	m[0][2] = det * (matrix[0][1]*matrix[1][2] - matrix[0][2]*matrix[1][1])

	m[1][0] = det * -(matrix[1][0]*matrix[2][2] - matrix[1][2]*matrix[2][0])
	m[1][1] = det * (matrix[0][0]*matrix[2][2] - matrix[0][2]*matrix[2][0])
	m[1][2] = det * -(matrix[0][0]*matrix[1][2] - matrix[0][2]*matrix[1][0])

	m[2][0] = det * (matrix[1][0]*matrix[2][1] - matrix[1][1]*matrix[2][0])
	m[2][1] = det * -(matrix[0][0]*matrix[2][1] - matrix[0][1]*matrix[2][0])
	m[2][2] = det * (matrix[0][0]*matrix[1][1] - matrix[0][1]*matrix[1][0])

	return m

}

// Mult multiplies a Matrix3 by another provided Matrix3 (matrix * other); the result applies other first, then matrix.
func (matrix Matrix3) Mult(other Matrix3) Matrix3 {

	newMat := Matrix3{}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			newMat[r][c] = matrix[r][0]*other[0][c] + matrix[r][1]*other[1][c] + matrix[r][2]*other[2][c]
		}
	}

	return newMat

}

// MultVec multiplies the vector provided by the Matrix3, giving a vector that has been rotated as desired.
func (matrix Matrix3) MultVec(vect Vector3) Vector3 {
	return Vector3{
		X: matrix[0][0]*vect.X + matrix[0][1]*vect.Y + matrix[0][2]*vect.Z,
		Y: matrix[1][0]*vect.X + matrix[1][1]*vect.Y + matrix[1][2]*vect.Z,
		Z: matrix[2][0]*vect.X + matrix[2][1]*vect.Y + matrix[2][2]*vect.Z,
	}
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix3.
func (matrix Matrix3) Equals(other Matrix3) bool {

	eps := float32(0.0001) // epsilon floating point error value
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math32.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix3()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix3) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

// Floats returns the Matrix3 as a row-major [9]float32.
func (matrix Matrix3) Floats() [9]float32 {
	return [9]float32{
		matrix[0][0], matrix[0][1], matrix[0][2],
		matrix[1][0], matrix[1][1], matrix[1][2],
		matrix[2][0], matrix[2][1], matrix[2][2],
	}
}

func (matrix Matrix3) String() string {
	s := "{"
	for i, y := range matrix {
		for j, x := range y {
			s += strconv.FormatFloat(float64(x), 'f', -1, 32)
			if j < len(y)-1 {
				s += ", "
			}
		}
		if i < len(matrix)-1 {
			s += "\n "
		}
	}
	s += "}"
	return s
}
