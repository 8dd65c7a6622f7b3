package vmath

import "fmt"

// Matrix3 is a 3x3 matrix stored in a column-major array: the element at
// row r, column c lives at index c*3 + r.
type Matrix3 [9]float32

// Identity3 returns a new 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromColumns returns a new [Matrix3] with the given column vectors.
func Matrix3FromColumns(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Matrix3FromMatrix4 returns a new [Matrix3] from the upper-left 3x3 block
// of the given [Matrix4].
func Matrix3FromMatrix4(m Matrix4) Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// At returns the element at the given row and column. It returns an error
// if either index is outside [0, 3); this is the only hard error in the
// package.
func (m Matrix3) At(row, col int) (float32, error) {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return 0, fmt.Errorf("vmath: Matrix3 index out of range: row %d, col %d", row, col)
	}
	return m[col*3+row], nil
}

// SetAt sets the element at the given row and column. It returns an error
// if either index is outside [0, 3).
func (m *Matrix3) SetAt(row, col int, v float32) error {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return fmt.Errorf("vmath: Matrix3 index out of range: row %d, col %d", row, col)
	}
	m[col*3+row] = v
	return nil
}

// Mul returns this matrix times the other given matrix (standard composition:
// the other matrix is applied first).
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var out Matrix3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c*3+r] = m[0*3+r]*other[c*3+0] +
				m[1*3+r]*other[c*3+1] +
				m[2*3+r]*other[c*3+2]
		}
	}
	return out
}

// MulVector3 returns the given vector, treated as a column, transformed by
// this matrix.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// MulScalar returns this matrix with each element multiplied by the scalar s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	var out Matrix3
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	var out Matrix3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[r*3+c] = m[c*3+r]
		}
	}
	return out
}

// Determinant returns the determinant of this matrix, by cofactor
// expansion along the first row.
func (m Matrix3) Determinant() float32 {
	a := m[0] * (m[4]*m[8] - m[7]*m[5])
	b := m[3] * (m[1]*m[8] - m[7]*m[2])
	c := m[6] * (m[1]*m[5] - m[4]*m[2])
	return a - b + c
}

// Inverse returns the inverse of this matrix, computed as the adjugate over
// the determinant. A matrix with |determinant| < [Epsilon] is treated as
// singular and the identity matrix is returned instead.
func (m Matrix3) Inverse() Matrix3 {
	det := m.Determinant()
	if Abs(det) < Epsilon {
		return Identity3()
	}
	var out Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			// adjugate: transposed cofactor
			out[c*3+r] = m.cofactor(c, r) / det
		}
	}
	return out
}

// cofactor returns the signed 2x2 minor obtained by deleting the given
// row and column.
func (m Matrix3) cofactor(row, col int) float32 {
	var sub [4]float32
	i := 0
	for c := 0; c < 3; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 3; r++ {
			if r == row {
				continue
			}
			sub[i] = m[c*3+r]
			i++
		}
	}
	minor := sub[0]*sub[3] - sub[2]*sub[1]
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// AlmostEqual returns whether this matrix is within [EqualTol] of the
// other given matrix on each element.
func (m Matrix3) AlmostEqual(other Matrix3) bool {
	for i := range m {
		if !AlmostEqual(m[i], other[i], EqualTol) {
			return false
		}
	}
	return true
}
