package vmath

import "fmt"

// Matrix4 is a 4x4 matrix stored in a column-major array: the element at
// row r, column c lives at index c*4 + r. Transform builders follow the
// OpenGL clip-space and camera conventions (right-handed, looking down -Z).
type Matrix4 [16]float32

// Identity4 returns a new 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromMatrix3 returns a new [Matrix4] with the given [Matrix3] as
// its upper-left 3x3 block and identity elsewhere.
func Matrix4FromMatrix3(m Matrix3) Matrix4 {
	return Matrix4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column. It returns an error
// if either index is outside [0, 4); this is the only hard error in the
// package.
func (m Matrix4) At(row, col int) (float32, error) {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return 0, fmt.Errorf("vmath: Matrix4 index out of range: row %d, col %d", row, col)
	}
	return m[col*4+row], nil
}

// SetAt sets the element at the given row and column. It returns an error
// if either index is outside [0, 4).
func (m *Matrix4) SetAt(row, col int, v float32) error {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return fmt.Errorf("vmath: Matrix4 index out of range: row %d, col %d", row, col)
	}
	m[col*4+row] = v
	return nil
}

// Mul returns this matrix times the other given matrix (standard composition:
// the other matrix is applied first).
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = m[0*4+r]*other[c*4+0] +
				m[1*4+r]*other[c*4+1] +
				m[2*4+r]*other[c*4+2] +
				m[3*4+r]*other[c*4+3]
		}
	}
	return out
}

// MulVector4 returns the given vector, treated as a column, transformed by
// this matrix.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms the given point (w = 1) by this matrix and returns
// the result as a [Vector3], dropping w.
func (m Matrix4) MulPoint(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 1)).Vector3()
}

// MulScalar returns this matrix with each element multiplied by the scalar s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	var out Matrix4
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// Determinant returns the determinant of this matrix, by cofactor
// expansion along the first row over 3x3 minors.
func (m Matrix4) Determinant() float32 {
	return m[0]*m.minor(0, 0) -
		m[4]*m.minor(0, 1) +
		m[8]*m.minor(0, 2) -
		m[12]*m.minor(0, 3)
}

// minor returns the determinant of the 3x3 submatrix obtained by deleting
// the given row and column.
func (m Matrix4) minor(row, col int) float32 {
	var sub Matrix3
	i := 0
	for c := 0; c < 4; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 4; r++ {
			if r == row {
				continue
			}
			sub[i] = m[c*4+r]
			i++
		}
	}
	return sub.Determinant()
}

// Inverse returns the inverse of this matrix, computed as the adjugate over
// the determinant. A matrix with |determinant| < [Epsilon] is treated as
// singular and the identity matrix is returned instead of an error.
func (m Matrix4) Inverse() Matrix4 {
	det := m.Determinant()
	if Abs(det) < Epsilon {
		return Identity4()
	}
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// adjugate: transposed cofactor
			cof := m.minor(c, r)
			if (r+c)%2 != 0 {
				cof = -cof
			}
			out[c*4+r] = cof / det
		}
	}
	return out
}

// Translation returns a translation matrix with the given offset in the
// last column.
func Translation(v Vector3) Matrix4 {
	out := Identity4()
	out[12] = v.X
	out[13] = v.Y
	out[14] = v.Z
	return out
}

// Translated returns this matrix with the given offset added into its
// last column.
func (m Matrix4) Translated(v Vector3) Matrix4 {
	out := m
	out[12] += v.X
	out[13] += v.Y
	out[14] += v.Z
	return out
}

// Scaling returns a diagonal scale matrix with the given per-axis factors.
func Scaling(v Vector3) Matrix4 {
	out := Identity4()
	out[0] = v.X
	out[5] = v.Y
	out[10] = v.Z
	return out
}

// Scaled returns this matrix right-multiplied by a diagonal scale matrix
// with the given per-axis factors.
func (m Matrix4) Scaled(v Vector3) Matrix4 {
	return m.Mul(Scaling(v))
}

// RotatedLocal returns this matrix post-multiplied by the rotation matrix
// of q: the rotation is applied in object space, before this matrix.
func (m Matrix4) RotatedLocal(q Quat) Matrix4 {
	return m.Mul(q.RotationMatrix())
}

// RotatedWorld returns this matrix pre-multiplied by the rotation matrix
// of q: the rotation is applied in world space, after this matrix.
// The operand order is the whole difference from [Matrix4.RotatedLocal];
// rotation composition does not commute.
func (m Matrix4) RotatedWorld(q Quat) Matrix4 {
	return q.RotationMatrix().Mul(m)
}

// Perspective returns a perspective projection matrix with the given
// vertical field of view in radians, aspect ratio, and near and far
// clip distances.
func Perspective(fov, aspect, near, far float32) Matrix4 {
	f := 1 / Tan(fov/2)
	var out Matrix4
	out[0] = f / aspect
	out[5] = f
	out[10] = (far + near) / (near - far)
	out[11] = -1
	out[14] = (2 * far * near) / (near - far)
	return out
}

// Ortho returns an orthographic projection matrix with the given left,
// right, bottom, top, near and far clip planes.
func Ortho(left, right, bottom, top, near, far float32) Matrix4 {
	out := Identity4()
	out[0] = 2 / (right - left)
	out[5] = 2 / (top - bottom)
	out[10] = -2 / (far - near)
	out[12] = -(right + left) / (right - left)
	out[13] = -(top + bottom) / (top - bottom)
	out[14] = -(far + near) / (far - near)
	return out
}

// LookAt returns a view matrix for a camera at eye looking at target, with
// the given approximate up direction. The basis is orthonormalized via
// cross products, assembled as a rotation, and the negated eye position is
// applied as the translation.
func LookAt(eye, target, up Vector3) Matrix4 {
	f := target.Sub(eye).Normal()
	s := f.Cross(up).Normal()
	u := s.Cross(f)

	out := Identity4()
	out[0] = s.X
	out[4] = s.Y
	out[8] = s.Z
	out[1] = u.X
	out[5] = u.Y
	out[9] = u.Z
	out[2] = -f.X
	out[6] = -f.Y
	out[10] = -f.Z
	out[12] = -s.Dot(eye)
	out[13] = -u.Dot(eye)
	out[14] = f.Dot(eye)
	return out
}

// AlmostEqual returns whether this matrix is within [EqualTol] of the
// other given matrix on each element.
func (m Matrix4) AlmostEqual(other Matrix4) bool {
	for i := range m {
		if !AlmostEqual(m[i], other[i], EqualTol) {
			return false
		}
	}
	return true
}
