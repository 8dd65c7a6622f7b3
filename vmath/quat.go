package vmath

import "fmt"

// Quat is a rotation quaternion with W, X, Y and Z components. A unit
// quaternion encodes a rotation; q and -q encode the same rotation.
//
// Multiplication is the Hamilton product, with a.Mul(b) composing like
// matrices: b is applied first, then a. Vector rotation is the sandwich
// product q * v * q^-1. This convention is used consistently across matrix
// conversion, vector rotation, and the transform graph.
type Quat struct {
	W float32
	X float32
	Y float32
	Z float32
}

// QuatIdentity returns the identity quaternion (1, 0, 0, 0).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the quaternion rotating by the given angle in
// radians about the given axis, which is expected to be of unit length.
func QuatFromAxisAngle(axis Vector3, angle float32) Quat {
	s := Sin(angle / 2)
	return Quat{
		W: Cos(angle / 2),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// QuatFromEuler returns the quaternion for the given Euler angles in
// radians, composed in YXZ order: yaw about Y, then pitch about X, then
// roll about Z (the camera convention matching Forward = -Z).
func QuatFromEuler(pitch, yaw, roll float32) Quat {
	cp, sp := Cos(pitch/2), Sin(pitch/2)
	cy, sy := Cos(yaw/2), Sin(yaw/2)
	cr, sr := Cos(roll/2), Sin(roll/2)

	return Quat{
		W: cp*cy*cr + sp*sy*sr,
		X: sp*cy*cr + cp*sy*sr,
		Y: cp*sy*cr - sp*cy*sr,
		Z: cp*cy*sr - sp*sy*cr,
	}
}

// QuatFromRotationMatrix returns the quaternion for the given pure
// rotation matrix, using the trace method.
func QuatFromRotationMatrix(m Matrix3) Quat {
	m11, m12, m13 := m[0], m[3], m[6]
	m21, m22, m23 := m[1], m[4], m[7]
	m31, m32, m33 := m[2], m[5], m[8]
	trace := m11 + m22 + m33

	var q Quat
	switch {
	case trace > 0:
		s := 0.5 / Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s := 2 * Sqrt(1+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s := 2 * Sqrt(1+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s := 2 * Sqrt(1+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
	return q
}

func (q Quat) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.W, q.X, q.Y, q.Z)
}

// Mul returns the Hamilton product of this quaternion with the other given
// quaternion: the other rotation is applied first.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// Add returns the componentwise sum of this quaternion and the other given one.
func (q Quat) Add(other Quat) Quat {
	return Quat{q.W + other.W, q.X + other.X, q.Y + other.Y, q.Z + other.Z}
}

// MulScalar returns this quaternion with each component multiplied by the scalar s.
func (q Quat) MulScalar(s float32) Quat {
	return Quat{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// Negate returns this quaternion with each component negated, which
// encodes the same rotation (double cover).
func (q Quat) Negate() Quat {
	return Quat{-q.W, -q.X, -q.Y, -q.Z}
}

// Dot returns the dot product of this quaternion with the other given one.
func (q Quat) Dot(other Quat) float32 {
	return q.W*other.W + q.X*other.X + q.Y*other.Y + q.Z*other.Z
}

// Length returns the length of this quaternion.
func (q Quat) Length() float32 {
	return Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// LengthSquared returns the length squared of this quaternion.
func (q Quat) LengthSquared() float32 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Normal returns this quaternion scaled to unit length. Quaternions
// shorter than [Epsilon] return the identity quaternion.
func (q Quat) Normal() Quat {
	l := q.Length()
	if l < Epsilon {
		return QuatIdentity()
	}
	return q.MulScalar(1 / l)
}

// Conjugate returns the conjugate of this quaternion: (w, -x, -y, -z).
func (q Quat) Conjugate() Quat {
	return Quat{q.W, -q.X, -q.Y, -q.Z}
}

// Inverse returns the inverse of this quaternion: the conjugate divided
// by the length squared. For unit quaternions this equals the conjugate.
func (q Quat) Inverse() Quat {
	return q.Conjugate().MulScalar(1 / q.LengthSquared())
}

// RotationMatrix returns the rotation matrix of this quaternion, embedded
// in a [Matrix4], via the direct closed-form expression. The quaternion is
// expected to be of unit length.
func (q Quat) RotationMatrix() Matrix4 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Matrix4{
		1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y), 0,
		2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x), 0,
		2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	}
}

// Euler returns the Euler angles (pitch, yaw, roll) in radians of this
// quaternion, in the same YXZ order [QuatFromEuler] composes them. The
// asin argument is clamped to [-1, 1]; at the gimbal-lock singularity
// (pitch at +/-90 degrees) roll is reported as 0 and yaw absorbs the
// remaining rotation.
func (q Quat) Euler() (pitch, yaw, roll float32) {
	n := q.Normal()
	w, x, y, z := n.W, n.X, n.Y, n.Z

	sp := Clamp(2*(w*x-y*z), -1, 1)
	pitch = Asin(sp)
	if Abs(sp) < 0.9999 {
		yaw = Atan2(2*(x*z+w*y), 1-2*(x*x+y*y))
		roll = Atan2(2*(x*y+w*z), 1-2*(x*x+z*z))
	} else {
		yaw = Atan2(-(2 * (x*z - w*y)), 1-2*(y*y+z*z))
		roll = 0
	}
	return pitch, yaw, roll
}

// AxisAngle returns the rotation axis and angle in radians of this
// quaternion. When the rotation angle is near zero the axis is
// indeterminate and the canonical fallback axis (1, 0, 0) is returned.
func (q Quat) AxisAngle() (axis Vector3, angle float32) {
	n := q.Normal()
	w := Clamp(n.W, -1, 1)
	angle = 2 * Acos(w)
	s := Sqrt(1 - w*w)
	if s < Epsilon {
		return Vec3(1, 0, 0), angle
	}
	return Vec3(n.X/s, n.Y/s, n.Z/s), angle
}

// RotateVector rotates the given vector by this quaternion: v is embedded
// as the pure quaternion (0, v) and wrapped in the sandwich product
// q * v * q^-1. The quaternion is normalized first.
func (q Quat) RotateVector(v Vector3) Vector3 {
	n := q.Normal()
	p := Quat{W: 0, X: v.X, Y: v.Y, Z: v.Z}
	r := n.Mul(p).Mul(n.Conjugate())
	return Vec3(r.X, r.Y, r.Z)
}

// Slerp returns the spherical linear interpolation between this quaternion
// and other at parameter t, clamped to [0, 1], along the shortest arc.
// Nearly parallel inputs (dot above [SlerpParallelTol]) fall back to
// normalized linear interpolation to avoid dividing by a near-zero sine.
func (q Quat) Slerp(other Quat, t float32) Quat {
	t = Clamp(t, 0, 1)

	d := q.Dot(other)
	if d < 0 {
		// q and -q are the same rotation; take the shorter path.
		other = other.Negate()
		d = -d
	}
	d = Clamp(d, -1, 1)

	if d > SlerpParallelTol {
		return q.MulScalar(1 - t).Add(other.MulScalar(t)).Normal()
	}

	theta := Acos(d)
	sinTheta := Sin(theta)
	wa := Sin((1-t)*theta) / sinTheta
	wb := Sin(t*theta) / sinTheta
	return q.MulScalar(wa).Add(other.MulScalar(wb))
}

// AlmostEqual returns whether this quaternion encodes the same rotation as
// the other given one within [EqualTol] per component, treating q and -q
// as equal.
func (q Quat) AlmostEqual(other Quat) bool {
	return q.almostEqualExact(other) || q.almostEqualExact(other.Negate())
}

func (q Quat) almostEqualExact(other Quat) bool {
	return AlmostEqual(q.W, other.W, EqualTol) &&
		AlmostEqual(q.X, other.X, EqualTol) &&
		AlmostEqual(q.Y, other.Y, EqualTol) &&
		AlmostEqual(q.Z, other.Z, EqualTol)
}
