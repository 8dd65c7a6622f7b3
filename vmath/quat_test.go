package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuatIdentity(t *testing.T) {
	id := QuatIdentity()
	assert.Equal(t, Quat{W: 1}, id)
	assert.Equal(t, float32(1), id.Length())

	v := Vec3(1, 2, 3)
	assert.Equal(t, v, id.RotateVector(v))
	tolAssertEqualMatrix4(t, standardTol, Identity4(), id.RotationMatrix())
}

func TestQuatRotate90AboutZ(t *testing.T) {
	q := QuatFromAxisAngle(Vec3(0, 0, 1), DegToRad(90))

	// the convention anchor: 90 degrees about +Z maps (1,0,0) to (0,1,0)
	tolAssertEqualVector3(t, standardTol, Vec3(0, 1, 0), q.RotateVector(Vec3(1, 0, 0)))
	tolAssertEqualVector3(t, standardTol, Vec3(-1, 0, 0), q.RotateVector(Vec3(0, 1, 0)))
	tolAssertEqualVector3(t, standardTol, Vec3(0, 0, 1), q.RotateVector(Vec3(0, 0, 1)))

	// the rotation matrix agrees with the sandwich product
	m := q.RotationMatrix()
	tolAssertEqualVector3(t, standardTol, Vec3(0, 1, 0), m.MulPoint(Vec3(1, 0, 0)))
}

func TestQuatMulComposition(t *testing.T) {
	qz := QuatFromAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	qx := QuatFromAxisAngle(Vec3(1, 0, 0), DegToRad(90))

	// a.Mul(b) applies b first: (1,0,0) -> qz -> (0,1,0) -> qx -> (0,0,1)
	composed := qx.Mul(qz)
	tolAssertEqualVector3(t, standardTol, Vec3(0, 0, 1), composed.RotateVector(Vec3(1, 0, 0)))

	// composition is not commutative
	other := qz.Mul(qx)
	tolAssertEqualVector3(t, standardTol, Vec3(0, 1, 0), other.RotateVector(Vec3(1, 0, 0)))

	// matrix conversion respects the same operand order
	tolAssertEqualMatrix4(t, standardTol,
		qx.RotationMatrix().Mul(qz.RotationMatrix()), composed.RotationMatrix())
}

func TestQuatInverse(t *testing.T) {
	q := QuatFromAxisAngle(Vec3(1, 2, 3).Normal(), DegToRad(73))
	tolAssertEqualQuat(t, standardTol, QuatIdentity(), q.Mul(q.Inverse()))
	tolAssertEqualQuat(t, standardTol, QuatIdentity(), q.Inverse().Mul(q))

	// for unit quaternions the inverse is the conjugate
	tolAssertEqualQuat(t, standardTol, q.Conjugate(), q.Inverse())

	// non-unit: inverse is conjugate over length squared
	s := q.MulScalar(2)
	tolAssertEqualQuat(t, standardTol, QuatIdentity(), s.Mul(s.Inverse()))
}

func TestQuatNormal(t *testing.T) {
	q := Quat{W: 2, X: 0, Y: 2, Z: 0}
	assert.InDelta(t, 1.0, float64(q.Normal().Length()), standardTol)

	// degenerate quaternions normalize to identity, no error
	assert.Equal(t, QuatIdentity(), Quat{}.Normal())
	assert.Equal(t, QuatIdentity(), Quat{W: 1e-7}.Normal())
}

func TestQuatAxisAngleRoundTrip(t *testing.T) {
	angles := []float32{0.1, DegToRad(45), DegToRad(90), DegToRad(179), DegToRad(255), DegToRad(340)}
	axes := []Vector3{
		Vec3(1, 0, 0),
		Vec3(0, 1, 0),
		Vec3(0, 0, 1),
		Vec3(1, 1, 1).Normal(),
		Vec3(-2, 1, 4).Normal(),
	}
	for _, angle := range angles {
		for _, axis := range axes {
			q := QuatFromAxisAngle(axis, angle)
			gotAxis, gotAngle := q.AxisAngle()
			assert.InDelta(t, float64(angle), float64(gotAngle), standardTol,
				"angle %v axis %v", angle, axis)
			tolAssertEqualVector3(t, standardTol, axis, gotAxis)
		}
	}
}

func TestQuatAxisAngleDegenerate(t *testing.T) {
	// near-zero rotation: the axis is indeterminate, the canonical
	// fallback (1,0,0) is substituted
	axis, angle := QuatIdentity().AxisAngle()
	assert.Equal(t, Vec3(1, 0, 0), axis)
	assert.InDelta(t, 0.0, float64(angle), standardTol)
}

func TestQuatEulerRoundTrip(t *testing.T) {
	cases := []struct{ pitch, yaw, roll float32 }{
		{0, 0, 0},
		{DegToRad(30), 0, 0},
		{0, DegToRad(45), 0},
		{0, 0, DegToRad(60)},
		{DegToRad(10), DegToRad(20), DegToRad(30)},
		{DegToRad(-40), DegToRad(70), DegToRad(-15)},
	}
	for _, c := range cases {
		q := QuatFromEuler(c.pitch, c.yaw, c.roll)
		assert.InDelta(t, 1.0, float64(q.Length()), standardTol)
		pitch, yaw, roll := q.Euler()
		assert.InDelta(t, float64(c.pitch), float64(pitch), standardTol)
		assert.InDelta(t, float64(c.yaw), float64(yaw), standardTol)
		assert.InDelta(t, float64(c.roll), float64(roll), standardTol)
	}
}

func TestQuatEulerSingleAxes(t *testing.T) {
	// yaw is about Y, pitch about X, roll about Z
	tolAssertEqualQuat(t, standardTol,
		QuatFromAxisAngle(Vec3(0, 1, 0), DegToRad(90)), QuatFromEuler(0, DegToRad(90), 0))
	tolAssertEqualQuat(t, standardTol,
		QuatFromAxisAngle(Vec3(1, 0, 0), DegToRad(30)), QuatFromEuler(DegToRad(30), 0, 0))
	tolAssertEqualQuat(t, standardTol,
		QuatFromAxisAngle(Vec3(0, 0, 1), DegToRad(60)), QuatFromEuler(0, 0, DegToRad(60)))
}

func TestQuatEulerGimbalLock(t *testing.T) {
	// pitch at +90 degrees: asin input clamped, no NaN
	q := QuatFromEuler(DegToRad(90), DegToRad(25), 0)
	pitch, yaw, roll := q.Euler()
	assert.False(t, pitch != pitch, "pitch is NaN")
	assert.InDelta(t, float64(DegToRad(90)), float64(pitch), 1e-3)
	assert.InDelta(t, 0.0, float64(roll), 1e-3)
	// the recovered angles still encode the same rotation
	tolAssertEqualQuat(t, 1e-3, q, QuatFromEuler(pitch, yaw, roll))
}

func TestQuatRotationMatrixRoundTrip(t *testing.T) {
	q := QuatFromEuler(DegToRad(20), DegToRad(-50), DegToRad(110))
	m3 := Matrix3FromMatrix4(q.RotationMatrix())
	back := QuatFromRotationMatrix(m3)
	tolAssertEqualQuat(t, standardTol, q, back)
}

func TestQuatSlerp(t *testing.T) {
	a := QuatFromAxisAngle(Vec3(0, 1, 0), DegToRad(10))
	b := QuatFromAxisAngle(Vec3(0, 1, 0), DegToRad(130))

	tolAssertEqualQuat(t, standardTol, a, a.Slerp(b, 0))
	tolAssertEqualQuat(t, standardTol, b, a.Slerp(b, 1))

	// slerp(a,a,t) == a for all t
	for _, tt := range []float32{0, 0.25, 0.5, 0.75, 1} {
		tolAssertEqualQuat(t, standardTol, a, a.Slerp(a, tt))
	}

	// midpoint of a single-axis sweep is the angular midpoint
	mid := a.Slerp(b, 0.5)
	tolAssertEqualQuat(t, standardTol, QuatFromAxisAngle(Vec3(0, 1, 0), DegToRad(70)), mid)
	assert.InDelta(t, 1.0, float64(mid.Length()), standardTol)
}

func TestQuatSlerpShortestPath(t *testing.T) {
	a := QuatFromAxisAngle(Vec3(0, 0, 1), DegToRad(10))
	b := QuatFromAxisAngle(Vec3(0, 0, 1), DegToRad(50)).Negate() // same rotation, flipped sign

	// negative dot triggers the shortest-path correction
	mid := a.Slerp(b, 0.5)
	tolAssertEqualQuat(t, standardTol, QuatFromAxisAngle(Vec3(0, 0, 1), DegToRad(30)), mid)
}

func TestQuatSlerpNearlyParallel(t *testing.T) {
	a := QuatFromAxisAngle(Vec3(1, 0, 0), DegToRad(10))
	b := QuatFromAxisAngle(Vec3(1, 0, 0), DegToRad(10.01))

	// dot > 0.9995: linear fallback, still unit length
	mid := a.Slerp(b, 0.5)
	assert.InDelta(t, 1.0, float64(mid.Length()), standardTol)
	tolAssertEqualQuat(t, 1e-3, a, mid)
}

func TestQuatDoubleCover(t *testing.T) {
	q := QuatFromAxisAngle(Vec3(1, 1, 0).Normal(), DegToRad(40))
	assert.True(t, q.AlmostEqual(q.Negate()))
	assert.True(t, q.AlmostEqual(q))
	assert.False(t, q.AlmostEqual(QuatIdentity()))

	// q and -q rotate vectors identically
	v := Vec3(3, -1, 2)
	tolAssertEqualVector3(t, standardTol, q.RotateVector(v), q.Negate().RotateVector(v))
}
