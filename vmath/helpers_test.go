package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-5

func tolAssertEqualVector2(t *testing.T, tol float64, want, got Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
}

func tolAssertEqualVector3(t *testing.T, tol float64, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func tolAssertEqualVector4(t *testing.T, tol float64, want, got Vector4) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
	assert.InDelta(t, want.W, got.W, tol)
}

func tolAssertEqualMatrix4(t *testing.T, tol float64, want, got Matrix4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "element %d", i)
	}
}

func tolAssertEqualQuat(t *testing.T, tol float64, want, got Quat) {
	t.Helper()
	// q and -q encode the same rotation
	if got.Dot(want) < 0 {
		got = got.Negate()
	}
	assert.InDelta(t, want.W, got.W, tol)
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}
