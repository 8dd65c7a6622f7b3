package vmath

import "fmt"

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vector3 returns the X, Y and Z components of this vector as a [Vector3].
func (v Vector4) Vector3() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Set sets this vector's X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Negate returns this vector with each component negated.
func (v Vector4) Negate() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

// MulScalar multiplies each component of this vector by the scalar s and returns the resulting vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// DivScalar divides each component of this vector by the scalar s and returns the resulting vector.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the length of this vector.
func (v Vector4) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// LengthSquared returns the length squared of this vector.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normal returns this vector divided by its length (its unit vector).
// Vectors shorter than [Epsilon] return the zero vector.
func (v Vector4) Normal() Vector4 {
	l := v.Length()
	if l < Epsilon {
		return Vector4{}
	}
	return v.DivScalar(l)
}

// Lerp returns the linear interpolation between this vector and the other
// given vector at parameter t, which is clamped to [0, 1]; it never
// extrapolates.
func (v Vector4) Lerp(other Vector4, t float32) Vector4 {
	t = Clamp(t, 0, 1)
	return Vector4{
		v.X + (other.X-v.X)*t,
		v.Y + (other.Y-v.Y)*t,
		v.Z + (other.Z-v.Z)*t,
		v.W + (other.W-v.W)*t,
	}
}

// Distance returns the distance from this vector to the other given vector.
func (v Vector4) Distance(other Vector4) float32 {
	return other.Sub(v).Length()
}

// AlmostEqual returns whether this vector is within [EqualTol] of the
// other given vector on each component.
func (v Vector4) AlmostEqual(other Vector4) bool {
	return AlmostEqual(v.X, other.X, EqualTol) &&
		AlmostEqual(v.Y, other.Y, EqualTol) &&
		AlmostEqual(v.Z, other.Z, EqualTol) &&
		AlmostEqual(v.W, other.W, EqualTol)
}
